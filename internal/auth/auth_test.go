package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"focusflow/internal/models"
)

func TestLocalProviderDefaultsToGuest(t *testing.T) {
	p := NewLocalProvider(t.TempDir())

	principal, ok := p.Current()
	require.True(t, ok, "local provider must always have a principal")
	require.Equal(t, models.GuestID, principal.ID)
}

func TestLocalProviderNamedLogin(t *testing.T) {
	dir := t.TempDir()
	p := NewLocalProvider(dir)

	principal, err := p.Login(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, "local:alice", principal.ID)
	require.Equal(t, "alice", principal.DisplayName)

	// Survives a fresh provider on the same dir.
	current, ok := NewLocalProvider(dir).Current()
	require.True(t, ok)
	require.Equal(t, "local:alice", current.ID)
}

func TestLocalProviderLogoutRevertsToGuest(t *testing.T) {
	dir := t.TempDir()
	p := NewLocalProvider(dir)

	_, err := p.Login(context.Background(), "alice")
	require.NoError(t, err)
	require.NoError(t, p.Logout())

	principal, ok := p.Current()
	require.True(t, ok)
	require.Equal(t, models.GuestID, principal.ID)
}

func TestLocalProviderLogoutWithoutLogin(t *testing.T) {
	p := NewLocalProvider(t.TempDir())
	require.NoError(t, p.Logout())
}

func TestPrincipalSwitchSwapsIdentity(t *testing.T) {
	dir := t.TempDir()
	p := NewLocalProvider(dir)
	ctx := context.Background()

	_, err := p.Login(ctx, "alice")
	require.NoError(t, err)
	_, err = p.Login(ctx, "bob")
	require.NoError(t, err)

	current, ok := p.Current()
	require.True(t, ok)
	require.Equal(t, "local:bob", current.ID)
}
