package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "", cfg.Backend)
	require.Equal(t, 5*time.Second, cfg.PollInterval)
	require.False(t, cfg.DeviceFlowConfigured())
}

func TestBackendValidation(t *testing.T) {
	t.Setenv("FOCUSFLOW_BACKEND", "mongodb")
	_, err := New()
	require.Error(t, err)
}

func TestRestBackendRequiresURL(t *testing.T) {
	t.Setenv("FOCUSFLOW_BACKEND", "rest")
	_, err := New()
	require.Error(t, err)

	t.Setenv("FOCUSFLOW_API_URL", "http://localhost:8080")
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "rest", cfg.Backend)
	require.Equal(t, "http://localhost:8080", cfg.APIURL)
}

func TestDeviceFlowConfigured(t *testing.T) {
	t.Setenv("FOCUSFLOW_OAUTH_CLIENT_ID", "client")
	t.Setenv("FOCUSFLOW_OAUTH_DEVICE_AUTH_URL", "http://idp/device")
	t.Setenv("FOCUSFLOW_OAUTH_TOKEN_URL", "http://idp/token")
	t.Setenv("FOCUSFLOW_OAUTH_USERINFO_URL", "http://idp/userinfo")

	cfg, err := New()
	require.NoError(t, err)
	require.True(t, cfg.DeviceFlowConfigured())
}
