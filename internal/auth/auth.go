// Package auth manages the active principal. All persisted
// collections are scoped to the principal id, so who is logged in
// decides which data is visible.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"

	"focusflow/internal/models"
)

// ErrNotAuthenticated is returned when a mutation is attempted with no
// active principal.
var ErrNotAuthenticated = errors.New("not logged in, run 'focusflow login' first")

const profileFile = "profile.json"

// Provider resolves and switches the active principal.
type Provider interface {
	Login(ctx context.Context, name string) (models.Principal, error)
	Logout() error
	Current() (models.Principal, bool)
}

// profile is what gets written to disk between runs.
type profile struct {
	Principal models.Principal `json:"principal"`
	Token     *oauth2.Token    `json:"token,omitempty"`
}

func loadProfile(dir string) (*profile, error) {
	data, err := os.ReadFile(filepath.Join(dir, profileFile))
	if err != nil {
		return nil, err
	}
	var p profile
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse profile: %w", err)
	}
	return &p, nil
}

func saveProfile(dir string, p *profile) error {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, profileFile), data, 0600); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	return nil
}

func removeProfile(dir string) error {
	err := os.Remove(filepath.Join(dir, profileFile))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// LocalProvider is the no-network identity provider. With no stored
// profile it falls back to the built-in guest principal, so local use
// never requires an explicit login.
type LocalProvider struct {
	dir string
}

func NewLocalProvider(dir string) *LocalProvider {
	return &LocalProvider{dir: dir}
}

// Login activates a named local principal. An empty name selects the
// guest principal.
func (p *LocalProvider) Login(_ context.Context, name string) (models.Principal, error) {
	principal := models.Guest()
	if name != "" {
		principal = models.Principal{ID: "local:" + name, DisplayName: name}
	}
	if err := saveProfile(p.dir, &profile{Principal: principal}); err != nil {
		return models.Principal{}, err
	}
	return principal, nil
}

func (p *LocalProvider) Logout() error {
	return removeProfile(p.dir)
}

func (p *LocalProvider) Current() (models.Principal, bool) {
	prof, err := loadProfile(p.dir)
	if err != nil {
		return models.Guest(), true
	}
	return prof.Principal, true
}
