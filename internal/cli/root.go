package cli

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"focusflow/internal/auth"
	"focusflow/internal/config"
	"focusflow/internal/models"
	"focusflow/internal/storage"
	"focusflow/internal/timer"
)

// Context carries the app's collaborators into command Run methods.
type Context struct {
	Store  storage.Provider
	Auth   auth.Provider
	Config *config.Config
	Log    zerolog.Logger
}

// requirePrincipal resolves the active principal or fails with the
// not-authenticated error. Every mutation goes through this first.
func (ctx *Context) requirePrincipal() (models.Principal, error) {
	principal, ok := ctx.Auth.Current()
	if !ok {
		return models.Principal{}, auth.ErrNotAuthenticated
	}
	return principal, nil
}

// ensureSettings returns the principal's settings, creating them with
// StartDate=now on first use. StartDate is never mutated afterwards.
func (ctx *Context) ensureSettings(principal string, now time.Time) (models.UserSettings, error) {
	settings, err := ctx.Store.GetSettings(principal)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return models.UserSettings{}, err
	}

	settings = models.UserSettings{StartDate: now}
	if err := ctx.Store.SaveSettings(principal, settings); err != nil {
		return models.UserSettings{}, err
	}
	return settings, nil
}

// newWorkLog stamps a completion event into a persistable record.
func newWorkLog(ev timer.Completion) models.WorkLog {
	return models.WorkLog{
		ID:              uuid.New().String(),
		Timestamp:       ev.Timestamp,
		DurationSeconds: ev.DurationSeconds,
	}
}
