package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/huh"

	"focusflow/internal/journal"
	"focusflow/internal/models"
	"focusflow/internal/stats"
)

// JournalCmd submits today's reflection. With no flags it opens an
// interactive form pre-filled with the projected rating.
type JournalCmd struct {
	Highlight string `short:"m" help:"Best thing about today."`
	Rating    int    `short:"r" help:"Rating 0-5. Defaults to the projected rating." default:"-1"`
}

func (c *JournalCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return err
	}
	principal, err := ctx.requirePrincipal()
	if err != nil {
		return err
	}
	now := time.Now()
	settings, err := ctx.ensureSettings(principal.ID, now)
	if err != nil {
		return err
	}

	entries, err := ctx.Store.GetAllJournals(principal.ID)
	if err != nil {
		return err
	}

	// A submitted day is locked: show the finalized entry instead of
	// the editable projection.
	today := now.Format(models.DateFormat)
	if existing, ok := journal.EntryFor(entries, today); ok {
		fmt.Printf("Journal for %s is already in (rating %d/5):\n  %s\n",
			existing.Date, existing.Rating, existing.Highlight)
		return nil
	}

	logs, err := ctx.Store.GetAllWorkLogs(principal.ID)
	if err != nil {
		return err
	}
	daysActive := stats.DaysActive(settings.StartDate, now)
	projected := journal.ProjectedRating(stats.TodayTotal(logs, now), daysActive)

	highlight := c.Highlight
	rating := c.Rating
	if rating < 0 {
		rating = projected
	}

	if strings.TrimSpace(highlight) == "" {
		highlight, rating, err = runJournalForm(projected)
		if err != nil {
			return err
		}
	}

	entry, err := journal.NewEntry(highlight, rating, now)
	if err != nil {
		return err
	}
	if err := ctx.Store.UpsertJournal(principal.ID, entry); err != nil {
		return fmt.Errorf("failed to save journal entry: %w", err)
	}

	updated, err := ctx.Store.GetAllJournals(principal.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Journal saved (rating %d/5). Streak: %d\n", entry.Rating, journal.Streak(updated))
	return nil
}

func runJournalForm(projected int) (string, int, error) {
	highlight := ""
	rating := strconv.Itoa(projected)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Highlight").
				Description("Best thing about today").
				Value(&highlight).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("highlight cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title(fmt.Sprintf("Rating (0-5, projected %d)", projected)).
				Value(&rating).
				Validate(func(s string) error {
					i, err := strconv.Atoi(s)
					if err != nil {
						return err
					}
					if i < models.RatingMin || i > models.RatingMax {
						return fmt.Errorf("rating must be 0-5")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return "", 0, err
	}
	r, err := strconv.Atoi(rating)
	if err != nil {
		return "", 0, err
	}
	return highlight, r, nil
}
