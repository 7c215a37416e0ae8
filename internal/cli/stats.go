package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"focusflow/internal/journal"
	"focusflow/internal/models"
	"focusflow/internal/stats"
)

var (
	statsTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	statsLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(14)

	statsValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

type StatsCmd struct{}

func (c *StatsCmd) Run(ctx *Context) error {
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

	logs, err := ctx.Store.GetAllWorkLogs(principal.ID)
	if err != nil {
		return err
	}
	entries, err := ctx.Store.GetAllJournals(principal.ID)
	if err != nil {
		return err
	}

	daysActive := stats.DaysActive(settings.StartDate, now)
	todayTotal := stats.TodayTotal(logs, now)
	target := journal.TargetSeconds(daysActive)

	row := func(label, value string) {
		fmt.Println(statsLabelStyle.Render(label) + statsValueStyle.Render(value))
	}

	fmt.Println(statsTitleStyle.Render(fmt.Sprintf("Progress for %s", principal.DisplayName)))
	fmt.Println()
	row("Day", fmt.Sprintf("#%d", daysActive))
	row("Today", stats.FormatDuration(todayTotal))
	row("This week", stats.FormatDuration(stats.WeekTotal(logs, now)))
	row("This month", stats.FormatDuration(stats.MonthTotal(logs, now)))
	row("Daily target", stats.FormatDuration(target))
	row("Streak", fmt.Sprintf("%d", journal.Streak(entries)))

	today := now.Format(models.DateFormat)
	if entry, ok := journal.EntryFor(entries, today); ok {
		row("Journal", fmt.Sprintf("submitted (%d/5)", entry.Rating))
	} else {
		row("Projected", fmt.Sprintf("%d/5", journal.ProjectedRating(todayTotal, daysActive)))
	}
	return nil
}
