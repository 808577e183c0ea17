package report

import (
	"fmt"
	"strings"
	"time"

	"SKCCTracker/internal/model"
)

// FormatProgress renders the full award snapshot as display text.
func FormatProgress(reports []model.Progress) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("SKCC Award Progress | %s\n\n", time.Now().Format("2006-01-02")))
	for _, p := range reports {
		if p.Unavailable {
			b.WriteString(fmt.Sprintf("%-14s unavailable\n", p.Award))
			continue
		}
		mark := " "
		if p.Achieved {
			mark = "*"
		}
		b.WriteString(fmt.Sprintf("%s %-14s %6d / %-6d %5.1f%%  %s\n",
			mark, p.Award, p.Current, p.Required, p.Percent, p.Endorsement))
		if p.Commentary != "" {
			b.WriteString(fmt.Sprintf("  %s\n", p.Commentary))
		}
	}
	return b.String()
}

// FormatRosterStatus renders roster cache state for display.
func FormatRosterStatus(infos []model.RosterInfo) string {
	var b strings.Builder
	b.WriteString("Roster status\n\n")
	for _, info := range infos {
		switch info.Status {
		case "missing":
			b.WriteString(fmt.Sprintf("%-10s Not downloaded\n", info.Tier))
		default:
			line := fmt.Sprintf("%-10s %d entries, %d days old", info.Tier, info.Count, info.AgeDays)
			if info.Status == "stale" {
				line += " (stale)"
			}
			if info.Skipped > 0 {
				line += fmt.Sprintf(", %d rows skipped", info.Skipped)
			}
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

// FormatApplication renders a rule's qualifying contacts as an award
// submission listing.
func FormatApplication(awardName string, contacts []model.Contact) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("SKCC %s Award Application\n", awardName))
	b.WriteString(fmt.Sprintf("Generated %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("%-4s %-12s %-10s %-6s %-10s\n", "#", "Callsign", "Date", "Band", "SKCC"))
	for i, c := range contacts {
		b.WriteString(fmt.Sprintf("%-4d %-12s %-10s %-6s %-10s\n",
			i+1, c.Callsign, c.QSODate(), c.Band, c.SKCCNumber))
	}
	b.WriteString(fmt.Sprintf("\nTotal: %d contacts\n", len(contacts)))
	return b.String()
}
