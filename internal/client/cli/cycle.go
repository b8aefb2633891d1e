package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/agoramujeres/agora-client/internal/client/models"
)

const dateLayout = "2006-01-02"

// Cycle prompts for and records a menstrual cycle entry.
func (a *App) Cycle(ctx context.Context) error {
	w := os.Stdout

	start, err := a.getDate("Start date (YYYY-MM-DD, empty for today)", true)
	if err != nil {
		fmt.Println("Error reading date:", err)
		return err
	}

	var end *models.Timestamp
	if endDate, err := a.getDate("End date (YYYY-MM-DD, empty to skip)", false); err != nil {
		fmt.Println("Error reading date:", err)
		return err
	} else if endDate != nil {
		end = endDate
	}

	notes, err := GetSimpleText(a.reader, "Notes (optional)", w)
	if err != nil {
		return err
	}

	entry, err := a.cycle.Add(ctx, *start, end, notes)
	if err != nil {
		fmt.Println("Error saving cycle entry:", err)
		return err
	}
	fmt.Printf("Cycle entry %s saved\n", entry.ID)
	return nil
}

// Cycles lists the recorded cycle entries.
func (a *App) Cycles(ctx context.Context) error {
	entries, err := a.cycle.List(ctx, 20)
	if err != nil {
		fmt.Println("Error fetching cycle entries:", err)
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No cycle entries yet")
		return nil
	}
	for _, e := range entries {
		end := "ongoing"
		if e.EndDate != nil {
			end = e.EndDate.Format(dateLayout)
		}
		fmt.Printf("%s  %s to %s", e.ID, e.StartDate.Format(dateLayout), end)
		if e.Notes != "" {
			fmt.Printf("  %s", e.Notes)
		}
		fmt.Println()
	}
	return nil
}

// getDate reads a YYYY-MM-DD date. An empty line returns today when
// defaultToday is set and nil otherwise. Malformed input re-prompts.
func (a *App) getDate(prompt string, defaultToday bool) (*models.Timestamp, error) {
	for {
		line, err := GetSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return nil, err
		}
		if line == "" {
			if defaultToday {
				today := time.Now().UTC().Truncate(24 * time.Hour)
				return &models.Timestamp{Time: today}, nil
			}
			return nil, nil
		}
		parsed, err := time.Parse(dateLayout, line)
		if err != nil {
			fmt.Println("Please use the YYYY-MM-DD format")
			continue
		}
		return &models.Timestamp{Time: parsed}, nil
	}
}
