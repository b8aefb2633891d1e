package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/agoramujeres/agora-client/internal/client/models"
)

// Record shows the monthly pain record.
func (a *App) Record(ctx context.Context) error {
	record, err := a.record.Get(ctx)
	if err != nil {
		fmt.Println("Error fetching the monthly record:", err)
		return err
	}

	fmt.Printf("Cycle %s to %s\n",
		record.CycleStartDate.Format(dateLayout),
		record.CycleEnd().Format(dateLayout))

	if len(record.Records) == 0 {
		fmt.Println("No pain recorded this cycle")
		return nil
	}
	for _, r := range record.Records {
		fmt.Printf("  %s  intensity %d", r.Date, r.Intensity)
		if r.Notes != "" {
			fmt.Printf("  %s", r.Notes)
		}
		fmt.Println()
	}
	return nil
}

// SetPain records or removes one day's pain intensity. Intensity 0 removes
// the date from the record.
func (a *App) SetPain(ctx context.Context) error {
	w := os.Stdout

	date, err := a.getDate("Date (YYYY-MM-DD, empty for today)", true)
	if err != nil {
		return err
	}

	intensity, err := GetIntInRange(a.reader, "Intensity (0 removes)", 0, 5, models.PainIntensityNone, w)
	if err != nil {
		return err
	}

	notes := ""
	if intensity != models.PainIntensityNone {
		if notes, err = GetSimpleText(a.reader, "Notes (optional)", w); err != nil {
			return err
		}
	}

	record, err := a.record.SetIntensity(ctx, date.Format(dateLayout), intensity, notes)
	if err != nil {
		fmt.Println("Error saving the monthly record:", err)
		return err
	}
	fmt.Printf("Record saved, %d day(s) with pain this cycle\n", len(record.Records))
	return nil
}
