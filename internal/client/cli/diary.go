package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/agoramujeres/agora-client/internal/client/models"
)

// emotionPrompts lists the six emotional scales in display order.
var emotionPrompts = []struct {
	label string
	set   func(*models.EmotionalState, int)
}{
	{"Calma", func(e *models.EmotionalState, v int) { e.Calma = v }},
	{"Fatiga", func(e *models.EmotionalState, v int) { e.Fatiga = v }},
	{"Niebla mental", func(e *models.EmotionalState, v int) { e.NieblaMental = v }},
	{"Dolor difuso", func(e *models.EmotionalState, v int) { e.DolorDifuso = v }},
	{"Gratitud", func(e *models.EmotionalState, v int) { e.Gratitud = v }},
	{"Tensión", func(e *models.EmotionalState, v int) { e.Tension = v }},
}

// Diary prompts for a diary entry: free text, the six emotional scales and
// optionally the physical scales, then submits it.
func (a *App) Diary(ctx context.Context) error {
	w := os.Stdout

	texto, err := GetMultiline(a.reader, "¿Cómo te sientes hoy?", w)
	if err != nil {
		fmt.Println("Error reading input:", err)
		return err
	}

	var emotional models.EmotionalState
	for _, p := range emotionPrompts {
		v, err := GetIntInRange(a.reader, p.label, 0, 5, 0, w)
		if err != nil {
			fmt.Println("Error reading input:", err)
			return err
		}
		p.set(&emotional, v)
	}

	var physical *models.PhysicalState
	answer, err := GetSimpleText(a.reader, "¿Añadir estado físico? (s/n)", w)
	if err != nil {
		fmt.Println("Error reading input:", err)
		return err
	}
	if answer == "s" || answer == "y" {
		physical = &models.PhysicalState{}
		if physical.NivelDolor, err = GetIntInRange(a.reader, "Nivel de dolor", 0, 10, 0, w); err != nil {
			return err
		}
		if physical.Energia, err = GetIntInRange(a.reader, "Energía", 0, 10, 0, w); err != nil {
			return err
		}
		if physical.Sensibilidad, err = GetIntInRange(a.reader, "Sensibilidad", 0, 10, 0, w); err != nil {
			return err
		}
	}

	entry, err := a.diary.Create(ctx, texto, emotional, physical)
	if err != nil {
		fmt.Println("Error saving entry:", err)
		return err
	}

	fmt.Printf("Entry %s saved\n", entry.ID)
	return nil
}

// Entries lists the most recent diary entries.
func (a *App) Entries(ctx context.Context) error {
	entries, err := a.diary.List(ctx, 20, 0)
	if err != nil {
		fmt.Println("Error fetching entries:", err)
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No entries yet")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.ID)
		if e.Texto != "" {
			fmt.Printf("  %s\n", e.Texto)
		}
		for name, v := range e.EmotionalState.Scores() {
			if v > 0 {
				fmt.Printf("  %s: %d\n", name, v)
			}
		}
	}
	return nil
}

// Patterns shows the pattern analysis over the last 30 days.
func (a *App) Patterns(ctx context.Context) error {
	patterns, err := a.diary.Patterns(ctx, 30)
	if err != nil {
		fmt.Println("Error fetching patterns:", err)
		return err
	}

	if !patterns.HasData() {
		if patterns.Message != "" {
			fmt.Println(patterns.Message)
		} else {
			fmt.Println("No entries in the selected period")
		}
		return nil
	}

	fmt.Printf("Last %d days, %d entries\n", patterns.PeriodDays, patterns.TotalEntries)
	for _, s := range patterns.EmotionalAverages.Sorted() {
		fmt.Printf("  %-14s %.1f\n", s.Name, s.Value)
	}
	if p := patterns.PhysicalAverages; p != nil {
		fmt.Printf("  dolor %.1f, energía %.1f, sensibilidad %.1f\n", p.NivelDolor, p.Energia, p.Sensibilidad)
	}
	if patterns.Trends.HighestEmotional != "" {
		fmt.Printf("Highest: %s, lowest: %s\n", patterns.Trends.HighestEmotional, patterns.Trends.LowestEmotional)
	}
	if len(patterns.CommonWords) > 0 {
		fmt.Print("Common words:")
		for _, wc := range patterns.CommonWords {
			fmt.Printf(" %s(%d)", wc.Word, wc.Count)
		}
		fmt.Println()
	}
	return nil
}
