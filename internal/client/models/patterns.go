package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// EmotionalAverages mirrors EmotionalState with per-key means over the
// analyzed window, rounded server-side to one decimal.
type EmotionalAverages struct {
	Calma        float64 `json:"calma"`
	Fatiga       float64 `json:"fatiga"`
	NieblaMental float64 `json:"niebla_mental"`
	DolorDifuso  float64 `json:"dolor_difuso"`
	Gratitud     float64 `json:"gratitud"`
	Tension      float64 `json:"tension"`
}

// Scores returns the averages as a name→value map.
func (e EmotionalAverages) Scores() map[string]float64 {
	return map[string]float64{
		"calma":        e.Calma,
		"fatiga":       e.Fatiga,
		"niebla_mental": e.NieblaMental,
		"dolor_difuso": e.DolorDifuso,
		"gratitud":     e.Gratitud,
		"tension":      e.Tension,
	}
}

// Sorted returns the averaged emotions in descending order, ties broken by
// name so the ordering is stable across fetches.
func (e EmotionalAverages) Sorted() []EmotionScore {
	scores := e.Scores()
	out := make([]EmotionScore, 0, len(scores))
	for name, v := range scores {
		out = append(out, EmotionScore{Name: name, Value: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Value != out[j].Value {
			return out[i].Value > out[j].Value
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// EmotionScore is one named average, used for ranked display.
type EmotionScore struct {
	Name  string
	Value float64
}

// PhysicalAverages carries the optional physical-vector means; nil when no
// entry in the window had a physical section.
type PhysicalAverages struct {
	NivelDolor   float64 `json:"nivel_dolor"`
	Energia      float64 `json:"energia"`
	Sensibilidad float64 `json:"sensibilidad"`
}

// WordCount is one ("word", count) tuple from the common-words ranking. The
// server emits these as two-element JSON arrays.
type WordCount struct {
	Word  string
	Count int
}

func (w *WordCount) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("word count tuple has %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &w.Word); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &w.Count)
}

func (w WordCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{w.Word, w.Count})
}

// Trends names the highest and lowest averaged emotions in the window.
type Trends struct {
	HighestEmotional string `json:"highest_emotional"`
	LowestEmotional  string `json:"lowest_emotional"`
}

// Patterns is the aggregate the server derives from diary entries over the
// last N days. When no entries exist in the window the server omits the
// aggregate fields and sets Message instead.
type Patterns struct {
	PeriodDays        int                `json:"period_days"`
	TotalEntries      int                `json:"total_entries"`
	EmotionalAverages EmotionalAverages  `json:"emotional_averages"`
	PhysicalAverages  *PhysicalAverages  `json:"physical_averages,omitempty"`
	CommonWords       []WordCount        `json:"common_words,omitempty"`
	Trends            Trends             `json:"trends"`
	Message           string             `json:"message,omitempty"`
}

// HasData reports whether the window contained any diary entries.
func (p Patterns) HasData() bool {
	return p.TotalEntries > 0
}
