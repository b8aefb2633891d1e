package models

import (
	"fmt"

	"github.com/agoramujeres/agora-client/internal/common"
)

// EmotionalState is the six-key intensity vector attached to every diary
// entry. All keys are always present on the wire, zero-filled when the user
// left them unset. Each value is on a 0-5 scale.
type EmotionalState struct {
	Calma        int `json:"calma"`
	Fatiga       int `json:"fatiga"`
	NieblaMental int `json:"niebla_mental"`
	DolorDifuso  int `json:"dolor_difuso"`
	Gratitud     int `json:"gratitud"`
	Tension      int `json:"tension"`
}

// Validate checks every intensity is within the 0-5 scale.
func (e EmotionalState) Validate() error {
	for name, v := range e.Scores() {
		if v < 0 || v > 5 {
			return fmt.Errorf("%w: %s must be between 0 and 5, got %d", common.ErrValidation, name, v)
		}
	}
	return nil
}

// Scores returns the vector as a name→value map, useful for display and
// aggregation. The six keys are always present.
func (e EmotionalState) Scores() map[string]int {
	return map[string]int{
		"calma":         e.Calma,
		"fatiga":        e.Fatiga,
		"niebla_mental": e.NieblaMental,
		"dolor_difuso":  e.DolorDifuso,
		"gratitud":      e.Gratitud,
		"tension":       e.Tension,
	}
}

// PhysicalState is the optional three-key intensity vector on a 0-10 scale.
// It is either entirely present or entirely absent, never partial.
type PhysicalState struct {
	NivelDolor   int `json:"nivel_dolor"`
	Energia      int `json:"energia"`
	Sensibilidad int `json:"sensibilidad"`
}

// Validate checks every intensity is within the 0-10 scale.
func (p PhysicalState) Validate() error {
	for name, v := range map[string]int{
		"nivel_dolor":  p.NivelDolor,
		"energia":      p.Energia,
		"sensibilidad": p.Sensibilidad,
	} {
		if v < 0 || v > 10 {
			return fmt.Errorf("%w: %s must be between 0 and 10, got %d", common.ErrValidation, name, v)
		}
	}
	return nil
}

// Weather is the snapshot optionally attached to a diary entry at creation
// time.
type Weather struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Pressure    float64 `json:"pressure"`
	Condition   string  `json:"condition"`
}

// DiaryEntry is a server-owned record; the client only ever holds a
// read-through cache of it.
type DiaryEntry struct {
	ID             string         `json:"id"`
	DeviceID       string         `json:"device_id"`
	Texto          string         `json:"texto,omitempty"`
	EmotionalState EmotionalState `json:"emotional_state"`
	PhysicalState  *PhysicalState `json:"physical_state,omitempty"`
	Weather        *Weather       `json:"weather,omitempty"`
	CreatedAt      Timestamp      `json:"created_at"`
}

// DiaryEntryCreate is the creation payload. PhysicalState and Weather are
// pointers so an unset section is absent from the JSON body rather than
// present with zeros.
type DiaryEntryCreate struct {
	DeviceID       string         `json:"device_id"`
	Texto          string         `json:"texto,omitempty"`
	EmotionalState EmotionalState `json:"emotional_state"`
	PhysicalState  *PhysicalState `json:"physical_state,omitempty"`
	Weather        *Weather       `json:"weather,omitempty"`
}

// Validate checks the intensity scales before the entry is sent.
func (d DiaryEntryCreate) Validate() error {
	if d.DeviceID == "" {
		return fmt.Errorf("%w: device id is required", common.ErrValidation)
	}
	if err := d.EmotionalState.Validate(); err != nil {
		return err
	}
	if d.PhysicalState != nil {
		return d.PhysicalState.Validate()
	}
	return nil
}
