package prompts

import (
	"encoding/json"
	"slices"

	"github.com/JaimeStill/freightdesk/internal/category"
)

// Stage is a prompt target: the classifier or one category handler.
type Stage string

const (
	StageClassify   Stage = "classify"
	StageBooking    Stage = Stage(category.Booking)
	StageTracking   Stage = Stage(category.Tracking)
	StageCustomer   Stage = Stage(category.Customer)
	StageDocuments  Stage = Stage(category.Documents)
	StageManagement Stage = Stage(category.Management)
)

var stages = []Stage{
	StageClassify,
	StageBooking,
	StageTracking,
	StageCustomer,
	StageDocuments,
	StageManagement,
}

// Stages returns the valid stages in workflow order.
func Stages() []Stage {
	return slices.Clone(stages)
}

// StageFor returns the handler stage for c.
func StageFor(c category.Category) Stage {
	return Stage(c)
}

// UnmarshalJSON rejects unknown stage values.
func (s *Stage) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v, err := ParseStage(raw)
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStage validates s as a known stage.
func ParseStage(s string) (Stage, error) {
	v := Stage(s)
	if !slices.Contains(stages, v) {
		return "", ErrInvalidStage
	}
	return v, nil
}
