package returns

import (
	"fmt"
	"slices"
	"time"
)

// InspectionResult is the staff verdict on returned goods.
type InspectionResult string

const (
	InspectionPassed  InspectionResult = "passed"
	InspectionFailed  InspectionResult = "failed"
	InspectionPartial InspectionResult = "partial"
)

var AvailableInspectionResults = []InspectionResult{InspectionPassed, InspectionFailed, InspectionPartial}

func ParseInspectionResult(raw string) (InspectionResult, error) {
	if slices.Contains(AvailableInspectionResults, InspectionResult(raw)) {
		return InspectionResult(raw), nil
	}
	return "", fmt.Errorf("%w: unknown inspection result %q", ErrValidation, raw)
}

// FollowUpStatus derives the status a request moves to after this verdict.
func (r InspectionResult) FollowUpStatus() Status {
	if r == InspectionFailed {
		return StatusAbnormalDisputed
	}
	return StatusRefundProcessing
}

// ConditionGrade rates the resale condition of returned goods.
type ConditionGrade string

const (
	GradeA ConditionGrade = "A" // like new, resell directly
	GradeB ConditionGrade = "B" // light wear, resell after cleaning
	GradeC ConditionGrade = "C" // visible wear, resell discounted
	GradeD ConditionGrade = "D" // impaired, needs repair
	GradeF ConditionGrade = "F" // unusable, scrap
)

var AvailableConditionGrades = []ConditionGrade{GradeA, GradeB, GradeC, GradeD, GradeF}

func ParseConditionGrade(raw string) (ConditionGrade, error) {
	if slices.Contains(AvailableConditionGrades, ConditionGrade(raw)) {
		return ConditionGrade(raw), nil
	}
	return "", fmt.Errorf("%w: unknown condition grade %q", ErrValidation, raw)
}

// Resellable reports whether goods in this grade can go back on sale.
func (g ConditionGrade) Resellable() bool {
	return g == GradeA || g == GradeB || g == GradeC
}

// Checklist holds the named boolean checks of an inspection. A nil value
// means the check was not performed.
type Checklist map[string]*bool

// ChecklistKeys are the checks the inspection form presents.
var ChecklistKeys = []string{
	"packaging_intact",
	"product_intact",
	"accessories_complete",
	"matches_photos",
	"resellable",
}

// InspectionRecord captures one inspection event. Records are insert-only;
// re-inspection creates a new record.
type InspectionRecord struct {
	ID          string    `json:"id"`
	InspectedAt time.Time `json:"inspected_at"`
	NewInspectionRecord
}

type NewInspectionRecord struct {
	ReturnRequestID  string           `json:"return_request_id"`
	InspectorID      string           `json:"inspector_id"`
	Result           InspectionResult `json:"result"`
	ConditionGrade   ConditionGrade   `json:"condition_grade"`
	Checklist        Checklist        `json:"checklist"`
	Notes            string           `json:"notes,omitempty"`
	InspectorComment string           `json:"inspector_comment,omitempty"`
}
