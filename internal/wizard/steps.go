package wizard

import "github.com/kingrea/submission-builder/internal/draft"

// FieldKind tells a front end which widget edits a field.
type FieldKind int

const (
	KindLine FieldKind = iota
	KindText
	KindChoice
	KindChecklist
)

// FieldSpec describes one editable field on a step.
type FieldSpec struct {
	Field       draft.Field
	Kind        FieldKind
	Label       string
	Placeholder string
}

// StepInfo describes the content of one wizard page.
type StepInfo struct {
	Step   Step
	Title  string
	Fields []FieldSpec
}

// Preview reports whether the step shows the rendered document instead of inputs.
func (s StepInfo) Preview() bool {
	return len(s.Fields) == 0
}

var steps = []StepInfo{
	{
		Step:  1,
		Title: "YOUR DETAILS",
		Fields: []FieldSpec{
			{Field: draft.FieldName, Kind: KindLine, Label: "Full Name", Placeholder: "Full Name"},
			{Field: draft.FieldEmail, Kind: KindLine, Label: "Email", Placeholder: "Email"},
			{Field: draft.FieldLocation, Kind: KindLine, Label: "Location", Placeholder: "Location in New Zealand"},
			{Field: draft.FieldSubmissionType, Kind: KindChoice, Label: "Submission type"},
		},
	},
	{
		Step:  2,
		Title: "CURRENT REGULATION",
		Fields: []FieldSpec{
			{
				Field:       draft.FieldQualityViews,
				Kind:        KindText,
				Label:       "What are your views on the quality of New Zealand's regulation?",
				Placeholder: "Consider: effectiveness, costs, benefits, impacts...",
			},
			{
				Field:       draft.FieldOversightViews,
				Kind:        KindText,
				Label:       "What are your views on current regulatory oversight arrangements?",
				Placeholder: "Consider: RIS requirements, disclosure statements, monitoring...",
			},
		},
	},
	{
		Step:  3,
		Title: "PROPOSED PRINCIPLES",
		Fields: []FieldSpec{
			{
				Field: draft.FieldPrinciplesConcerns,
				Kind:  KindChecklist,
				Label: "Which concerns do you have about the proposed principles?",
			},
		},
	},
	{
		Step:  4,
		Title: "MECHANISMS, BOARD AND POWERS",
		Fields: []FieldSpec{
			{
				Field:       draft.FieldMechanismsFeedback,
				Kind:        KindText,
				Label:       "What feedback do you have on the proposed mechanisms?",
				Placeholder: "Consider: consistency accountability statements, certification, reviews...",
			},
			{
				Field:       draft.FieldBoardViews,
				Kind:        KindText,
				Label:       "What are your views on the proposed Regulatory Standards Board?",
				Placeholder: "Consider: independence, membership, remit...",
			},
			{
				Field:       draft.FieldPowersConcerns,
				Kind:        KindText,
				Label:       "What concerns do you have about new powers for the Ministry for Regulation?",
				Placeholder: "Consider: information gathering, oversight of agencies...",
			},
		},
	},
	{
		Step:  5,
		Title: "PREVIEW SUBMISSION",
	},
}

// Steps returns the static step catalog in order.
func Steps() []StepInfo {
	out := make([]StepInfo, len(steps))
	for i, s := range steps {
		s.Fields = append([]FieldSpec(nil), s.Fields...)
		out[i] = s
	}
	return out
}

// Info returns the catalog entry for step. ok is false for out-of-range steps.
func Info(step Step) (StepInfo, bool) {
	if !step.Valid() {
		return StepInfo{}, false
	}
	info := steps[step-1]
	info.Fields = append([]FieldSpec(nil), info.Fields...)
	return info, true
}

// ChoiceLabel is the display text for a submission type option.
func ChoiceLabel(t draft.SubmissionType) string {
	switch t {
	case draft.SubmissionOrganisation:
		return "Organisation Submission"
	default:
		return "Personal Submission"
	}
}
