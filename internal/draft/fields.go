package draft

// Field names a draft field. The string value doubles as the JSON key.
type Field string

const (
	FieldName               Field = "name"
	FieldEmail              Field = "email"
	FieldLocation           Field = "location"
	FieldSubmissionType     Field = "submission_type"
	FieldQualityViews       Field = "quality_views"
	FieldOversightViews     Field = "oversight_views"
	FieldPrinciplesConcerns Field = "principles_concerns"
	FieldMechanismsFeedback Field = "mechanisms_feedback"
	FieldBoardViews         Field = "board_views"
	FieldPowersConcerns     Field = "powers_concerns"
)

// Fields lists every field in document order.
func Fields() []Field {
	return []Field{
		FieldName,
		FieldEmail,
		FieldLocation,
		FieldSubmissionType,
		FieldQualityViews,
		FieldOversightViews,
		FieldPrinciplesConcerns,
		FieldMechanismsFeedback,
		FieldBoardViews,
		FieldPowersConcerns,
	}
}

// IsScalar reports whether the field holds a single string value.
func (f Field) IsScalar() bool {
	switch f {
	case FieldPrinciplesConcerns:
		return false
	case FieldName, FieldEmail, FieldLocation, FieldSubmissionType,
		FieldQualityViews, FieldOversightViews,
		FieldMechanismsFeedback, FieldBoardViews, FieldPowersConcerns:
		return true
	}
	return false
}

// Principle concerns offered on the principles step.
const (
	ConcernLegalPrinciples    = "The principles don't adequately reflect existing legal principles"
	ConcernRightsTooNarrow    = "The focus on rights and liberties is too narrow"
	ConcernLawMakingProcess   = "Good law-making process principles need refinement"
	ConcernStewardship        = "Regulatory stewardship principles need strengthening"
	ConcernSecondaryPlacement = "Principles should be in secondary rather than primary legislation"
	ConcernAdditional         = "Additional principles should be included"
	ConcernOther              = "Other concerns (specify below)"
)

var concernCatalog = []string{
	ConcernLegalPrinciples,
	ConcernRightsTooNarrow,
	ConcernLawMakingProcess,
	ConcernStewardship,
	ConcernSecondaryPlacement,
	ConcernAdditional,
	ConcernOther,
}

// Concerns returns the fixed catalog in display order.
func Concerns() []string {
	return append([]string(nil), concernCatalog...)
}

// IsConcern reports whether value is a catalog entry.
func IsConcern(value string) bool {
	for _, c := range concernCatalog {
		if c == value {
			return true
		}
	}
	return false
}
