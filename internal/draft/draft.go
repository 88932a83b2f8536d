// internal/draft/draft.go
//
// The submission draft: every answer the user has given so far, held in one
// flat record. The JSON tags match the blob layout stored in the persistence
// slot, so a saved draft can be restored on the next launch.

package draft

import (
	"errors"
	"fmt"
	"slices"
)

// SubmissionType says whether the submitter writes for themselves or for an
// organisation.
type SubmissionType string

const (
	SubmissionPersonal     SubmissionType = "personal"
	SubmissionOrganisation SubmissionType = "organisation"
)

// Valid reports whether t is one of the two accepted values.
func (t SubmissionType) Valid() bool {
	return t == SubmissionPersonal || t == SubmissionOrganisation
}

var (
	// ErrUnknownConcern is returned when a concern is not in the catalog.
	ErrUnknownConcern = errors.New("draft: unknown principle concern")
	// ErrDuplicateConcern is returned when a concern appears twice.
	ErrDuplicateConcern = errors.New("draft: duplicate principle concern")
	// ErrInvalidSubmissionType is returned for values other than personal/organisation.
	ErrInvalidSubmissionType = errors.New("draft: invalid submission type")
	// ErrUnknownField is returned for field names the draft does not carry.
	ErrUnknownField = errors.New("draft: unknown field")
	// ErrNotScalar is returned when a set-valued field is addressed as text.
	ErrNotScalar = errors.New("draft: field is not a scalar")
)

// Draft is the complete set of in-progress answers for one submission.
type Draft struct {
	Name               string         `json:"name"`
	Email              string         `json:"email"`
	Location           string         `json:"location"`
	SubmissionType     SubmissionType `json:"submission_type"`
	QualityViews       string         `json:"quality_views"`
	OversightViews     string         `json:"oversight_views"`
	PrinciplesConcerns []string       `json:"principles_concerns"`
	MechanismsFeedback string         `json:"mechanisms_feedback"`
	BoardViews         string         `json:"board_views"`
	PowersConcerns     string         `json:"powers_concerns"`
}

// New returns the all-empty default draft.
func New() Draft {
	return Draft{
		SubmissionType:     SubmissionPersonal,
		PrinciplesConcerns: []string{},
	}
}

// Clone returns a deep copy so callers cannot alias the concern list.
func (d Draft) Clone() Draft {
	out := d
	out.PrinciplesConcerns = append(make([]string, 0, len(d.PrinciplesConcerns)), d.PrinciplesConcerns...)
	return out
}

// Equal compares two drafts field by field. A nil and an empty concern list
// are considered equal.
func (d Draft) Equal(other Draft) bool {
	return d.Name == other.Name &&
		d.Email == other.Email &&
		d.Location == other.Location &&
		d.SubmissionType == other.SubmissionType &&
		d.QualityViews == other.QualityViews &&
		d.OversightViews == other.OversightViews &&
		slices.Equal(d.PrinciplesConcerns, other.PrinciplesConcerns) &&
		d.MechanismsFeedback == other.MechanismsFeedback &&
		d.BoardViews == other.BoardViews &&
		d.PowersConcerns == other.PowersConcerns
}

// Validate checks the invariants: a known submission type and a concern list
// holding catalog entries at most once each.
func (d Draft) Validate() error {
	if !d.SubmissionType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidSubmissionType, d.SubmissionType)
	}
	seen := make(map[string]struct{}, len(d.PrinciplesConcerns))
	for _, concern := range d.PrinciplesConcerns {
		if !IsConcern(concern) {
			return fmt.Errorf("%w: %q", ErrUnknownConcern, concern)
		}
		if _, ok := seen[concern]; ok {
			return fmt.Errorf("%w: %q", ErrDuplicateConcern, concern)
		}
		seen[concern] = struct{}{}
	}
	return nil
}

// HasConcern reports whether concern is currently selected.
func (d Draft) HasConcern(concern string) bool {
	return slices.Contains(d.PrinciplesConcerns, concern)
}

// Toggle returns a copy with concern removed when present, appended otherwise.
func (d Draft) Toggle(concern string) (Draft, error) {
	if !IsConcern(concern) {
		return d, fmt.Errorf("%w: %q", ErrUnknownConcern, concern)
	}
	out := d.Clone()
	if idx := slices.Index(out.PrinciplesConcerns, concern); idx >= 0 {
		out.PrinciplesConcerns = slices.Delete(out.PrinciplesConcerns, idx, idx+1)
		return out, nil
	}
	out.PrinciplesConcerns = append(out.PrinciplesConcerns, concern)
	return out, nil
}

// Value reads a scalar field.
func (d Draft) Value(field Field) (string, error) {
	switch field {
	case FieldName:
		return d.Name, nil
	case FieldEmail:
		return d.Email, nil
	case FieldLocation:
		return d.Location, nil
	case FieldSubmissionType:
		return string(d.SubmissionType), nil
	case FieldQualityViews:
		return d.QualityViews, nil
	case FieldOversightViews:
		return d.OversightViews, nil
	case FieldMechanismsFeedback:
		return d.MechanismsFeedback, nil
	case FieldBoardViews:
		return d.BoardViews, nil
	case FieldPowersConcerns:
		return d.PowersConcerns, nil
	case FieldPrinciplesConcerns:
		return "", fmt.Errorf("%w: %s", ErrNotScalar, field)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
}

// With returns a copy with one scalar field replaced. The submission type is
// checked against its enum; every other field accepts any text.
func (d Draft) With(field Field, value string) (Draft, error) {
	out := d.Clone()
	switch field {
	case FieldName:
		out.Name = value
	case FieldEmail:
		out.Email = value
	case FieldLocation:
		out.Location = value
	case FieldSubmissionType:
		t := SubmissionType(value)
		if !t.Valid() {
			return d, fmt.Errorf("%w: %q", ErrInvalidSubmissionType, value)
		}
		out.SubmissionType = t
	case FieldQualityViews:
		out.QualityViews = value
	case FieldOversightViews:
		out.OversightViews = value
	case FieldMechanismsFeedback:
		out.MechanismsFeedback = value
	case FieldBoardViews:
		out.BoardViews = value
	case FieldPowersConcerns:
		out.PowersConcerns = value
	case FieldPrinciplesConcerns:
		return d, fmt.Errorf("%w: %s", ErrNotScalar, field)
	default:
		return d, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return out, nil
}
