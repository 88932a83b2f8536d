package draft

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNewDraftDefaults(t *testing.T) {
	d := New()
	if d.SubmissionType != SubmissionPersonal {
		t.Fatalf("default submission type = %q, want personal", d.SubmissionType)
	}
	if len(d.PrinciplesConcerns) != 0 {
		t.Fatalf("expected empty concerns, got %v", d.PrinciplesConcerns)
	}
	if err := d.Validate(); err != nil {
		t.Fatalf("default draft must validate: %v", err)
	}
}

func TestToggleTwiceRestoresConcerns(t *testing.T) {
	start := New()
	start.PrinciplesConcerns = []string{ConcernStewardship, ConcernOther}
	for _, concern := range Concerns() {
		once, err := start.Toggle(concern)
		if err != nil {
			t.Fatalf("toggle %q: %v", concern, err)
		}
		twice, err := once.Toggle(concern)
		if err != nil {
			t.Fatalf("toggle %q again: %v", concern, err)
		}
		if start.HasConcern(concern) {
			// A selected concern comes back at the end of the list.
			if diff := cmp.Diff(start.PrinciplesConcerns, twice.PrinciplesConcerns, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
				t.Fatalf("toggle pair changed concern set for %q (-want +got):\n%s", concern, diff)
			}
			continue
		}
		if diff := cmp.Diff(start.PrinciplesConcerns, twice.PrinciplesConcerns); diff != "" {
			t.Fatalf("toggle pair changed concerns for %q (-want +got):\n%s", concern, diff)
		}
	}
}

func TestToggleAppendsInInsertionOrder(t *testing.T) {
	d := New()
	var err error
	for _, concern := range []string{ConcernOther, ConcernLegalPrinciples, ConcernAdditional} {
		d, err = d.Toggle(concern)
		if err != nil {
			t.Fatalf("toggle: %v", err)
		}
	}
	want := []string{ConcernOther, ConcernLegalPrinciples, ConcernAdditional}
	if diff := cmp.Diff(want, d.PrinciplesConcerns); diff != "" {
		t.Fatalf("concern order mismatch (-want +got):\n%s", diff)
	}
	d, err = d.Toggle(ConcernLegalPrinciples)
	if err != nil {
		t.Fatalf("toggle off: %v", err)
	}
	want = []string{ConcernOther, ConcernAdditional}
	if diff := cmp.Diff(want, d.PrinciplesConcerns); diff != "" {
		t.Fatalf("removal mismatch (-want +got):\n%s", diff)
	}
}

func TestToggleDoesNotAliasReceiver(t *testing.T) {
	d := New()
	d.PrinciplesConcerns = []string{ConcernOther, ConcernAdditional}
	if _, err := d.Toggle(ConcernOther); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(d.PrinciplesConcerns) != 2 || d.PrinciplesConcerns[0] != ConcernOther {
		t.Fatalf("receiver mutated: %v", d.PrinciplesConcerns)
	}
}

func TestToggleRejectsUnknownConcern(t *testing.T) {
	d := New()
	out, err := d.Toggle("Not in the catalog")
	if !errors.Is(err, ErrUnknownConcern) {
		t.Fatalf("expected ErrUnknownConcern, got %v", err)
	}
	if !out.Equal(d) {
		t.Fatalf("draft changed on rejected toggle")
	}
}

func TestWithReplacesScalarFields(t *testing.T) {
	d := New()
	for _, field := range Fields() {
		if !field.IsScalar() || field == FieldSubmissionType {
			continue
		}
		next, err := d.With(field, "value for "+string(field))
		if err != nil {
			t.Fatalf("with %s: %v", field, err)
		}
		got, err := next.Value(field)
		if err != nil {
			t.Fatalf("value %s: %v", field, err)
		}
		if got != "value for "+string(field) {
			t.Fatalf("%s = %q", field, got)
		}
		if before, _ := d.Value(field); before != "" {
			t.Fatalf("receiver mutated for %s", field)
		}
	}
}

func TestWithSubmissionType(t *testing.T) {
	d, err := New().With(FieldSubmissionType, "organisation")
	if err != nil {
		t.Fatalf("set organisation: %v", err)
	}
	if d.SubmissionType != SubmissionOrganisation {
		t.Fatalf("submission type = %q", d.SubmissionType)
	}
	if _, err := d.With(FieldSubmissionType, "organisational"); !errors.Is(err, ErrInvalidSubmissionType) {
		t.Fatalf("expected ErrInvalidSubmissionType, got %v", err)
	}
}

func TestWithRejectsNonScalarAndUnknown(t *testing.T) {
	d := New()
	if _, err := d.With(FieldPrinciplesConcerns, "x"); !errors.Is(err, ErrNotScalar) {
		t.Fatalf("expected ErrNotScalar, got %v", err)
	}
	if _, err := d.With(Field("favourite_colour"), "x"); !errors.Is(err, ErrUnknownField) {
		t.Fatalf("expected ErrUnknownField, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name  string
		draft Draft
		want  error
	}{
		{name: "default", draft: New()},
		{name: "bad type", draft: Draft{SubmissionType: "group"}, want: ErrInvalidSubmissionType},
		{name: "unknown concern", draft: Draft{SubmissionType: SubmissionPersonal, PrinciplesConcerns: []string{"nope"}}, want: ErrUnknownConcern},
		{name: "duplicate", draft: Draft{SubmissionType: SubmissionPersonal, PrinciplesConcerns: []string{ConcernOther, ConcernOther}}, want: ErrDuplicateConcern},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.draft.Validate()
			if tc.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestEqualTreatsNilAndEmptyConcernsAlike(t *testing.T) {
	a := New()
	b := New()
	b.PrinciplesConcerns = nil
	if !a.Equal(b) {
		t.Fatalf("nil and empty concern lists should compare equal")
	}
	b.Email = "jane@example.org"
	if a.Equal(b) {
		t.Fatalf("drafts with different email compared equal")
	}
}

func TestConcernsCatalogIsFixed(t *testing.T) {
	got := Concerns()
	if len(got) != 7 {
		t.Fatalf("catalog size = %d, want 7", len(got))
	}
	got[0] = "mutated"
	if Concerns()[0] != ConcernLegalPrinciples {
		t.Fatalf("Concerns must return a copy")
	}
}
