// Package render turns a draft into the plain-text submission document the
// user pastes into the consultation form.
package render

import (
	"strings"

	"github.com/kingrea/submission-builder/internal/draft"
)

// BillName is the legislation the submission responds to.
const BillName = "REGULATORY STANDARDS BILL"

// Section headings, numbered as they appear in the document.
const (
	HeadingQuality    = "1. VIEWS ON QUALITY OF NEW ZEALAND'S REGULATION"
	HeadingOversight  = "2. VIEWS ON CURRENT REGULATORY OVERSIGHT ARRANGEMENTS"
	HeadingPrinciples = "3. CONCERNS ABOUT PROPOSED PRINCIPLES"
	HeadingMechanisms = "4. FEEDBACK ON PROPOSED MECHANISMS"
	HeadingBoard      = "5. VIEWS ON PROPOSED REGULATORY STANDARDS BOARD"
	HeadingPowers     = "6. CONCERNS ABOUT NEW POWERS FOR MINISTRY FOR REGULATION"
)

// Document renders d. The output depends only on d; every draft, including
// one with all fields empty, produces a complete document. Field text is
// copied verbatim.
func Document(d draft.Draft) string {
	var b strings.Builder
	b.WriteString("SUBMISSION ON THE " + BillName + "\n\n")

	b.WriteString("From: " + d.Name + "\n")
	b.WriteString("Email: " + d.Email + "\n")
	b.WriteString("Location: " + d.Location + "\n")
	b.WriteString("Submission type: " + string(d.SubmissionType) + "\n\n")

	section(&b, HeadingQuality, d.QualityViews)
	section(&b, HeadingOversight, d.OversightViews)
	section(&b, HeadingPrinciples, ConcernList(d.PrinciplesConcerns))
	section(&b, HeadingMechanisms, d.MechanismsFeedback)
	section(&b, HeadingBoard, d.BoardViews)

	b.WriteString(HeadingPowers + "\n")
	b.WriteString(d.PowersConcerns)
	return b.String()
}

// ConcernList renders each concern as its own "- " line, keeping order.
// An empty selection renders as the empty string.
func ConcernList(concerns []string) string {
	var b strings.Builder
	for _, c := range concerns {
		b.WriteString("- " + c + "\n")
	}
	return b.String()
}

func section(b *strings.Builder, heading, body string) {
	b.WriteString(heading + "\n")
	b.WriteString(body)
	b.WriteString("\n\n")
}
