package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/submission-builder/internal/draft"
	"github.com/kingrea/submission-builder/internal/wizard"
)

const (
	appTitle = "⬡ REGULATORY STANDARDS BILL SUBMISSION BUILDER"
	banner   = "Build your submission responding to the proposed Regulatory Standards Bill. Consultation closes January 13, 2025."
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	bannerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#222222")).Padding(0, 1)
	stepOnStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#5B8DEF")).Padding(0, 1)
	stepOffStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA")).Padding(0, 1)
	headingStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")).MarginBottom(1)
	labelStyle     = lipgloss.NewStyle().Bold(true)
	labelOnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F7B801"))
	checkedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4CAF50"))
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	linkStyle      = lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("#5B8DEF"))
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#444444")).Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).MarginTop(1)
	warnStatusText = "⚠"
)

// View renders the program's UI, which is just a string.
func (a *App) View() string {
	if a.quitting {
		return ""
	}
	info := a.currentInfo()
	header := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(appTitle),
		bannerStyle.Width(a.contentWidth()).Render(banner),
	)
	var body string
	if info.Preview() {
		body = a.renderPreview(info)
	} else {
		body = a.renderFields(info)
	}
	box := boxStyle.Width(a.contentWidth() + 2).Render(body)

	sections := []string{header, a.renderStepIndicator(), box}
	if a.statusMsg != "" {
		style := statusStyle
		if strings.HasPrefix(a.statusMsg, warnStatusText) {
			style = style.Foreground(lipgloss.Color("#FF6B6B"))
		}
		sections = append(sections, style.Render(a.statusMsg))
	}
	kind := wizard.KindLine
	if spec, ok := a.focusedField(); ok {
		kind = spec.Kind
	}
	sections = append(sections, a.help.ShortHelpView(a.keys.bindings(info, kind, a.nav.IsLast())))
	return strings.Join(sections, "\n")
}

func (a *App) renderStepIndicator() string {
	current := a.nav.Current()
	parts := make([]string, 0, wizard.LastStep)
	for step := wizard.FirstStep; step <= wizard.LastStep; step++ {
		label := fmt.Sprintf("%d", step)
		if step == current {
			parts = append(parts, stepOnStyle.Render(label))
			continue
		}
		parts = append(parts, stepOffStyle.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (a *App) renderFields(info wizard.StepInfo) string {
	lines := []string{headingStyle.Render(fmt.Sprintf("STEP %d: %s", info.Step, info.Title))}
	current := a.store.Draft()
	for i, spec := range info.Fields {
		focused := i == a.focus
		label := labelStyle
		if focused {
			label = labelOnStyle
		}
		lines = append(lines, label.Render(spec.Label))
		switch spec.Kind {
		case wizard.KindLine:
			in := a.lines[spec.Field]
			lines = append(lines, in.View())
		case wizard.KindText:
			ta := a.texts[spec.Field]
			lines = append(lines, ta.View())
		case wizard.KindChoice:
			lines = append(lines, a.renderChoice(current.SubmissionType, focused))
		case wizard.KindChecklist:
			lines = append(lines, a.renderChecklist(current, focused))
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderChoice(selected draft.SubmissionType, focused bool) string {
	rows := make([]string, len(submissionChoices))
	for i, choice := range submissionChoices {
		mark := "( )"
		if choice == selected {
			mark = checkedStyle.Render("(•)")
		}
		rows[i] = cursorPrefix(focused && i == a.choiceCursor) + mark + " " + wizard.ChoiceLabel(choice)
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderChecklist(current draft.Draft, focused bool) string {
	catalog := draft.Concerns()
	rows := make([]string, len(catalog))
	for i, concern := range catalog {
		mark := "[ ]"
		if current.HasConcern(concern) {
			mark = checkedStyle.Render("[x]")
		}
		rows[i] = cursorPrefix(focused && i == a.concernCursor) + mark + " " + concern
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderPreview(info wizard.StepInfo) string {
	lines := []string{
		headingStyle.Render(info.Title),
		a.preview.View(),
		"",
		"1. Copy this text and submit through the official consultation form:",
		linkStyle.Render(a.destination),
		mutedStyle.Render(fmt.Sprintf("%d%% · press c to copy to clipboard", int(a.preview.ScrollPercent()*100))),
	}
	return strings.Join(lines, "\n")
}

func cursorPrefix(on bool) string {
	if on {
		return "› "
	}
	return "  "
}

func wrap(text string, width int) string {
	return lipgloss.NewStyle().Width(max(minContentWidth, width)).Render(text)
}
