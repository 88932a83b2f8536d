// internal/tui/app.go
//
// This is the full-screen submission wizard. It uses bubbletea, which follows
// The Elm Architecture:
//
// 1. Model: the App, wrapping the draft store and one widget per field
// 2. Update: key presses edit the draft or move between steps
// 3. View: a string rendered from the current step
//
// Every edit goes straight through the store, so the draft on disk follows
// each keystroke.

package tui

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kingrea/submission-builder/internal/config"
	"github.com/kingrea/submission-builder/internal/draft"
	"github.com/kingrea/submission-builder/internal/render"
	"github.com/kingrea/submission-builder/internal/store"
	"github.com/kingrea/submission-builder/internal/wizard"
)

const (
	defaultWidth    = 80
	defaultHeight   = 24
	textAreaHeight  = 4
	chromeHeight    = 12
	minContentWidth = 20
)

var clipboardWriteAll = clipboard.WriteAll

// submissionChoices is the radio order on step 1.
var submissionChoices = []draft.SubmissionType{draft.SubmissionPersonal, draft.SubmissionOrganisation}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClipboard replaces the system clipboard writer.
func WithClipboard(fn func(string) error) AppOption {
	return func(a *App) {
		if fn != nil {
			a.copy = fn
		}
	}
}

// WithDestinationURL sets the consultation link shown on the preview step.
func WithDestinationURL(url string) AppOption {
	return func(a *App) {
		if url != "" {
			a.destination = url
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *zap.Logger) AppOption {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithLoadResult surfaces the outcome of the startup load in the status line.
func WithLoadResult(res store.LoadResult) AppOption {
	return func(a *App) {
		switch res.Status {
		case store.LoadRestored:
			a.statusMsg = "Restored your saved draft."
		case store.LoadCorrupt:
			a.statusMsg = fmt.Sprintf("⚠ Saved draft could not be read, starting fresh: %v", res.Err)
		}
	}
}

type clipboardResultMsg struct {
	bytes int
	err   error
}

// App is the main application model. In bubbletea, this holds ALL your state.
type App struct {
	store       *store.Store
	nav         *wizard.Navigator
	logger      *zap.Logger
	copy        func(string) error
	destination string

	// UI components
	keys    keyMap
	help    help.Model
	lines   map[draft.Field]textinput.Model
	texts   map[draft.Field]textarea.Model
	preview viewport.Model

	focus         int // index into the current step's fields
	choiceCursor  int
	concernCursor int

	statusMsg      string
	persistWarning bool
	quitting       bool

	// Window size (we get this from bubbletea)
	width  int
	height int
}

// NewApp builds the wizard over s. The store should already be loaded.
func NewApp(s *store.Store, opts ...AppOption) *App {
	a := &App{
		store:       s,
		nav:         wizard.NewNavigator(),
		logger:      zap.NewNop(),
		copy:        clipboardWriteAll,
		destination: config.DefaultDestinationURL,
		keys:        defaultKeyMap(),
		help:        help.New(),
		lines:       map[draft.Field]textinput.Model{},
		texts:       map[draft.Field]textarea.Model{},
		preview:     viewport.New(defaultWidth, defaultHeight-chromeHeight),
		width:       defaultWidth,
		height:      defaultHeight,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	a.buildEditors()
	a.focusCurrent()
	return a
}

func (a *App) buildEditors() {
	current := a.store.Draft()
	for _, info := range wizard.Steps() {
		for _, spec := range info.Fields {
			value, _ := current.Value(spec.Field)
			switch spec.Kind {
			case wizard.KindLine:
				in := textinput.New()
				in.Placeholder = spec.Placeholder
				in.Prompt = ""
				in.CharLimit = 0
				in.Width = a.contentWidth()
				in.SetValue(value)
				a.lines[spec.Field] = in
			case wizard.KindText:
				ta := textarea.New()
				ta.Placeholder = spec.Placeholder
				ta.CharLimit = 0
				ta.MaxHeight = 0
				ta.ShowLineNumbers = false
				ta.SetWidth(a.contentWidth())
				ta.SetHeight(textAreaHeight)
				ta.SetValue(value)
				a.texts[spec.Field] = ta
			case wizard.KindChoice:
				for i, choice := range submissionChoices {
					if choice == current.SubmissionType {
						a.choiceCursor = i
					}
				}
			}
		}
	}
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return textinput.Blink
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil

	case clipboardResultMsg:
		a.handleClipboardResult(msg)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	// Cursor blinks and the like belong to whichever editor has focus.
	if spec, ok := a.focusedField(); ok {
		return a, a.updateEditor(spec, msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		a.quitting = true
		return a, tea.Quit
	case key.Matches(msg, a.keys.Next):
		a.nav.Next()
		return a, a.enterStep()
	case key.Matches(msg, a.keys.Back):
		a.nav.Back()
		return a, a.enterStep()
	case key.Matches(msg, a.keys.Jump):
		if err := a.nav.GoTo(jumpTargets[msg.String()]); err != nil {
			a.statusMsg = err.Error()
			return a, nil
		}
		return a, a.enterStep()
	case key.Matches(msg, a.keys.FocusNext):
		return a, a.setFocus(a.focus + 1)
	case key.Matches(msg, a.keys.FocusPrev):
		return a, a.setFocus(a.focus - 1)
	}

	info := a.currentInfo()
	if info.Preview() {
		if key.Matches(msg, a.keys.Copy) {
			return a, a.copyDocument()
		}
		var cmd tea.Cmd
		a.preview, cmd = a.preview.Update(msg)
		return a, cmd
	}

	spec, ok := a.focusedField()
	if !ok {
		return a, nil
	}
	switch spec.Kind {
	case wizard.KindChoice:
		a.handleChoiceKey(msg)
		return a, nil
	case wizard.KindChecklist:
		a.handleChecklistKey(msg)
		return a, nil
	}
	return a, a.updateEditor(spec, msg)
}

func (a *App) handleChoiceKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, a.keys.Up):
		a.choiceCursor = clamp(a.choiceCursor-1, 0, len(submissionChoices)-1)
	case key.Matches(msg, a.keys.Down):
		a.choiceCursor = clamp(a.choiceCursor+1, 0, len(submissionChoices)-1)
	case key.Matches(msg, a.keys.Toggle), msg.Type == tea.KeyEnter:
		choice := submissionChoices[a.choiceCursor]
		if choice != a.store.Draft().SubmissionType {
			a.report(a.store.Update(draft.FieldSubmissionType, string(choice)))
		}
	}
}

func (a *App) handleChecklistKey(msg tea.KeyMsg) {
	catalog := draft.Concerns()
	switch {
	case key.Matches(msg, a.keys.Up):
		a.concernCursor = clamp(a.concernCursor-1, 0, len(catalog)-1)
	case key.Matches(msg, a.keys.Down):
		a.concernCursor = clamp(a.concernCursor+1, 0, len(catalog)-1)
	case key.Matches(msg, a.keys.Toggle), msg.Type == tea.KeyEnter:
		a.report(a.store.TogglePrincipleConcern(catalog[a.concernCursor]))
	}
}

// updateEditor feeds msg to the focused text widget and pushes the widget's
// value into the store only when msg changed it. Widgets normalize text on
// SetValue, so comparing against the stored draft would rewrite untouched
// fields.
func (a *App) updateEditor(spec wizard.FieldSpec, msg tea.Msg) tea.Cmd {
	var (
		cmd           tea.Cmd
		before, after string
	)
	switch spec.Kind {
	case wizard.KindLine:
		in := a.lines[spec.Field]
		before = in.Value()
		in, cmd = in.Update(msg)
		a.lines[spec.Field] = in
		after = in.Value()
	case wizard.KindText:
		ta := a.texts[spec.Field]
		before = ta.Value()
		ta, cmd = ta.Update(msg)
		a.texts[spec.Field] = ta
		after = ta.Value()
	default:
		return nil
	}
	if after != before {
		a.report(a.store.Update(spec.Field, after))
	}
	return cmd
}

// report turns a store result into a status line.
func (a *App) report(err error) {
	switch {
	case err == nil:
		if a.persistWarning {
			a.persistWarning = false
			a.statusMsg = "Draft saved."
		}
	case errors.Is(err, store.ErrPersistFailed):
		a.persistWarning = true
		a.statusMsg = fmt.Sprintf("⚠ Changes kept but not saved: %v", err)
	default:
		a.statusMsg = err.Error()
	}
}

func (a *App) copyDocument() tea.Cmd {
	doc := render.Document(a.store.Draft())
	write := a.copy
	return func() tea.Msg {
		return clipboardResultMsg{bytes: len(doc), err: write(doc)}
	}
}

func (a *App) handleClipboardResult(msg clipboardResultMsg) {
	if msg.err != nil {
		a.logger.Warn("clipboard write failed", zap.Error(msg.err))
		a.statusMsg = fmt.Sprintf("⚠ Could not copy to clipboard: %v", msg.err)
		return
	}
	a.logger.Info("submission copied to clipboard", zap.Int("bytes", msg.bytes))
	a.statusMsg = "Copied to clipboard."
}

// enterStep resets focus after a step change and refreshes the preview.
func (a *App) enterStep() tea.Cmd {
	a.blurAll()
	a.focus = 0
	if a.currentInfo().Preview() {
		a.refreshPreview()
		a.preview.GotoTop()
		return nil
	}
	return a.focusCurrent()
}

func (a *App) setFocus(idx int) tea.Cmd {
	fields := a.currentInfo().Fields
	if len(fields) == 0 {
		return nil
	}
	a.blurAll()
	a.focus = (idx%len(fields) + len(fields)) % len(fields)
	return a.focusCurrent()
}

func (a *App) focusCurrent() tea.Cmd {
	spec, ok := a.focusedField()
	if !ok {
		return nil
	}
	switch spec.Kind {
	case wizard.KindLine:
		in := a.lines[spec.Field]
		cmd := in.Focus()
		a.lines[spec.Field] = in
		return cmd
	case wizard.KindText:
		ta := a.texts[spec.Field]
		cmd := ta.Focus()
		a.texts[spec.Field] = ta
		return cmd
	}
	return nil
}

func (a *App) blurAll() {
	for field, in := range a.lines {
		in.Blur()
		a.lines[field] = in
	}
	for field, ta := range a.texts {
		ta.Blur()
		a.texts[field] = ta
	}
}

func (a *App) currentInfo() wizard.StepInfo {
	info, _ := wizard.Info(a.nav.Current())
	return info
}

func (a *App) focusedField() (wizard.FieldSpec, bool) {
	fields := a.currentInfo().Fields
	if a.focus < 0 || a.focus >= len(fields) {
		return wizard.FieldSpec{}, false
	}
	return fields[a.focus], true
}

func (a *App) resize(width, height int) {
	a.width = width
	a.height = height
	w := a.contentWidth()
	for field, in := range a.lines {
		in.Width = w
		a.lines[field] = in
	}
	for field, ta := range a.texts {
		ta.SetWidth(w)
		a.texts[field] = ta
	}
	a.help.Width = w
	a.preview.Width = w
	a.preview.Height = max(3, height-chromeHeight)
	if a.currentInfo().Preview() {
		a.refreshPreview()
	}
}

func (a *App) refreshPreview() {
	a.preview.SetContent(wrap(render.Document(a.store.Draft()), a.contentWidth()))
}

func (a *App) contentWidth() int {
	return max(minContentWidth, a.width-6)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
