// Package picker renders interactive selection prompts for commands that run
// without arguments on a terminal.
package picker

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/devmake/devmake/internal/messages"
	"github.com/devmake/devmake/internal/terminal"
)

// ErrCancelled reports that the user backed out of a prompt without choosing.
var ErrCancelled = errors.New(messages.PickerCancelled)

// UI prompts the user to choose from a list of options.
type UI interface {
	// MultiSelect fills selected with the chosen options. It returns
	// ErrCancelled when the user aborts the prompt.
	MultiSelect(title string, options []string, selected *[]string) error
}

// HuhUI implements UI using charmbracelet/huh forms.
type HuhUI struct {
	isTerminal func() bool
}

var runFormFunc = func(form *huh.Form) error { return form.Run() }

// NewHuhUI returns a HuhUI using the default terminal check.
func NewHuhUI() *HuhUI {
	return &HuhUI{isTerminal: terminal.Interactive}
}

// ensureInteractive returns an error when the UI is invoked without a terminal.
func (ui *HuhUI) ensureInteractive() error {
	checker := ui.isTerminal
	if checker == nil {
		checker = terminal.Interactive
	}
	if checker() {
		return nil
	}
	return errors.New(messages.PickerRequiresTerminal)
}

// pickerKeyMap maps both Esc and Ctrl+C to form abort. The field-level Prev
// and Next bindings are repurposed as display-only hints; the form intercepts
// both keys at the Quit level before any field binding can fire.
func pickerKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()
	km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "esc"))
	km.MultiSelect.Prev = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", messages.PickerHintCancel))
	km.MultiSelect.Next = key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", messages.PickerHintExit))
	return km
}

// hintField wraps the prompt field so the abort-key hints stay visible.
// huh disables Prev on the first field and Next on the last one whenever it
// assigns positions, and a picker form has exactly one field, so both hints
// would vanish. The wrapper re-applies the picker keymap after every
// position change.
type hintField struct {
	huh.Field
}

func newHintField(field huh.Field) huh.Field {
	return &hintField{Field: field}
}

// Update delegates to the inner field and re-wraps so the wrapper stays in
// the group's field list (group.Update stores the returned tea.Model).
func (f *hintField) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	model, cmd := f.Field.Update(msg)
	if field, ok := model.(huh.Field); ok {
		f.Field = field
	}
	return f, cmd
}

// WithPosition lets huh set positional state, then restores the hint bindings
// the position update disabled.
func (f *hintField) WithPosition(p huh.FieldPosition) huh.Field {
	f.Field.WithPosition(p)
	f.Field.WithKeyMap(pickerKeyMap())
	return f
}

// MultiSelect renders a multi-choice prompt for options.
func (ui *HuhUI) MultiSelect(title string, options []string, selected *[]string) error {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o, o)
	}

	return ui.runForm(huh.NewForm(
		huh.NewGroup(
			newHintField(huh.NewMultiSelect[string]().
				Title(title).
				Filterable(false).
				Options(opts...).
				Value(selected)),
		),
	))
}

// runForm validates terminal availability and runs the form. Both Esc and
// Ctrl+C abort and map to ErrCancelled; the only prompt devmake shows is a
// single form, so there is no back navigation to distinguish.
func (ui *HuhUI) runForm(form *huh.Form) error {
	if err := ui.ensureInteractive(); err != nil {
		return err
	}

	form.WithKeyMap(pickerKeyMap())
	form.WithProgramOptions(
		tea.WithOutput(os.Stderr),
		tea.WithFilter(interruptFilter),
	)

	err := runFormFunc(form)
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return err
}

// interruptFilter converts InterruptMsg (huh's CancelCmd or an external
// SIGINT) to QuitMsg so bubbletea takes the graceful shutdown path and the
// renderer clears the form output.
func interruptFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.InterruptMsg); ok {
		return tea.QuitMsg{}
	}
	return msg
}
