// Package tui provides the interactive terminal form for the calculator.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"haversine/internal/distance"
)

const (
	fieldA = iota
	fieldB
	fieldCount
)

var fieldLabels = [fieldCount]string{"Point A", "Point B"}

// Form is a two-field calculator form. It owns the UI state: the text of
// each field, the last result and the last error message.
type Form struct {
	service distance.Service
	styles  *Styles

	inputs [fieldCount]textinput.Model
	focus  int

	result       string
	errorMessage string
}

// NewForm creates a form with Point A focused.
func NewForm(service distance.Service, s *Styles) *Form {
	if s == nil {
		s = DefaultStyles()
	}

	f := &Form{
		service: service,
		styles:  s,
	}

	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = "latitude,longitude"
		ti.CharLimit = 64
		ti.Width = 32
		ti.Prompt = ""
		f.inputs[i] = ti
	}
	f.inputs[fieldA].Focus()

	return f
}

// Init initialises the form.
func (f *Form) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and forwards everything else to the focused input.
func (f *Form) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return f, tea.Quit
		case "enter":
			f.Submit()
			return f, nil
		case "ctrl+r":
			return f, f.Reset()
		case "tab", "down":
			return f, f.setFocus((f.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return f, f.setFocus((f.focus + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd
}

// Submit evaluates both fields. A failure shows its message and keeps the
// last result; a success replaces the result and clears the message.
func (f *Form) Submit() {
	f.errorMessage = ""

	res, err := f.service.Evaluate(f.inputs[fieldA].Value(), f.inputs[fieldB].Value())
	if err != nil {
		f.errorMessage = err.Error()
		return
	}

	f.result = res.Distance.String()
}

// Reset clears both fields, the result and the error, and focuses Point A.
func (f *Form) Reset() tea.Cmd {
	for i := range f.inputs {
		f.inputs[i].Reset()
	}
	f.result = ""
	f.errorMessage = ""
	return f.setFocus(fieldA)
}

func (f *Form) setFocus(i int) tea.Cmd {
	f.focus = i
	var cmd tea.Cmd
	for j := range f.inputs {
		if j == i {
			cmd = f.inputs[j].Focus()
			continue
		}
		f.inputs[j].Blur()
	}
	return cmd
}

// View renders the form.
func (f *Form) View() string {
	var b strings.Builder

	b.WriteString(f.styles.Title.Render("Haversine Calculator"))
	b.WriteString("\n")

	for i, input := range f.inputs {
		label := f.styles.Label.Render(fieldLabels[i])
		if i == f.focus {
			label = f.styles.Focused.Render(fieldLabels[i])
		}
		field := f.styles.InputField.Render(input.View())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, label, field))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.errorMessage != "" {
		b.WriteString(f.styles.Error.Render(f.errorMessage))
		b.WriteString("\n")
	}
	b.WriteString("Distance: " + f.styles.Result.Render(f.result))
	b.WriteString("\n")

	b.WriteString(f.styles.Help.Render("enter calculate • ctrl+r reset • tab switch field • esc quit"))

	return b.String()
}

// SetValues sets the text of both fields.
func (f *Form) SetValues(a, b string) {
	f.inputs[fieldA].SetValue(a)
	f.inputs[fieldB].SetValue(b)
}

// Values returns the text of both fields.
func (f *Form) Values() (string, string) {
	return f.inputs[fieldA].Value(), f.inputs[fieldB].Value()
}

// Result returns the last successfully computed distance, or "".
func (f *Form) Result() string {
	return f.result
}

// ErrorMessage returns the message of the last failed submit, or "".
func (f *Form) ErrorMessage() string {
	return f.errorMessage
}

// Focused returns the index of the focused field (0 for A, 1 for B).
func (f *Form) Focused() int {
	return f.focus
}
