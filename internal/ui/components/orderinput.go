package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/rodrigofbmattos/gerar-cronograma/internal/ui/theme"
)

// OrderInput is a text input for typed subject orders such as "3, 1, 2".
// Keys other than digits and separators are dropped.
type OrderInput struct {
	Model  textinput.Model
	errMsg string
}

// NewOrderInput creates a focused order input.
func NewOrderInput(placeholder string, maxWidth int) OrderInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "> "
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return OrderInput{Model: ti}
}

// Init returns the initial command.
func (o OrderInput) Init() tea.Cmd {
	return o.Model.Focus()
}

// Update handles messages.
func (o OrderInput) Update(msg tea.Msg) (OrderInput, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		key := kmsg.String()
		if len(key) == 1 && !allowed(key[0]) {
			return o, nil
		}
	}

	var cmd tea.Cmd
	o.Model, cmd = o.Model.Update(msg)
	return o, cmd
}

func allowed(c byte) bool {
	return (c >= '0' && c <= '9') || c == ',' || c == ';' || c == ' '
}

// View renders the input and the last error, if any.
func (o OrderInput) View() string {
	view := o.Model.View()
	if o.errMsg != "" {
		view += "\n" + lipgloss.NewStyle().Foreground(theme.Error).Render(o.errMsg)
	}
	return view
}

// Value returns the current input value.
func (o OrderInput) Value() string {
	return o.Model.Value()
}

// Fail records a rejected value so View can show why.
func (o *OrderInput) Fail(err error) {
	o.errMsg = err.Error()
}
