package ui

import (
	"strings"

	"calc/internal/calculator"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	StepOperand1 = iota
	StepOperator
	StepOperand2
)

// OperatorItem implements list.Item for the operator picker
type OperatorItem struct {
	Symbol string
	Detail string
}

func (i OperatorItem) FilterValue() string { return i.Symbol }
func (i OperatorItem) Title() string       { return i.Symbol }
func (i OperatorItem) Description() string { return i.Detail }

// CalcFormModel collects the two operands and the operator as a
// full-screen form. It performs no arithmetic itself; the command that
// ran it reads the exported fields once Completed is set.
type CalcFormModel struct {
	textInput textinput.Model
	list      list.Model
	step      int

	Operand1  float64
	Operand2  float64
	Operator  calculator.Operator
	Completed bool
	Cancelled bool

	errMsg string
}

func NewCalcFormModel() CalcFormModel {
	ti := textinput.New()
	ti.Placeholder = "0"
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 24

	items := []list.Item{
		OperatorItem{Symbol: "+", Detail: "Add the two numbers"},
		OperatorItem{Symbol: "-", Detail: "Subtract the second number from the first"},
		OperatorItem{Symbol: "*", Detail: "Multiply the two numbers"},
		OperatorItem{Symbol: "/", Detail: "Divide the first number by the second"},
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select Operator"
	l.SetShowHelp(false)
	l.SetHeight(10)

	return CalcFormModel{
		textInput: ti,
		list:      l,
		step:      StepOperand1,
	}
}

func (m CalcFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m CalcFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Clear error message on any key press
		if msg.Type != tea.KeyEnter {
			m.errMsg = ""
		}

		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.Cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			if m.step == StepOperand1 {
				v, err := calculator.ParseOperand(m.textInput.Value())
				if err != nil {
					m.errMsg = "Please enter a valid number"
					return m, nil
				}
				m.Operand1 = v
				m.step = StepOperator
				return m, nil
			} else if m.step == StepOperator {
				if i := m.list.SelectedItem(); i != nil {
					m.Operator = calculator.Operator(i.(OperatorItem).Symbol)
					m.step = StepOperand2
					m.textInput.Reset()
					m.textInput.Focus()
					return m, nil
				}
			} else if m.step == StepOperand2 {
				v, err := calculator.ParseOperand(m.textInput.Value())
				if err != nil {
					m.errMsg = "Please enter a valid number"
					return m, nil
				}
				m.Operand2 = v
				m.Completed = true
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}

	if m.step == StepOperand1 || m.step == StepOperand2 {
		m.textInput, cmd = m.textInput.Update(msg)
	} else if m.step == StepOperator {
		m.list, cmd = m.list.Update(msg)
	}
	return m, cmd
}

func (m CalcFormModel) View() string {
	if m.Completed || m.Cancelled {
		return ""
	}

	if m.step == StepOperator {
		return "\n" + m.list.View()
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(BannerText))
	b.WriteString("\n\n")
	if m.step == StepOperand1 {
		b.WriteString("Enter first number:\n")
	} else {
		b.WriteString("Enter second number:\n")
	}
	b.WriteString(m.textInput.View())
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(subtleStyle.Render("(Esc to quit)"))
	return b.String()
}
