// Package tui is the interactive terminal form: principal, rate and
// periods in, return, amount and magnitude summary out.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/rpgo/growth-calculator/internal/output"
)

// Field identifies one of the form inputs
type Field int

const (
	FieldPrincipal Field = iota
	FieldRate
	FieldTimes
	fieldCount
)

type formText struct {
	title        string
	labels       [fieldCount]string
	placeholders [fieldCount]string
	help         string
}

var formTexts = map[string]formText{
	domain.LocaleEnglish: {
		title:        "Return Calculator",
		labels:       [fieldCount]string{"Principal (optional)", "Rate per period (%)", "Number of periods"},
		placeholders: [fieldCount]string{"e.g. 1000000", "e.g. 2", "e.g. 5"},
		help:         "tab/shift+tab: move • enter: calculate • esc: quit",
	},
	domain.LocaleKorean: {
		title:        "수익률 계산기",
		labels:       [fieldCount]string{"원금 (선택)", "수익률(%)", "반복 횟수"},
		placeholders: [fieldCount]string{"예: 1000000", "예: 2", "예: 5"},
		help:         "tab/shift+tab: 이동 • enter: 계산하기 • esc: 종료",
	},
}

// Model is the calculator form
type Model struct {
	engine  *calculation.CalculationEngine
	display domain.DisplaySettings
	text    formText

	inputs [fieldCount]textinput.Model
	focus  Field

	lines      output.DisplayLines
	calculated bool
}

// NewModel creates the form with the principal field focused.
func NewModel(engine *calculation.CalculationEngine, display domain.DisplaySettings) Model {
	text, ok := formTexts[display.Locale]
	if !ok {
		text = formTexts[domain.LocaleEnglish]
	}

	m := Model{engine: engine, display: display, text: text}
	for i := range m.inputs {
		in := textinput.New()
		in.Placeholder = text.placeholders[i]
		in.CharLimit = 32
		in.Width = 24
		m.inputs[i] = in
	}
	m.inputs[FieldPrincipal].Focus()
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "down":
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case "shift+tab", "up":
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		case "enter":
			m.calculate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *Model) setFocus(f Field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[f].Focus()
}

func (m *Model) calculate() {
	result, err := m.engine.Calculate(context.Background(), m.Inputs())
	m.lines = output.Render(result, err, m.display)
	m.calculated = true
}

// Inputs returns the current text of the three fields
func (m Model) Inputs() domain.RawInputs {
	return domain.RawInputs{
		Principal: m.inputs[FieldPrincipal].Value(),
		Rate:      m.inputs[FieldRate].Value(),
		Times:     m.inputs[FieldTimes].Value(),
	}
}

// Focused returns the field that receives key input
func (m Model) Focused() Field {
	return m.focus
}

// Result returns the lines of the last calculation, if any
func (m Model) Result() (output.DisplayLines, bool) {
	return m.lines, m.calculated
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(m.text.title))
	b.WriteString("\n")

	for i := range m.inputs {
		label := LabelStyle
		if Field(i) == m.focus {
			label = FocusedLabelStyle
		}
		b.WriteString(label.Render(m.text.labels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	if m.calculated {
		var result []string
		if m.lines.Invalid {
			result = append(result, ErrorStyle.Render(m.lines.Return))
		} else {
			result = append(result, ResultStyle.Render(m.lines.Return))
			if m.lines.Amount != "" {
				result = append(result, ResultStyle.Render(m.lines.Amount))
			}
			if m.lines.Summary != "" {
				result = append(result, SummaryStyle.Render(m.lines.Summary))
			}
		}
		b.WriteString(ResultBoxStyle.Render(strings.Join(result, "\n")))
		b.WriteString("\n")
	}

	b.WriteString(HelpStyle.Render(m.text.help))
	return b.String()
}
