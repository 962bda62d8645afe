package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rpgo/growth-calculator/internal/calculation"
	"github.com/rpgo/growth-calculator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(locale string) Model {
	display := domain.DisplaySettings{Locale: locale}
	return NewModel(calculation.NewCalculationEngineWithDisplay(display), display)
}

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func typed(s string) tea.Msg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	tab      = tea.KeyMsg{Type: tea.KeyTab}
	shiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	enter    = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestFocusCycling(t *testing.T) {
	m := newTestModel("en")
	assert.Equal(t, FieldPrincipal, m.Focused())

	m = press(t, m, tab)
	assert.Equal(t, FieldRate, m.Focused())
	m = press(t, m, tab, tab)
	assert.Equal(t, FieldPrincipal, m.Focused())
	m = press(t, m, shiftTab)
	assert.Equal(t, FieldTimes, m.Focused())
}

func TestTypingGoesToFocusedField(t *testing.T) {
	m := newTestModel("en")
	m = press(t, m, typed("1,000,000"), tab, typed("2"), tab, typed("5"))

	assert.Equal(t, domain.RawInputs{Principal: "1,000,000", Rate: "2", Times: "5"}, m.Inputs())
	_, calculated := m.Result()
	assert.False(t, calculated)
}

func TestEnterCalculates(t *testing.T) {
	m := newTestModel("en")
	m = press(t, m, typed("1000000"), tab, typed("2"), tab, typed("5"), enter)

	lines, calculated := m.Result()
	require.True(t, calculated)
	assert.Equal(t, "Total return: 10%", lines.Return)
	assert.Equal(t, "Total amount: 1,104,000 won", lines.Amount)
	assert.Equal(t, "approximately 110 man range", lines.Summary)

	view := m.View()
	assert.Contains(t, view, "Return Calculator")
	assert.Contains(t, view, "Total amount: 1,104,000 won")
	assert.Contains(t, view, "approximately 110 man range")
}

func TestEnterWithoutPrincipal(t *testing.T) {
	m := newTestModel("ko")
	m = press(t, m, tab, typed("2"), tab, typed("5"), enter)

	lines, calculated := m.Result()
	require.True(t, calculated)
	assert.Equal(t, "총 수익률: 10%", lines.Return)
	assert.Empty(t, lines.Amount)
	assert.Empty(t, lines.Summary)
	assert.Contains(t, m.View(), "수익률 계산기")
}

func TestInvalidInputShowsIndicator(t *testing.T) {
	m := newTestModel("ko")
	m = press(t, m, typed("1000000"), tab, typed("abc"), tab, typed("5"), enter)

	lines, calculated := m.Result()
	require.True(t, calculated)
	assert.True(t, lines.Invalid)
	assert.Equal(t, "총 수익률: 입력값 오류", lines.Return)
	assert.Empty(t, lines.Amount)
	assert.Contains(t, m.View(), "입력값 오류")
}

func TestRecalculateClearsPreviousAmount(t *testing.T) {
	m := newTestModel("en")
	m = press(t, m, typed("1000000"), tab, typed("2"), tab, typed("5"), enter)
	lines, _ := m.Result()
	require.NotEmpty(t, lines.Amount)

	// wipe the principal and calculate again
	m = press(t, m, tab, tea.KeyMsg{Type: tea.KeyCtrlU}, enter)
	lines, _ = m.Result()
	assert.Equal(t, "Total return: 10%", lines.Return)
	assert.Empty(t, lines.Amount)
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		m := newTestModel("en")
		_, cmd := m.Update(key)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok, key.String())
	}
}
