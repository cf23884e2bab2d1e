package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlostXD/police-lumos-rp/internal/models"
)

var testCrimes = []models.Crime{
	{ID: 1, Article: "157", Title: "Roubo", Time: 24, Fine: 1000},
	{ID: 2, Article: "155", Title: "Furto", Time: 12, Fine: 500, Fiance: 300, Financable: true},
	{ID: 3, Article: "171", Title: "Estelionato", Time: 12, Fine: 800},
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestModel_TypeAndConfirm(t *testing.T) {
	m := NewWithCrimes(testCrimes)

	m = send(t, m, runes("furto"), key(tea.KeyEnter))

	sel := m.Selection()
	require.Len(t, sel, 1)
	assert.Equal(t, "155", sel[0].Article)
	assert.Equal(t, 1, sel[0].Multiplier)
	assert.Equal(t, "", m.search.Value(), "query cleared after adding")
	assert.False(t, m.chooser.IsOpen())
}

func TestModel_KeyboardNavigationWraps(t *testing.T) {
	m := NewWithCrimes(testCrimes)

	// open, then up from the first row wraps to the last
	m = send(t, m, key(tea.KeyDown), key(tea.KeyUp), key(tea.KeyEnter))
	require.Len(t, m.Selection(), 1)
	assert.Equal(t, "171", m.Selection()[0].Article)

	// down past the last row wraps to the first
	m = send(t, m, key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyDown), key(tea.KeyEnter))
	require.Len(t, m.Selection(), 2)
	assert.Equal(t, "157", m.Selection()[1].Article)
}

func TestModel_EscapeClosesWithoutChanges(t *testing.T) {
	m := NewWithCrimes(testCrimes)

	m = send(t, m, runes("roubo"), key(tea.KeyEsc), key(tea.KeyEnter))
	assert.Empty(t, m.Selection())
	assert.False(t, m.chooser.IsOpen())
	assert.Equal(t, "roubo", m.search.Value())
}

func TestModel_AddingTwiceIsNoop(t *testing.T) {
	m := NewWithCrimes(testCrimes)

	m = send(t, m, runes("roubo"), key(tea.KeyEnter))
	m = send(t, m, key(tea.KeyTab), runes("+"))
	m = send(t, m, key(tea.KeyShiftTab), runes("roubo"), key(tea.KeyEnter))

	require.Len(t, m.Selection(), 1)
	assert.Equal(t, 2, m.Selection()[0].Multiplier)
}

func TestModel_SummaryAndCitation(t *testing.T) {
	m := NewWithCrimes(testCrimes)

	m = send(t, m,
		runes("roubo"), key(tea.KeyEnter),
		runes("furto"), key(tea.KeyEnter),
		key(tea.KeyTab), runes("+"),
	)

	sum := m.Summary()
	assert.Equal(t, 60, sum.TotalTime)
	assert.InDelta(t, 2500, sum.TotalFine, 1e-9)
	assert.Equal(t, "157 - Roubo (x2) | 155 - Furto", m.Citation())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	sum = m.Summary()
	assert.InDelta(t, 300, sum.TotalFiance, 1e-9)
	assert.Equal(t, 48, sum.TimeAfterBail)

	// focus the months reduction input and type 25
	m = send(t, m, key(tea.KeyTab), runes("25"))
	assert.InDelta(t, 36, m.Summary().FinalTime, 1e-9)

	view := m.View()
	assert.Contains(t, view, "157 - Roubo (x2) | 155 - Furto")
	assert.Contains(t, view, "Bail: $ 300")
}

func TestModel_MultiplierNeverBelowOne(t *testing.T) {
	m := NewWithCrimes(testCrimes)

	m = send(t, m, runes("roubo"), key(tea.KeyEnter), key(tea.KeyTab), runes("-"), runes("-"))
	assert.Equal(t, 1, m.Selection()[0].Multiplier)

	m = send(t, m, runes("7"))
	assert.Equal(t, 7, m.Selection()[0].Multiplier)
}

func TestModel_RemoveSelected(t *testing.T) {
	m := NewWithCrimes(testCrimes)

	m = send(t, m,
		runes("roubo"), key(tea.KeyEnter),
		runes("furto"), key(tea.KeyEnter),
		key(tea.KeyTab), key(tea.KeyDown), runes("x"),
	)
	require.Len(t, m.Selection(), 1)
	assert.Equal(t, "157", m.Selection()[0].Article)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_NonNumericReductionIgnored(t *testing.T) {
	m := NewWithCrimes(testCrimes)

	m = send(t, m, runes("roubo"), key(tea.KeyEnter))
	m = send(t, m, key(tea.KeyTab), key(tea.KeyTab), key(tea.KeyTab), runes("abc"))
	assert.Nil(t, m.Options().ReductionFine)
	assert.InDelta(t, 1000, m.Summary().FinalFine, 1e-9)
}

func TestModel_LoadsCrimes(t *testing.T) {
	m := New(func(context.Context) ([]models.Crime, error) { return testCrimes, nil })
	assert.True(t, m.loading)
	assert.Contains(t, m.View(), "loading")

	m = send(t, m, crimesLoadedMsg{crimes: testCrimes})
	assert.False(t, m.loading)
	assert.Len(t, m.chooser.Results(), 3)
}

func TestModel_LoadError(t *testing.T) {
	m := New(func(context.Context) ([]models.Crime, error) { return nil, nil })
	m = send(t, m, crimesLoadedMsg{err: errors.New("connection refused")})
	assert.Contains(t, m.View(), "connection refused")
}

func TestModel_InitLoadsUnderContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := New(func(ctx context.Context) ([]models.Crime, error) {
		return nil, ctx.Err()
	}).WithContext(ctx)

	batch, ok := m.Init()().(tea.BatchMsg)
	require.True(t, ok)

	var loaded *crimesLoadedMsg
	for _, cmd := range batch {
		if cmd == nil {
			continue
		}
		if msg, ok := cmd().(crimesLoadedMsg); ok {
			loaded = &msg
		}
	}
	require.NotNil(t, loaded)
	assert.ErrorIs(t, loaded.err, context.Canceled)
}

func TestModel_CtrlCQuits(t *testing.T) {
	m := NewWithCrimes(testCrimes)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
