package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedtheme/seedtheme/internal/regen"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestInitSchedulesGeneration(t *testing.T) {
	m := NewModel(210, 0)
	assert.NotNil(t, m.Init())
}

func TestStartMessageIssuesFirstGeneration(t *testing.T) {
	m := NewModel(210, 0)

	next, cmd := m.Update(startMsg{})
	m = next.(Model)

	assert.Equal(t, uint64(1), m.pending)
	assert.True(t, m.generating)
	require.NotNil(t, cmd)
}

func TestHueKeysAdjustHue(t *testing.T) {
	m := NewModel(210, 0)

	next, cmd := m.Update(keyMsg("right"))
	m = next.(Model)
	assert.InDelta(t, 225.0, m.hue, 1e-9)
	assert.NotNil(t, cmd)

	next, _ = m.Update(keyMsg("left"))
	next, _ = next.(Model).Update(keyMsg("left"))
	m = next.(Model)
	assert.InDelta(t, 195.0, m.hue, 1e-9)
}

func TestContrastKeysClamp(t *testing.T) {
	m := NewModel(0, 0.75)

	next, _ := m.Update(keyMsg("up"))
	next, _ = next.(Model).Update(keyMsg("up"))
	m = next.(Model)
	assert.InDelta(t, 1.0, m.Contrast(), 1e-9)

	for i := 0; i < 10; i++ {
		next, _ = m.Update(keyMsg("down"))
		m = next.(Model)
	}
	assert.InDelta(t, -1.0, m.Contrast(), 1e-9)
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []string{"q", "esc"} {
		t.Run(key, func(t *testing.T) {
			m := NewModel(0, 0)
			var msg tea.KeyMsg
			if key == "esc" {
				msg = tea.KeyMsg{Type: tea.KeyEsc}
			} else {
				msg = keyMsg(key)
			}
			next, cmd := m.Update(msg)
			assert.True(t, next.(Model).quitting)
			require.NotNil(t, cmd)
			assert.Equal(t, tea.Quit(), cmd())
		})
	}
}

func TestStaleResultsAreDropped(t *testing.T) {
	m := NewModel(0, 0)
	coordinator := regen.NewCoordinator(nil)
	m.coordinator = coordinator

	first, seq1, err := coordinator.Generate(context.Background(), "#ff0000", 0)
	require.NoError(t, err)
	second, seq2, err := coordinator.Generate(context.Background(), "#0000ff", 0)
	require.NoError(t, err)

	m.pending = seq2

	next, _ := m.Update(schemeMsg{result: second, seed: "#0000ff", seq: seq2})
	m = next.(Model)
	assert.Equal(t, "#0000ff", m.Seed())
	assert.False(t, m.generating)

	// The older completion arrives late and must not overwrite.
	next, _ = m.Update(schemeMsg{result: first, seed: "#ff0000", seq: seq1})
	m = next.(Model)
	assert.Equal(t, "#0000ff", m.Seed())
}

func TestStaleErrorsAreDropped(t *testing.T) {
	m := NewModel(0, 0)
	m.pending = 3

	next, _ := m.Update(errMsg{err: assert.AnError, seq: 2})
	assert.NoError(t, next.(Model).err)

	next, _ = m.Update(errMsg{err: assert.AnError, seq: 3})
	assert.Error(t, next.(Model).err)
}

func TestViewShowsSwatchesAndHelp(t *testing.T) {
	m := NewModel(210, 0)
	coordinator := regen.NewCoordinator(nil)
	m.coordinator = coordinator

	result, seq, err := coordinator.Generate(context.Background(), "#1976d2", 0)
	require.NoError(t, err)
	m.pending = seq

	next, _ := m.Update(schemeMsg{result: result, seed: "#1976d2", seq: seq})
	view := next.(Model).View()

	assert.Contains(t, view, "seedtheme preview")
	assert.Contains(t, view, "light")
	assert.Contains(t, view, "dark")
	assert.Contains(t, view, "q quit")
	assert.Contains(t, view, "seed #1976d2")
	assert.Contains(t, view, result[0].Colors[0].Hex)
}

func TestViewEmptyAfterQuit(t *testing.T) {
	m := NewModel(0, 0)
	m.quitting = true
	assert.Empty(t, m.View())
}
