// Package tui implements the interactive swatch preview. Hue and
// contrast adjustments trigger asynchronous regenerations; results that
// were superseded while deriving are dropped rather than flashing an
// outdated palette.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/seedtheme/seedtheme/internal/hexcolor"
	"github.com/seedtheme/seedtheme/internal/regen"
	"github.com/seedtheme/seedtheme/internal/scheme"
)

const (
	hueStep      = 15
	contrastStep = 0.25
)

// schemeMsg delivers a finished regeneration.
type schemeMsg struct {
	result scheme.Scheme
	seed   string
	seq    uint64
}

// errMsg delivers a failed regeneration.
type errMsg struct {
	err error
	seq uint64
}

// startMsg triggers the initial generation. Init cannot mutate the
// model, so the sequence bump happens in Update.
type startMsg struct{}

// Model is the Bubbletea state for the preview.
type Model struct {
	coordinator *regen.Coordinator

	hue      float64
	contrast float64

	seed    string
	current scheme.Scheme
	pending uint64

	spinner    spinner.Model
	generating bool
	err        error
	quitting   bool
}

// NewModel constructs a preview model starting at the given hue and
// contrast level.
func NewModel(hue, contrast float64) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		coordinator: regen.NewCoordinator(nil),
		hue:         hue,
		contrast:    contrast,
		spinner:     sp,
	}
}

// Init kicks off the spinner and the first generation.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg { return startMsg{} })
}

// regenerate issues a new generation request tagged with a fresh
// sequence number.
func (m *Model) regenerate() tea.Cmd {
	seed, err := hexcolor.Normalize(hexcolor.HueToHex(m.hue))
	if err != nil {
		m.err = err
		return nil
	}

	contrast := m.contrast
	coordinator := m.coordinator

	m.generating = true
	m.pending++
	seq := m.pending

	return func() tea.Msg {
		result, _, err := coordinator.Generate(context.Background(), seed, contrast)
		if err != nil {
			return errMsg{err: err, seq: seq}
		}
		return schemeMsg{result: result, seed: seed, seq: seq}
	}
}

// Update handles key input and regeneration results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case startMsg:
		return m, m.regenerate()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "left":
			m.hue -= hueStep
			return m, m.regenerate()
		case "right":
			m.hue += hueStep
			return m, m.regenerate()
		case "up":
			m.contrast = clampContrast(m.contrast + contrastStep)
			return m, m.regenerate()
		case "down":
			m.contrast = clampContrast(m.contrast - contrastStep)
			return m, m.regenerate()
		}

	case schemeMsg:
		if msg.seq != m.pending {
			// A newer request is in flight; drop the stale result.
			return m, nil
		}
		m.current = msg.result
		m.seed = msg.seed
		m.generating = false
		m.err = nil
		return m, nil

	case errMsg:
		if msg.seq != m.pending {
			return m, nil
		}
		m.err = msg.err
		m.generating = false
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// Seed returns the seed of the currently displayed scheme.
func (m Model) Seed() string {
	return m.seed
}

// Contrast returns the current contrast level.
func (m Model) Contrast() float64 {
	return m.contrast
}

func clampContrast(level float64) float64 {
	if level < -1 {
		return -1
	}
	if level > 1 {
		return 1
	}
	return level
}

func (m Model) statusLine() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("error: %v", m.err))
	}
	if m.generating {
		return m.spinner.View() + " generating..."
	}
	return fmt.Sprintf("seed %s · contrast %+.2f", m.seed, m.contrast)
}
