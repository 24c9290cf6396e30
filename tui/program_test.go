package tui

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

// Drives the full Bubble Tea program end to end: type a color, submit,
// check the rendered status line, then quit and inspect the final
// model.
func TestProgram_ConvertAndQuit(t *testing.T) {
	m := New(ColorSupport{Profile: termenv.TrueColor},
		filepath.Join(t.TempDir(), "colors_history.json"))
	m.clip = &fakeClipboard{}

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("#ff0000")})
	tm.Send(tea.KeyMsg{Type: tea.KeyEnter})

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("RGB 1000 0 0"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	final, ok := fm.(Model)
	require.True(t, ok, "final model should be a tui.Model")
	require.Equal(t, "#ff0000", final.lastHex)
	require.Equal(t, 1, final.store.Len())
	require.True(t, final.quitting)
}

func TestProgram_HistoryNavigation(t *testing.T) {
	m := New(ColorSupport{Profile: termenv.TrueColor},
		filepath.Join(t.TempDir(), "colors_history.json"))
	m.clip = &fakeClipboard{}

	tm := teatest.NewTestModel(t, m, teatest.WithInitialTermSize(80, 24))

	for _, c := range []string{"#111111", "#222222"} {
		tm.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(c)})
		tm.Send(tea.KeyMsg{Type: tea.KeyEnter})
	}
	tm.Send(tea.KeyMsg{Type: tea.KeyDown})
	tm.Send(tea.KeyMsg{Type: tea.KeyDown})

	teatest.WaitFor(t, tm.Output(), func(bts []byte) bool {
		return bytes.Contains(bts, []byte("> #111111"))
	}, teatest.WithDuration(3*time.Second))

	tm.Send(tea.KeyMsg{Type: tea.KeyEsc})

	fm := tm.FinalModel(t, teatest.WithFinalTimeout(3*time.Second))
	final := fm.(Model)
	require.Equal(t, 1, final.store.Cursor())
	require.Equal(t, 2, final.store.Len())
}
