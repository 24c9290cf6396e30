// Package tui implements the interactive two-panel color converter:
// an input panel with a scrollable history list on the left, a color
// swatch on the right.
package tui

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nathoo/colorpad/hexcolor"
	"github.com/nathoo/colorpad/history"
)

// Panel dimensions, borders included.
const (
	inputPanelWidth  = 50
	inputPanelHeight = 12
	colorPanelWidth  = 20
	colorPanelHeight = 12

	// Interior line offsets in the input panel.
	headerLine       = 0
	inputLine        = 2
	messageLine      = 4
	historyStartLine = 7
)

// availableLines is the number of history rows that fit in the input
// panel below the fixed lines.
func availableLines() int {
	return inputPanelHeight - 2 - historyStartLine
}

// Model is the Bubble Tea model holding all loop state: input buffer,
// history store with its cursor, the history view window, the last
// confirmed hex, and the status message.
type Model struct {
	input textinput.Model
	store *history.Store

	viewStart int    // first visible history index
	lastHex   string // last successfully converted hex
	swatchHex string // color currently shown in the right panel
	message   string
	msgKind   msgKind

	support  ColorSupport
	clip     Clipboard
	histPath string

	width    int
	height   int
	quitting bool
}

// New creates a model wired to the real clipboard.
func New(support ColorSupport, histPath string) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = inputPanelWidth - 8
	ti.PromptStyle = styleInputPrompt

	if histPath == "" {
		histPath = history.DefaultFile
	}

	return Model{
		input:    ti,
		store:    history.New(0),
		support:  support,
		clip:     systemClipboard{},
		histPath: histPath,
	}
}

// Run starts the Bubble Tea program and blocks until quit.
func Run(support ColorSupport, histPath string) error {
	p := tea.NewProgram(New(support, histPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles one message. A panic in any key handler is recovered
// here: the loop must survive every keypress, so the failure becomes
// a status message and the input buffer is cleared.
func (m Model) Update(msg tea.Msg) (model tea.Model, cmd tea.Cmd) {
	orig := m
	defer func() {
		if r := recover(); r != nil {
			orig.message = fmt.Sprintf("internal error: %v", r)
			orig.msgKind = msgError
			orig.input.SetValue("")
			model, cmd = orig, nil
		}
	}()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Submit):
			return m.submit(), nil

		case key.Matches(msg, keys.Older):
			return m.navigateOlder(), nil

		case key.Matches(msg, keys.Newer):
			return m.navigateNewer(), nil

		case key.Matches(msg, keys.PageUp):
			return m.pageScroll(true), nil

		case key.Matches(msg, keys.PageDown):
			return m.pageScroll(false), nil

		case key.Matches(msg, keys.Copy):
			return m.copyHex(), nil

		case key.Matches(msg, keys.Save):
			return m.saveHistory(), nil

		case key.Matches(msg, keys.Load):
			return m.loadHistory(), nil

		case key.Matches(msg, keys.Clear):
			return m.clearHistory(), nil
		}

		// Anything that edits the buffer leaves navigation mode and
		// clears the status line.
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace || msg.Type == tea.KeyBackspace {
			m.store.ResetCursor()
			m.message = ""
			m.msgKind = msgInfo
		}
	}

	var inputCmd tea.Cmd
	m.input, inputCmd = m.input.Update(msg)
	return m, inputCmd
}

// submit converts the input buffer. On success the result enters the
// history and the swatch; on failure only the status line changes.
// The buffer is cleared either way, except when it was blank.
func (m Model) submit() Model {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		m.message = "Input is empty"
		m.msgKind = msgError
		return m
	}

	m.input.SetValue("")

	conv, err := hexcolor.Convert(raw)
	if err != nil {
		m.message = "Error: " + err.Error()
		m.msgKind = msgError
		return m
	}

	m.lastHex = conv.Hex
	m.swatchHex = conv.Hex
	m.store.Insert(conv.Hex)
	m.store.ResetCursor()
	m.viewStart = 0
	m.message = conv.Describe()
	m.msgKind = msgSuccess
	return m
}

// navigateOlder steps the history cursor toward older entries and
// mirrors the selection into the input buffer and the swatch.
func (m Model) navigateOlder() Model {
	entry, ok := m.store.Older()
	if !ok {
		return m
	}
	m.input.SetValue(entry)
	m.input.CursorEnd()
	m.swatchHex = entry
	m.ensureCursorVisible()
	return m
}

// navigateNewer steps toward newer entries; stepping past the newest
// leaves navigation mode with an empty buffer and swatch.
func (m Model) navigateNewer() Model {
	if m.store.Cursor() == -1 {
		return m
	}
	entry, ok := m.store.Newer()
	if !ok {
		m.input.SetValue("")
		m.swatchHex = ""
		return m
	}
	m.input.SetValue(entry)
	m.input.CursorEnd()
	m.swatchHex = entry
	m.ensureCursorVisible()
	return m
}

// pageScroll shifts the view window by one page. The selection and
// swatch are unaffected; only the window moves.
func (m Model) pageScroll(pageUp bool) Model {
	// With swapPageKeys set, PageUp scrolls toward older entries.
	dir := -1
	if pageUp == swapPageKeys {
		dir = 1
	}
	step := availableLines()
	if step < 1 {
		step = 1
	}
	m.viewStart += dir * step
	m.clampView()
	return m
}

// copyHex copies the last converted hex, or a '#'-prefixed buffer if
// nothing was converted yet.
func (m Model) copyHex() Model {
	target := m.lastHex
	if target == "" {
		if v := strings.TrimSpace(m.input.Value()); strings.HasPrefix(v, "#") {
			target = v
		}
	}
	if target == "" {
		m.message = "Nothing to copy"
		m.msgKind = msgError
		return m
	}
	if err := m.clip.Copy(target); err != nil {
		m.message = "Copy failed: " + err.Error()
		m.msgKind = msgError
		return m
	}
	m.message = "Copied " + target
	m.msgKind = msgSuccess
	return m
}

func (m Model) saveHistory() Model {
	if err := history.Save(m.histPath, m.store.Entries()); err != nil {
		m.message = "Save failed: " + err.Error()
		m.msgKind = msgError
		return m
	}
	m.message = "History saved to " + m.histPath
	m.msgKind = msgSuccess
	return m
}

func (m Model) loadHistory() Model {
	entries, err := history.Load(m.histPath)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			m.message = "History file " + m.histPath + " not found"
		case errors.Is(err, history.ErrBadFormat):
			m.message = "History file has wrong format"
		default:
			m.message = "Load failed: " + err.Error()
		}
		m.msgKind = msgError
		m.swatchHex = ""
		return m
	}

	m.store.Replace(entries)
	m.viewStart = 0
	if first, ok := m.store.At(0); ok {
		m.swatchHex = first
	} else {
		m.swatchHex = ""
	}
	m.message = "History loaded from " + m.histPath
	m.msgKind = msgSuccess
	return m
}

func (m Model) clearHistory() Model {
	m.store.Clear()
	m.viewStart = 0
	m.swatchHex = ""
	m.message = "History cleared"
	m.msgKind = msgSuccess
	return m
}

// clampView keeps the view window inside
// [0, max(0, len(history) - available)].
func (m *Model) clampView() {
	maxStart := m.store.Len() - availableLines()
	if maxStart < 0 {
		maxStart = 0
	}
	if m.viewStart > maxStart {
		m.viewStart = maxStart
	}
	if m.viewStart < 0 {
		m.viewStart = 0
	}
}

// ensureCursorVisible scrolls the view window just enough to keep the
// history cursor on screen.
func (m *Model) ensureCursorVisible() {
	cur := m.store.Cursor()
	if cur < 0 {
		return
	}
	if cur < m.viewStart {
		m.viewStart = cur
	}
	if cur >= m.viewStart+availableLines() {
		m.viewStart = cur - availableLines() + 1
	}
	m.clampView()
}

// View renders both panels side by side with the help footer below.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	panels := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderInputPanel(), " ", m.renderColorPanel())
	return panels + "\n" + m.renderHelp()
}

func (m Model) renderInputPanel() string {
	w := inputPanelWidth - 2
	h := inputPanelHeight - 2

	lines := make([]string, h)
	lines[headerLine] = styleHeader.Render(truncate("Enter hex (#rrggbb) or R G B (0-1000):", w))
	lines[inputLine] = m.input.View()
	lines[messageLine] = renderMessage(truncate(m.message, w), m.msgKind)

	for i := 0; i < availableLines(); i++ {
		idx := m.viewStart + i
		entry, ok := m.store.At(idx)
		if !ok {
			break
		}
		marker, style := "  ", styleHistory
		if idx == m.store.Cursor() {
			marker, style = "> ", styleHistoryCursor
		}
		lines[historyStartLine+i] = style.Render(truncate(marker+entry, w))
	}

	return stylePanel.Width(w).Height(h).Render(strings.Join(lines, "\n"))
}

func (m Model) renderColorPanel() string {
	w := colorPanelWidth - 2
	h := colorPanelHeight - 2
	return stylePanel.Width(w).Height(h).Render(renderSwatch(m.swatchHex, m.support, w, h))
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, 8)
	for _, b := range helpBindings() {
		hp := b.Help()
		parts = append(parts, hp.Key+" "+hp.Desc)
	}
	return styleHelp.Render(" " + strings.Join(parts, " · "))
}

// truncate cuts s to at most w runes.
func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}
