// Package cli provides a plain line-oriented converter for
// non-interactive use, when stdout is piped or the full-screen UI is
// not wanted. It shares the codec and history semantics with the TUI.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/nathoo/colorpad/hexcolor"
	"github.com/nathoo/colorpad/history"
)

// CLI reads input lines, converts colors, and prints results.
type CLI struct {
	In          io.Reader
	Out         io.Writer
	HistoryPath string

	store *history.Store
}

// New creates a CLI reading stdin and writing stdout.
func New(historyPath string) *CLI {
	if historyPath == "" {
		historyPath = history.DefaultFile
	}
	return &CLI{
		In:          os.Stdin,
		Out:         os.Stdout,
		HistoryPath: historyPath,
		store:       history.New(0),
	}
}

// Run loops: prompt → line → dispatch → output, until EOF or "quit".
// Each line is either a color (hex or "R G B" triplet) or one of the
// words save, load, clear, history, quit.
func (c *CLI) Run() {
	scanner := bufio.NewScanner(c.In)
	for {
		fmt.Fprint(c.Out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if c.dispatch(line) {
			return
		}
	}
}

// dispatch handles one input line. Returns true on quit.
func (c *CLI) dispatch(line string) bool {
	switch strings.ToLower(line) {
	case "quit", "exit":
		return true

	case "save":
		if err := history.Save(c.HistoryPath, c.store.Entries()); err != nil {
			c.printLine("Save failed: " + err.Error())
		} else {
			c.printLine("History saved to " + c.HistoryPath)
		}

	case "load":
		c.cmdLoad()

	case "clear":
		c.store.Clear()
		c.printLine("History cleared")

	case "history":
		c.cmdHistory()

	default:
		c.cmdConvert(line)
	}
	return false
}

func (c *CLI) cmdLoad() {
	entries, err := history.Load(c.HistoryPath)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			c.printLine("History file " + c.HistoryPath + " not found")
		case errors.Is(err, history.ErrBadFormat):
			c.printLine("History file has wrong format")
		default:
			c.printLine("Load failed: " + err.Error())
		}
		return
	}
	c.store.Replace(entries)
	c.printLine("History loaded from " + c.HistoryPath)
}

func (c *CLI) cmdHistory() {
	if c.store.Len() == 0 {
		c.printLine("History is empty")
		return
	}
	for _, entry := range c.store.Entries() {
		c.printLine(entry)
	}
}

func (c *CLI) cmdConvert(line string) {
	conv, err := hexcolor.Convert(line)
	if err != nil {
		c.printLine("Error: " + err.Error())
		return
	}
	c.store.Insert(conv.Hex)
	c.printLine(conv.Describe())
}

func (c *CLI) printLine(text string) {
	fmt.Fprintln(c.Out, text)
}
