package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"github.com/nathoo/colorpad/hexcolor"
)

// lightMeanThreshold decides the two-tone fallback: a mean byte
// channel above this value gets the light tone.
const lightMeanThreshold = 200

// fillGlyph substitutes for any swatch row that cannot be styled, so
// a rendering problem stays visible instead of leaving a hole.
const fillGlyph = "#"

// ColorSupport reports what the terminal can do with color. It wraps
// the detected termenv profile so the fallback paths are explicit,
// testable branches rather than caught rendering failures.
type ColorSupport struct {
	Profile termenv.Profile
}

// DetectColorSupport queries the running terminal.
func DetectColorSupport() ColorSupport {
	return ColorSupport{Profile: termenv.ColorProfile()}
}

// SupportsColor reports whether the terminal can display any color at
// all. Without it the program refuses to start the full-screen UI.
func (c ColorSupport) SupportsColor() bool {
	return c.Profile != termenv.Ascii
}

// CanDefineColors reports whether arbitrary 24-bit colors can be
// shown, the equivalent of a terminal accepting custom color
// definitions.
func (c ColorSupport) CanDefineColors() bool {
	return c.Profile == termenv.TrueColor
}

// renderSwatch fills a w×h interior with the given color, or a "No
// color" placeholder when hex is empty. On terminals without 24-bit
// color it falls back to a two-tone fill chosen by channel mean. The
// hex label is centered over the fill.
func renderSwatch(hex string, sup ColorSupport, w, h int) string {
	if hex == "" {
		return centerLines([]string{"No color"}, styleNoColor, w, h)
	}

	rowStyle, labelStyle, ok := swatchStyles(hex, sup)

	rows := make([]string, h)
	for y := range rows {
		if !ok {
			rows[y] = strings.Repeat(fillGlyph, w)
			continue
		}
		if y == h/2 {
			rows[y] = labelStyle.Render(centerText(hex, w))
		} else {
			rows[y] = rowStyle.Render(strings.Repeat(" ", w))
		}
	}
	return strings.Join(rows, "\n")
}

// swatchStyles picks the fill and label styles for a color. ok is
// false when the hex string cannot be interpreted at all, in which
// case the caller paints filler glyphs.
func swatchStyles(hex string, sup ColorSupport) (row, label lipgloss.Style, ok bool) {
	if sup.CanDefineColors() {
		col, err := colorful.Hex(hex)
		if err != nil {
			return row, label, false
		}
		row = lipgloss.NewStyle().Background(lipgloss.Color(hex))
		label = row.Foreground(lipgloss.Color(contrastColor(col)))
		return row, label, true
	}

	light, err := useLightFallback(hex)
	if err != nil {
		return row, label, false
	}
	if light {
		return styleFallbackLight, styleFallbackLight, true
	}
	return styleFallbackDark, styleFallbackDark, true
}

// useLightFallback applies the fixed two-tone rule: mean byte channel
// above lightMeanThreshold gets the light tone.
func useLightFallback(hex string) (bool, error) {
	ch, err := hexcolor.Bytes(hex)
	if err != nil {
		return false, err
	}
	return (ch[0]+ch[1]+ch[2])/3 > lightMeanThreshold, nil
}

// contrastColor returns black or white, whichever reads better on the
// given color.
func contrastColor(col colorful.Color) string {
	l, _, _ := col.Lab()
	if l > 0.5 {
		return "#000000"
	}
	return "#ffffff"
}

// centerText pads text to width w with the text centered. Longer text
// is truncated.
func centerText(text string, w int) string {
	if len(text) >= w {
		return text[:w]
	}
	left := (w - len(text)) / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", w-left-len(text))
}

// centerLines renders the given lines centered in a w×h box.
func centerLines(lines []string, style lipgloss.Style, w, h int) string {
	rows := make([]string, h)
	top := (h - len(lines)) / 2
	if top < 0 {
		top = 0
	}
	for y := range rows {
		if y >= top && y-top < len(lines) {
			rows[y] = style.Render(centerText(lines[y-top], w))
		} else {
			rows[y] = strings.Repeat(" ", w)
		}
	}
	return strings.Join(rows, "\n")
}
