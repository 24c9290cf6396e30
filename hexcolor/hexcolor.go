// Package hexcolor converts between #rrggbb hex notation and RGB
// triplets scaled to the 0-1000 range used by fine-grained terminal
// color APIs.
package hexcolor

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Validation errors returned by the conversion functions. Callers are
// expected to surface these as status messages, never as fatal errors.
var (
	ErrInvalidFormat = errors.New("expected #rrggbb or three numbers 0-1000")
	ErrInvalidDigits = errors.New("invalid hex digits")
	ErrOutOfRange    = errors.New("channel values must be in 0-1000")
)

// Triplet is a color with each channel scaled to [0, 1000].
type Triplet struct {
	R, G, B int
}

// ToScaled parses a #rrggbb string into a scaled triplet. A single
// leading '#' is optional. Each byte channel is rescaled with
// round(c/255*1000), rounding halves away from zero.
func ToScaled(hex string) (Triplet, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return Triplet{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}

	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Triplet{}, fmt.Errorf("%w: %q", ErrInvalidDigits, hex)
		}
		ch[i] = scaleUp(int(v))
	}
	return Triplet{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// FromScaled formats a scaled triplet as a lowercase #rrggbb string.
// Each channel is rescaled with round(c/1000*255), rounding halves
// away from zero.
func FromScaled(t Triplet) (string, error) {
	for _, v := range [3]int{t.R, t.G, t.B} {
		if v < 0 || v > 1000 {
			return "", fmt.Errorf("%w: %d %d %d", ErrOutOfRange, t.R, t.G, t.B)
		}
	}
	return fmt.Sprintf("#%02x%02x%02x", scaleDown(t.R), scaleDown(t.G), scaleDown(t.B)), nil
}

// ParseTriplet parses three whitespace-separated integers.
func ParseTriplet(raw string) (Triplet, error) {
	fields := strings.Fields(raw)
	if len(fields) != 3 {
		return Triplet{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
	}
	var ch [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return Triplet{}, fmt.Errorf("%w: %q", ErrInvalidFormat, raw)
		}
		ch[i] = v
	}
	return Triplet{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Bytes returns the raw 0-255 channels of a #rrggbb string without
// rescaling.
func Bytes(hex string) ([3]int, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return [3]int{}, fmt.Errorf("%w: %q", ErrInvalidFormat, hex)
	}
	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return [3]int{}, fmt.Errorf("%w: %q", ErrInvalidDigits, hex)
		}
		ch[i] = int(v)
	}
	return ch, nil
}

// Conversion is the result of interpreting one line of user input as
// either hex notation or a scaled triplet.
type Conversion struct {
	Hex     string // normalized lowercase #rrggbb
	Scaled  Triplet
	FromHex bool // input was hex notation
}

// Convert interprets raw input: a '#'-prefixed string is parsed as
// hex, anything else as three whitespace-separated integers in
// [0, 1000]. Both representations are returned.
func Convert(raw string) (Conversion, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "#") {
		t, err := ToScaled(raw)
		if err != nil {
			return Conversion{}, err
		}
		return Conversion{Hex: strings.ToLower(raw), Scaled: t, FromHex: true}, nil
	}

	t, err := ParseTriplet(raw)
	if err != nil {
		return Conversion{}, err
	}
	hex, err := FromScaled(t)
	if err != nil {
		return Conversion{}, err
	}
	return Conversion{Hex: hex, Scaled: t}, nil
}

// Describe renders the conversion for the status line, leading with
// the representation the user typed.
func (c Conversion) Describe() string {
	if c.FromHex {
		return fmt.Sprintf("HEX %s -> RGB %d %d %d", c.Hex, c.Scaled.R, c.Scaled.G, c.Scaled.B)
	}
	return fmt.Sprintf("RGB %d %d %d -> HEX %s", c.Scaled.R, c.Scaled.G, c.Scaled.B, c.Hex)
}

func scaleUp(v int) int {
	return int(math.Round(float64(v) / 255 * 1000))
}

func scaleDown(v int) int {
	return int(math.Round(float64(v) / 1000 * 255))
}
