package entity

import (
	"fmt"
	"strconv"
	"strings"
)

// LengthUnit tells how a Length value is interpreted.
type LengthUnit int

const (
	UnitPixels  LengthUnit = iota // Absolute pixels
	UnitPercent                   // Percentage of the reference size (0-100)
)

// Length is a pixel or percentage length relative to some container size.
type Length struct {
	Value float64
	Unit  LengthUnit
}

// Px returns a pointer to a pixel length, handy for optional Placement fields.
func Px(v float64) *Length {
	return &Length{Value: v, Unit: UnitPixels}
}

// Pct returns a pointer to a percentage length (50 means half).
func Pct(v float64) *Length {
	return &Length{Value: v, Unit: UnitPercent}
}

// ParseLength parses "50%", "120px" or a plain number (pixels).
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasSuffix(s, "%"):
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "%")), 64)
		if err != nil {
			return Length{}, fmt.Errorf("parse length %q: %w", s, err)
		}
		return Length{Value: v, Unit: UnitPercent}, nil
	case strings.HasSuffix(s, "px"):
		v, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, "px")), 64)
		if err != nil {
			return Length{}, fmt.Errorf("parse length %q: %w", s, err)
		}
		return Length{Value: v, Unit: UnitPixels}, nil
	default:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Length{}, fmt.Errorf("parse length %q: %w", s, err)
		}
		return Length{Value: v, Unit: UnitPixels}, nil
	}
}

// Pixels converts the length to pixels relative to size.
func (l Length) Pixels(size float64) float64 {
	if l.Unit == UnitPercent {
		return l.Value / 100 * size
	}
	return l.Value
}

// Fraction converts the length to a fraction of size.
// A zero size yields 0 rather than dividing by zero.
func (l Length) Fraction(size float64) float64 {
	if l.Unit == UnitPercent {
		return l.Value / 100
	}
	if size == 0 {
		return 0
	}
	return l.Value / size
}

// String renders the length back into its textual form.
func (l Length) String() string {
	v := strconv.FormatFloat(l.Value, 'f', -1, 64)
	if l.Unit == UnitPercent {
		return v + "%"
	}
	return v + "px"
}

// Placement is an optional desired rectangle for a new or moved panel.
// Nil fields mean "unspecified"; actual placement depends on the dock location.
type Placement struct {
	X, Y, W, H *Length
}

// Resolve converts the placement into pixels against a container size.
// Missing width/height fall back to the hint; a negative result means "pick a default".
func (p *Placement) Resolve(container Vec2, hint Vec2) ResolvedPlacement {
	out := ResolvedPlacement{W: hint.X, H: hint.Y}
	if p == nil {
		return out
	}
	if p.X != nil {
		out.X = p.X.Pixels(container.X)
		out.HasX = true
	}
	if p.Y != nil {
		out.Y = p.Y.Pixels(container.Y)
		out.HasY = true
	}
	if p.W != nil {
		out.W = p.W.Pixels(container.X)
	}
	if p.H != nil {
		out.H = p.H.Pixels(container.Y)
	}
	return out
}

// ResolvedPlacement is a Placement expressed in pixels.
type ResolvedPlacement struct {
	X, Y       float64
	W, H       float64
	HasX, HasY bool
}

// PixelsToFraction converts a pixel length into a fraction of size, clamped to [0,1].
func PixelsToFraction(px, size float64) float64 {
	if size <= 0 {
		return 0
	}
	return Clamp(px/size, 0, 1)
}

// FractionToPixels converts a fraction of size into pixels.
func FractionToPixels(fraction, size float64) float64 {
	return fraction * size
}

// Clamp bounds v to [lo, hi]. When lo > hi the lower bound wins.
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
