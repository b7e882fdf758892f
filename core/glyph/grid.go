package glyph

import "strings"

// Orientation is the write order of a glyph box in a packed font blob.
type Orientation int8

const (
	// Horizontal packs rows of a box one after the other.
	Horizontal Orientation = iota
	// Vertical packs columns of a box one after the other, for displays
	// where glyph columns are the fast-varying axis.
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// InkGrid is a W×H grid of binary pixels. A pixel set to true is ink (foreground).
type InkGrid struct {
	w, h int
	ink  []bool
}

// NewInkGrid creates a grid of size w×h without any ink.
// Non-positive dimensions yield an empty grid.
func NewInkGrid(w, h int) *InkGrid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &InkGrid{w: w, h: h, ink: make([]bool, w*h)}
}

// Width of the grid.
func (g *InkGrid) Width() int { return g.w }

// Height of the grid.
func (g *InkGrid) Height() int { return g.h }

// Contains checks if (x, y) is a position inside the grid.
func (g *InkGrid) Contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.w && y < g.h
}

// Set marks (x, y) as ink. Positions outside the grid are dropped silently
// and Set returns false for them.
func (g *InkGrid) Set(x, y int) bool {
	if !g.Contains(x, y) {
		return false
	}
	g.ink[y*g.w+x] = true
	return true
}

// At returns true if (x, y) is ink. Positions outside the grid are never ink.
func (g *InkGrid) At(x, y int) bool {
	if !g.Contains(x, y) {
		return false
	}
	return g.ink[y*g.w+x]
}

// Count returns the number of ink pixels.
func (g *InkGrid) Count() int {
	n := 0
	for _, b := range g.ink {
		if b {
			n++
		}
	}
	return n
}

// Equal compares two grids for size and content.
func (g *InkGrid) Equal(other *InkGrid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i := range g.ink {
		if g.ink[i] != other.ink[i] {
			return false
		}
	}
	return true
}

// Rows returns the grid as text, one string per row, with 'X' for ink and
// a space for background.
func (g *InkGrid) Rows() []string {
	rows := make([]string, g.h)
	var sb strings.Builder
	for y := 0; y < g.h; y++ {
		sb.Reset()
		for x := 0; x < g.w; x++ {
			if g.At(x, y) {
				sb.WriteByte('X')
			} else {
				sb.WriteByte(' ')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func (g *InkGrid) String() string {
	var sb strings.Builder
	for _, row := range g.Rows() {
		sb.WriteByte('[')
		sb.WriteString(row)
		sb.WriteString("]\n")
	}
	return sb.String()
}

// ParseInkGrid creates a grid from rows of text, where 'X' marks ink and any
// other byte is background. The grid is as wide as the longest row.
func ParseInkGrid(rows ...string) *InkGrid {
	w := 0
	for _, r := range rows {
		if len(r) > w {
			w = len(r)
		}
	}
	g := NewInkGrid(w, len(rows))
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] == 'X' {
				g.Set(x, y)
			}
		}
	}
	return g
}
