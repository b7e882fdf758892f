package placement

import (
	"fmt"
	"sort"

	"github.com/npillmayer/fontbin/core"
)

// MaxOffset limits the absolute value of an optical offset fraction.
const MaxOffset = 0.15

// OffsetTable maps normalized characters to an optical offset, given as a
// fraction of the box width. Negative values shift to the left.
// Tables are immutable once created.
type OffsetTable struct {
	name    string
	offsets map[string]float64
}

// NewOffsetTable creates a named offset table. Keys should be normalized (see
// Normalize), values must lie within [-MaxOffset, MaxOffset].
func NewOffsetTable(name string, offsets map[string]float64) (*OffsetTable, error) {
	t := &OffsetTable{name: name, offsets: make(map[string]float64, len(offsets))}
	for k, v := range offsets {
		if v < -MaxOffset || v > MaxOffset {
			return nil, core.Error(core.EINVALID, "optical offset for %q out of range: %g", k, v)
		}
		t.offsets[k] = v
	}
	return t, nil
}

// Name returns the name of the table.
func (t *OffsetTable) Name() string {
	if t == nil {
		return "none"
	}
	return t.name
}

// Lookup returns the offset fraction for a normalized character, or 0.
func (t *OffsetTable) Lookup(normalized string) float64 {
	if t == nil {
		return 0
	}
	return t.offsets[normalized]
}

// Len returns the number of entries.
func (t *OffsetTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.offsets)
}

// --- Presets ---------------------------------------------------------------

// Names of the offset table presets.
const (
	Fine   = "fine"
	Coarse = "coarse"
)

// DefaultPreset is the name of the canonical offset table.
const DefaultPreset = Fine

var presets = map[string]*OffsetTable{
	Fine:   mustTable(Fine, fineOffsets),
	Coarse: mustTable(Coarse, coarseOffsets),
}

func mustTable(name string, offsets map[string]float64) *OffsetTable {
	t, err := NewOffsetTable(name, offsets)
	if err != nil {
		panic(fmt.Sprintf("invalid offset preset %s: %v", name, err))
	}
	return t
}

// Preset returns a preset offset table by name.
func Preset(name string) (*OffsetTable, error) {
	if t, ok := presets[name]; ok {
		return t, nil
	}
	return nil, core.Error(core.EINVALID, "no optical offset table named %q; known are %v",
		name, PresetNames())
}

// Default returns the canonical offset table.
func Default() *OffsetTable {
	return presets[DefaultPreset]
}

// PresetNames lists the names of all presets.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// fineOffsets distinguishes about 80 glyph classes.
var fineOffsets = map[string]float64{
	// round glyphs: strong shift to the left
	"O": -0.10, "Q": -0.10, "C": -0.09, "G": -0.09,
	"o": -0.10, "q": -0.10, "c": -0.09, "g": -0.09,
	"0": -0.10, "6": -0.08, "8": -0.08, "9": -0.08,
	// half-round
	"D": -0.06, "d": -0.06,
	"S": -0.05, "s": -0.05,
	"3": -0.06, "5": -0.05, "2": -0.04,
	// wide top, narrow base: shift to the right
	"T": 0.07, "Y": 0.06, "V": 0.06, "W": 0.05, "A": 0.04,
	"y": 0.05, "v": 0.05, "w": 0.04,
	"7": 0.06,
	// narrow glyphs stay centered
	"I": 0, "l": 0, "i": 0, "1": 0, "!": 0, "|": 0,
	"t": 0, "f": 0, "j": 0, "r": 0,
	// open to the right
	"J": 0.05,
	"a": 0.02, "e": 0.02, "u": 0.02,
	// brackets
	"(": -0.12, "[": -0.12, "{": -0.12,
	")": 0.12, "]": 0.12, "}": 0.12,
	// quotes
	"‘": -0.08, "’": 0.08, "‚": -0.08,
	"“": -0.08, "”": 0.08, "„": -0.08,
	"'": 0, "\"": 0,
	// small punctuation
	".": -0.02, ",": -0.02, ":": -0.02, ";": -0.02,
	// symmetric glyphs
	"B": 0, "E": 0, "F": 0, "H": 0, "K": 0, "L": 0,
	"M": 0, "N": 0, "P": 0, "R": 0, "U": 0, "X": 0, "Z": 0,
	"b": 0, "h": 0, "k": 0, "m": 0, "n": 0, "p": 0,
	"x": 0, "z": 0,
	"4": 0,
	"-": 0, "+": 0, "=": 0, "*": 0, "/": 0, "\\": 0,
	"#": 0, "&": 0, "%": 0, "$": 0, "@": 0,
	"?": 0, "^": 0, "_": 0, "~": 0, "`": 0,
	"<": 0, ">": 0,
}

// coarseOffsets knows round glyphs, roofed glyphs and brackets only.
var coarseOffsets = map[string]float64{
	"O": -0.08, "Q": -0.08, "C": -0.08, "G": -0.08,
	"o": -0.08, "q": -0.08, "c": -0.08, "g": -0.08,
	"0": -0.08, "6": -0.08, "8": -0.08, "9": -0.08,
	"T": 0.05, "Y": 0.05, "V": 0.05, "W": 0.05, "A": 0.05,
	"y": 0.05, "v": 0.05, "w": 0.05, "7": 0.05,
	"(": -0.10, "[": -0.10, "{": -0.10,
	")": 0.10, "]": 0.10, "}": 0.10,
}
