package world

import "sort"

// ReferenceLayout is the 16x16 demo level.
const ReferenceLayout = "0000222222220000" +
	"1              0" +
	"1      11111   0" +
	"1     0        0" +
	"0     0  1110000" +
	"0     3        0" +
	"0   10000      0" +
	"0   0   11100  0" +
	"0   0   0      0" +
	"0   0   1  00000" +
	"0       1      0" +
	"2       1      0" +
	"0       0      0" +
	"0 0000000      0" +
	"0              0" +
	"0002222222200000"

// ReferencePaletteSize is the number of wall colors the demo level expects.
const ReferencePaletteSize = 10

// Reference returns the 16x16 demo level.
func Reference() *Map {
	m := MustParseLayout(16, 16, ReferenceLayout, ReferencePaletteSize)
	m.Name = "reference"
	return m
}

// Arena returns an 8x8 walled room with a single pillar.
func Arena() *Map {
	m := MustParseLayout(8, 8, ""+
		"11111111"+
		"1      1"+
		"1      1"+
		"1   2  1"+
		"1      1"+
		"1      1"+
		"1      1"+
		"11111111", ReferencePaletteSize)
	m.Name = "arena"
	return m
}

// Factory builds a named built-in map.
type Factory func() *Map

var maps = map[string]Factory{}

// Register adds a map factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	maps[name] = f
}

// Builtin returns the named built-in map.
func Builtin(name string) (*Map, bool) {
	f, ok := maps[name]
	if !ok {
		return nil, false
	}
	return f(), true
}

// Names lists the registered built-in maps in sorted order.
func Names() []string {
	out := make([]string, 0, len(maps))
	for name := range maps {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func init() {
	Register("reference", Reference)
	Register("arena", Arena)
}
