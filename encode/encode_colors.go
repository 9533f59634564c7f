package encode

import (
	"github.com/signadot/layerconf/ir"

	"github.com/fatih/color"
)

// ColorAttr is the role of a piece of encoded text.
type ColorAttr int

const (
	FieldColor ColorAttr = iota
	ValueColor
	SepColor
)

// Colors holds a print function per role. Values are colored by type;
// text with no function set is written as is.
type Colors struct {
	Field  func(...any) string
	Sep    func(...any) string
	Values map[ir.Type]func(...any) string
}

func NewColors() *Colors {
	return &Colors{
		Field: color.RGB(128, 168, 196).SprintFunc(),
		Sep:   color.RGB(196, 128, 128).SprintFunc(),
		Values: map[ir.Type]func(...any) string{
			ir.NullType:   color.RGB(168, 0, 196).SprintFunc(),
			ir.NumberType: color.RGB(128, 216, 236).SprintFunc(),
			ir.StringType: color.RGB(8, 196, 16).SprintFunc(),
			ir.BoolType:   color.New(color.FgCyan).SprintFunc(),
		},
	}
}

func (c *Colors) Color(t ir.Type, a ColorAttr, s string) string {
	var f func(...any) string
	switch a {
	case FieldColor:
		f = c.Field
	case SepColor:
		f = c.Sep
	case ValueColor:
		f = c.Values[t]
	}
	if f == nil {
		return s
	}
	return f(s)
}
