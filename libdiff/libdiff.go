// Package libdiff renders line oriented differences between texts, such
// as two trees encoded with package encode.
package libdiff

import (
	"bytes"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/layerconf/encode"
	"github.com/signadot/layerconf/ir"
)

type Op int

const (
	Equal Op = iota
	Delete
	Insert
)

func (o Op) prefix() string {
	switch o {
	case Delete:
		return "- "
	case Insert:
		return "+ "
	}
	return "  "
}

// Line is one line of a diff, without its trailing newline.
type Line struct {
	Op   Op
	Text string
}

// Lines diffs from and to line by line.
func Lines(from, to string) []Line {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
	var res []Line
	for _, d := range diffs {
		op := Equal
		switch d.Type {
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffInsert:
			op = Insert
		}
		for _, ln := range strings.SplitAfter(d.Text, "\n") {
			if ln == "" {
				continue
			}
			res = append(res, Line{Op: op, Text: strings.TrimSuffix(ln, "\n")})
		}
	}
	return res
}

// Nodes diffs the indented JSON encodings of from and to.
func Nodes(from, to *ir.Node, opts ...encode.EncodeOption) ([]Line, error) {
	a, b := bytes.NewBuffer(nil), bytes.NewBuffer(nil)
	if err := encode.Encode(from, a, opts...); err != nil {
		return nil, err
	}
	if err := encode.Encode(to, b, opts...); err != nil {
		return nil, err
	}
	return Lines(a.String(), b.String()), nil
}

// Changed reports whether lines hold any insertion or deletion.
func Changed(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write writes lines to w prefixed with "- ", "+ " or two spaces, in red
// and green when colors is set.
func Write(w io.Writer, lines []Line, colors bool) error {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	if colors {
		del.EnableColor()
		ins.EnableColor()
	}
	for _, ln := range lines {
		s := ln.Op.prefix() + ln.Text
		if colors {
			switch ln.Op {
			case Delete:
				s = del.Sprint(s)
			case Insert:
				s = ins.Sprint(s)
			}
		}
		if _, err := io.WriteString(w, s+"\n"); err != nil {
			return err
		}
	}
	return nil
}
