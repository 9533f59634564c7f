// Package debug holds environment switched tracing for the merge, diff
// and source internals.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Merge  bool
	Diff   bool
	Source bool
}

var d *debug

func init() {
	d = &debug{}
	d.Merge = boolEnv("LAYERCONF_DEBUG_MERGE")
	d.Diff = boolEnv("LAYERCONF_DEBUG_DIFF")
	d.Source = boolEnv("LAYERCONF_DEBUG_SOURCE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Merge() bool {
	return d.Merge
}
func Diff() bool {
	return d.Diff
}
func Source() bool {
	return d.Source
}
