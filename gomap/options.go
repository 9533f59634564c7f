package gomap

// MapOption is an option for controlling the mapping process from Go to IR.
type MapOption interface {
	applyMap(*mapConfig)
}

// UnmapOption is an option for controlling the unmapping process from IR to Go.
type UnmapOption interface {
	applyUnmap(*unmapConfig)
}

type mapConfig struct {
	omitNulls bool
}

type unmapConfig struct {
	strict bool
	unused *[]string
}

type mapOptionFunc func(*mapConfig)

func (f mapOptionFunc) applyMap(c *mapConfig) { f(c) }

type unmapOptionFunc func(*unmapConfig)

func (f unmapOptionFunc) applyUnmap(c *unmapConfig) { f(c) }

// OmitNulls drops null object members from the mapped tree, recursively.
// Used for overlays, where a null member would delete the key it names.
func OmitNulls(v bool) MapOption {
	return mapOptionFunc(func(c *mapConfig) { c.omitNulls = v })
}

// Strict makes keys which do not correspond to any field of the target an
// error.
func Strict(v bool) UnmapOption {
	return unmapOptionFunc(func(c *unmapConfig) { c.strict = v })
}

// UnusedKeys stores the dotted paths of keys which did not correspond to
// any field of the target in dst.
func UnusedKeys(dst *[]string) UnmapOption {
	return unmapOptionFunc(func(c *unmapConfig) { c.unused = dst })
}
