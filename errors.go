package layerconf

import (
	"errors"
	"fmt"

	"github.com/signadot/layerconf/source"
)

// Stage names the step of a resolution which failed.
type Stage int

const (
	StageDefault Stage = iota
	StageUser
	StageCmdline
	StageDecode
)

func (s Stage) String() string {
	switch s {
	case StageDefault:
		return "default"
	case StageUser:
		return "user"
	case StageCmdline:
		return "cmdline"
	case StageDecode:
		return "decode"
	}
	return fmt.Sprintf("<stage %d>", int(s))
}

var (
	ErrDefaultInvalid = errors.New("default configuration is invalid")
	ErrUserInvalid    = errors.New("user configuration is invalid")
	ErrEncode         = errors.New("command line configuration cannot be encoded")
	ErrDecode         = errors.New("configuration cannot be decoded")
)

// ConfigError reports a failed resolution. It matches the sentinel error of
// its stage under errors.Is and wraps the underlying parse or codec error.
type ConfigError struct {
	Stage Stage
	// Source and Origin are set for the default and user stages.
	Source source.Source
	Origin source.Origin
	Err    error
}

func (e *ConfigError) sentinel() error {
	switch e.Stage {
	case StageDefault:
		return ErrDefaultInvalid
	case StageUser:
		return ErrUserInvalid
	case StageCmdline:
		return ErrEncode
	default:
		return ErrDecode
	}
}

func (e *ConfigError) Error() string {
	switch e.Stage {
	case StageDefault, StageUser:
		if e.Source == "" {
			return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
		}
		if e.Origin == source.File {
			return fmt.Sprintf("%s: file %s: %v", e.sentinel(), e.Source, e.Err)
		}
		return fmt.Sprintf("%s: literal text: %v", e.sentinel(), e.Err)
	}
	return fmt.Sprintf("%s: %v", e.sentinel(), e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return []error{e.sentinel(), e.Err}
}
