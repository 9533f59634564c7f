package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultPath returns the conventional default configuration path of the
// running executable: <exe dir>/conf/<exe name>.json.default.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("could not locate executable: %w", err)
	}
	return DefaultPathFor(exe), nil
}

// DefaultPathFor is DefaultPath for the executable at exe. The last
// extension of the executable name is dropped.
func DefaultPathFor(exe string) string {
	dir, base := filepath.Split(exe)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, "conf", stem+".json.default")
}

// RelativeTo resolves relative against the directory containing base and
// returns the canonical absolute path. The result must exist.
func RelativeTo(relative, base string) (string, error) {
	p := relative
	if !filepath.IsAbs(p) {
		p = filepath.Join(filepath.Dir(base), relative)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("canonicalize %q: %w", p, err)
	}
	res, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("canonicalize %q: %w", p, err)
	}
	return res, nil
}
