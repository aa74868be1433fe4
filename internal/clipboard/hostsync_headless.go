//go:build headless

package clipboard

import "github.com/pkg/errors"

// NewHostClipboard is unavailable in headless builds (no host display
// server to mirror the clipboard against, e.g. running atop the redox
// kernel itself); callers fall back to the process-local buffer.
func NewHostClipboard() (*HostClipboard, error) {
	return nil, errors.New("clipboard: host bridge unavailable in headless build")
}

// HostClipboard is an opaque placeholder in headless builds; its zero
// value is never constructed since NewHostClipboard always errors, but
// the type must exist so callers holding *HostClipboard still compile.
type HostClipboard struct{}

func (*HostClipboard) Close()       {}
func (*HostClipboard) Write(string) {}
func (*HostClipboard) Read() (string, bool) {
	return "", false
}
