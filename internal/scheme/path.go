package scheme

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/redox-os/orbital/internal/window"
)

// OpenSpec is the parsed form of a scheme open(2) path for a new window:
//
//	flags/x/y/width/height/title
//
// x/y may be negative; a path with EITHER x<0 OR y<0 requests
// auto-centering (§4.G, §6). flags is a run of single letters from
// {a,l,r,t,u}: a=async l=borderless r=resizable t=transparent
// u=unclosable. Missing numeric segments default to 0; title may itself
// contain '/' and is never split further.
type OpenSpec struct {
	X, Y, W, H int
	AutoCenter bool
	Flags      window.Flag
	Title      string
}

func ParseOpenPath(path string) (OpenSpec, error) {
	if path == "" {
		return OpenSpec{}, errors.Errorf("scheme: malformed open path %q", path)
	}
	parts := strings.SplitN(path, "/", 6)

	var flags window.Flag
	for _, r := range parts[0] {
		switch r {
		case 'a':
			flags |= window.FlagAsync
		case 'l':
			flags |= window.FlagBorderless
		case 'r':
			flags |= window.FlagResizable
		case 't':
			flags |= window.FlagTransparent
		case 'u':
			flags |= window.FlagUnclosable
		}
	}

	field := func(i int) (int, error) {
		if i >= len(parts) || parts[i] == "" {
			return 0, nil
		}
		return strconv.Atoi(parts[i])
	}
	x, err := field(1)
	if err != nil {
		return OpenSpec{}, errors.Wrap(err, "scheme: parse x")
	}
	y, err := field(2)
	if err != nil {
		return OpenSpec{}, errors.Wrap(err, "scheme: parse y")
	}
	w, err := field(3)
	if err != nil {
		return OpenSpec{}, errors.Wrap(err, "scheme: parse width")
	}
	h, err := field(4)
	if err != nil {
		return OpenSpec{}, errors.Wrap(err, "scheme: parse height")
	}
	title := ""
	if len(parts) > 5 {
		title = parts[5]
	}

	return OpenSpec{
		X: x, Y: y, W: w, H: h,
		AutoCenter: x < 0 || y < 0,
		Flags:      flags,
		Title:      title,
	}, nil
}

// FormatFpath reformats an open window's live geometry back into the
// same grammar ParseOpenPath accepts, for fpath(2).
func FormatFpath(spec OpenSpec) string {
	var flagStr strings.Builder
	if spec.Flags&window.FlagAsync != 0 {
		flagStr.WriteByte('a')
	}
	if spec.Flags&window.FlagBorderless != 0 {
		flagStr.WriteByte('l')
	}
	if spec.Flags&window.FlagResizable != 0 {
		flagStr.WriteByte('r')
	}
	if spec.Flags&window.FlagTransparent != 0 {
		flagStr.WriteByte('t')
	}
	if spec.Flags&window.FlagUnclosable != 0 {
		flagStr.WriteByte('u')
	}
	return strings.Join([]string{
		flagStr.String(),
		strconv.Itoa(spec.X), strconv.Itoa(spec.Y), strconv.Itoa(spec.W), strconv.Itoa(spec.H),
		spec.Title,
	}, "/")
}
