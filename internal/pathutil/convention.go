package pathutil

import (
	"fmt"
	"runtime"
	"strings"
)

// Convention describes a separator character and the grammar of absolute
// paths for one path style.
type Convention interface {
	Name() string
	Separator() byte
	IsAbsolute(p string) bool
}

type windowsConvention struct {
	inclusive bool
}

func (c windowsConvention) Name() string {
	if c.inclusive {
		return "windows-inclusive"
	}
	return "windows"
}

func (windowsConvention) Separator() byte { return '\\' }

// IsAbsolute accepts "X:" prefixes. Without inclusive, the letters a, z, A
// and Z are not accepted as drive letters.
func (c windowsConvention) IsAbsolute(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	d := p[0]
	if c.inclusive {
		return (d >= 'a' && d <= 'z') || (d >= 'A' && d <= 'Z')
	}
	return (d > 'a' && d < 'z') || (d > 'A' && d < 'Z')
}

type unixConvention struct{}

func (unixConvention) Name() string    { return "unix" }
func (unixConvention) Separator() byte { return '/' }

// IsAbsolute accepts paths rooted at "/" or at a home directory "~".
func (unixConvention) IsAbsolute(p string) bool {
	return len(p) > 0 && (p[0] == '/' || p[0] == '~')
}

var (
	// Windows is the drive-letter convention with '\' separators.
	Windows Convention = windowsConvention{}

	// WindowsInclusive is Windows with every letter accepted as a drive.
	WindowsInclusive Convention = windowsConvention{inclusive: true}

	// Unix is the forward-slash convention used by remote paths.
	Unix Convention = unixConvention{}

	// Native is the convention of the running OS.
	Native = conventionFor(runtime.GOOS)
)

func conventionFor(goos string) Convention {
	if goos == "windows" {
		return Windows
	}
	return Unix
}

// IsAbsolute reports whether p is absolute under conv.
func IsAbsolute(p string, conv Convention) bool {
	return conv.IsAbsolute(p)
}

// ParseConvention resolves a convention by name.
func ParseConvention(name string) (Convention, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "native":
		return Native, nil
	case "windows", "win", "dos":
		return Windows, nil
	case "windows-inclusive":
		return WindowsInclusive, nil
	case "unix", "posix":
		return Unix, nil
	default:
		return nil, fmt.Errorf("unknown path convention %q", name)
	}
}

func isSeparator(b byte) bool {
	return b == '/' || b == '\\'
}
