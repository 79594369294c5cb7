package pathutil

import "strings"

// AutoLen asks Combine and Parent to use the full length of their input.
const AutoLen = -1

// Combiner joins a base directory and a path fragment under one convention.
type Combiner struct {
	conv  Convention
	alloc Allocator

	// backslashAbsolute treats a fragment starting with '\' as absolute.
	backslashAbsolute bool
}

// NewCombiner creates a Combiner for conv. A nil alloc uses DefaultAllocator.
func NewCombiner(conv Convention, alloc Allocator) *Combiner {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	return &Combiner{conv: conv, alloc: alloc}
}

// NewNativeCombiner builds paths for the local OS.
func NewNativeCombiner(alloc Allocator) *Combiner {
	return NewCombiner(Native, alloc)
}

// NewUnixCombiner builds forward-slash paths. Fragments starting with '/',
// '\' or '~' are taken as absolute.
func NewUnixCombiner(alloc Allocator) *Combiner {
	c := NewCombiner(Unix, alloc)
	c.backslashAbsolute = true
	return c
}

// Convention returns the target convention.
func (c *Combiner) Convention() Convention {
	return c.conv
}

// Combine resolves fragment against base. baseLen limits how much of base
// is used; AutoLen uses all of it.
//
//	"."        copy of base
//	".."       base without its last segment ("" when none is left)
//	absolute   copy of fragment, also when base is empty
//	otherwise  base + separator + fragment
//
// Every separator of the result is rewritten to the target convention.
// The caller owns the returned Path.
func (c *Combiner) Combine(base string, baseLen int, fragment string) (Path, error) {
	if baseLen == AutoLen {
		baseLen = len(base)
	}
	if baseLen < 0 || baseLen > len(base) {
		return Path{}, malformed("base length %d out of range [0, %d]", baseLen, len(base))
	}
	base = base[:baseLen]
	if strings.IndexByte(base, 0) >= 0 {
		return Path{}, malformed("base contains NUL byte")
	}
	if strings.IndexByte(fragment, 0) >= 0 {
		return Path{}, malformed("fragment contains NUL byte")
	}

	var (
		p   Path
		err error
	)
	switch {
	case fragment == ".":
		p, err = c.copyOf(base)
	case fragment == "..":
		p, err = c.copyOf(base)
		if err == nil {
			p.truncate(parentCut(base))
		}
	case c.isAbsolute(fragment) || base == "":
		p, err = c.copyOf(fragment)
	default:
		p, err = c.join(base, fragment)
	}
	if err != nil {
		return Path{}, err
	}

	NormalizeSeparators(p.buf[:p.n], c.conv)
	return p, nil
}

func (c *Combiner) isAbsolute(fragment string) bool {
	if c.conv.IsAbsolute(fragment) {
		return true
	}
	return c.backslashAbsolute && len(fragment) > 0 && fragment[0] == '\\'
}

func (c *Combiner) allocate(size int) ([]byte, error) {
	buf, err := c.alloc.Allocate(size)
	if err != nil {
		return nil, err
	}
	if len(buf) < size {
		c.alloc.Release(buf)
		return nil, &AllocationError{Size: size}
	}
	return buf, nil
}

func (c *Combiner) copyOf(s string) (Path, error) {
	buf, err := c.allocate(len(s) + 1)
	if err != nil {
		return Path{}, err
	}
	n := copy(buf, s)
	return newPath(buf, n, c.alloc), nil
}

// join reserves room for one inserted separator and the terminator, so no
// branch below can overflow the buffer.
func (c *Combiner) join(base, fragment string) (Path, error) {
	buf, err := c.allocate(len(base) + len(fragment) + 2)
	if err != nil {
		return Path{}, err
	}

	w := copy(buf, base)
	baseSep := isSeparator(base[len(base)-1])
	fragSep := len(fragment) > 0 && isSeparator(fragment[0])
	switch {
	case baseSep && fragSep:
		w--
	case !baseSep && !fragSep:
		buf[w] = c.conv.Separator()
		w++
	}
	w += copy(buf[w:], fragment)
	return newPath(buf, w, c.alloc), nil
}

// parentCut returns the length of p once its last segment is removed.
// One trailing separator is ignored. A separator at index 0 is kept as root.
func parentCut(p string) int {
	end := len(p)
	if end > 0 && isSeparator(p[end-1]) {
		end--
	}
	i := end - 1
	for i >= 0 && !isSeparator(p[i]) {
		i--
	}
	switch {
	case i < 0:
		return 0
	case i == 0:
		return 1
	default:
		return i
	}
}

// CombinePath joins base and fragment for the local OS.
func CombinePath(base string, baseLen int, fragment string) (Path, error) {
	return NewNativeCombiner(nil).Combine(base, baseLen, fragment)
}

// CombineUnixPath joins base and fragment as a forward-slash path.
func CombineUnixPath(base, fragment string) (Path, error) {
	return NewUnixCombiner(nil).Combine(base, AutoLen, fragment)
}
