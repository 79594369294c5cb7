package pathutil

import "strings"

// Filename returns the part of p after its last separator. The result
// shares memory with p.
func Filename(p string) string {
	i := len(p) - 1
	for i >= 0 && !isSeparator(p[i]) {
		i--
	}
	return p[i+1:]
}

// Parent returns a copy of the parent directory of p[:n] with separators
// rewritten to the local OS convention. n may be AutoLen.
//
// ok is false with a nil error when p has no parent: it is empty, or it
// holds a single segment without a leading separator. A path rooted at a
// single separator has that separator as its parent.
func Parent(p string, n int, alloc Allocator) (parent Path, ok bool, err error) {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	return parentOf(p, n, Native, alloc)
}

// Parent is like the package Parent but builds the result in c's
// convention from c's allocator.
func (c *Combiner) Parent(p string, n int) (Path, bool, error) {
	return parentOf(p, n, c.conv, c.alloc)
}

func parentOf(p string, n int, conv Convention, alloc Allocator) (Path, bool, error) {
	if n == AutoLen {
		n = len(p)
	}
	if n < 0 || n > len(p) {
		return Path{}, false, malformed("length %d out of range [0, %d]", n, len(p))
	}
	p = p[:n]
	if strings.IndexByte(p, 0) >= 0 {
		return Path{}, false, malformed("path contains NUL byte")
	}

	cut, ok := parentLen(p)
	if !ok {
		return Path{}, false, nil
	}

	buf, err := alloc.Allocate(n + 1)
	if err != nil {
		return Path{}, false, err
	}
	if len(buf) < n+1 {
		alloc.Release(buf)
		return Path{}, false, &AllocationError{Size: n + 1}
	}
	copy(buf, p)
	NormalizeSeparators(buf[:cut], conv)
	return newPath(buf, cut, alloc), true, nil
}

// parentLen skips one trailing separator and scans back to the previous one.
func parentLen(p string) (int, bool) {
	if p == "" {
		return 0, false
	}
	i := len(p) - 1
	if i > 0 && isSeparator(p[i]) {
		i--
	}
	for i > 0 && !isSeparator(p[i]) {
		i--
	}
	if i == 0 {
		if isSeparator(p[0]) {
			return 1, true
		}
		return 0, false
	}
	return i, true
}

// BaseDir is Parent using DefaultAllocator.
func BaseDir(p string, n int) (Path, bool, error) {
	return Parent(p, n, DefaultAllocator)
}
