package pathutil

// Path is an owned path buffer. The bytes of the path are followed by a
// NUL terminator kept inside the same buffer.
type Path struct {
	buf   []byte
	n     int
	alloc Allocator
}

// newPath takes a buffer that holds at least n+1 bytes and terminates it at n.
func newPath(buf []byte, n int, alloc Allocator) Path {
	buf[n] = 0
	return Path{buf: buf, n: n, alloc: alloc}
}

// String returns a copy of the path as a Go string.
func (p Path) String() string {
	return string(p.buf[:p.n])
}

// Bytes returns the path without its terminator. The slice aliases the
// Path's buffer and is invalid after Release.
func (p Path) Bytes() []byte {
	return p.buf[:p.n:p.n]
}

// CString returns the path including its NUL terminator.
func (p Path) CString() []byte {
	if p.buf == nil {
		return []byte{0}
	}
	return p.buf[:p.n+1]
}

// Len returns the path length in bytes, excluding the terminator.
func (p Path) Len() int {
	return p.n
}

// Release hands the buffer back to the allocator it came from.
// Releasing a zero Path is a no-op.
func (p *Path) Release() {
	if p.buf == nil {
		return
	}
	if p.alloc != nil {
		p.alloc.Release(p.buf)
	}
	p.buf = nil
	p.n = 0
	p.alloc = nil
}

// truncate shortens the path to n bytes and moves the terminator.
func (p *Path) truncate(n int) {
	p.n = n
	p.buf[n] = 0
}
