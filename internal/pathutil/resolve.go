package pathutil

import "strings"

// Resolve applies p to base one segment at a time, so "." and ".."
// inside p are honoured. An absolute p restarts from its own root.
// A walk that starts at an absolute path never climbs above its root.
func (c *Combiner) Resolve(base, p string) (Path, error) {
	cur, rest := base, p
	if c.isAbsolute(p) {
		i := strings.IndexAny(p, `/\`)
		if i < 0 {
			return c.Combine(base, AutoLen, p)
		}
		cur, rest = p[:i+1], p[i+1:]
	}
	root := c.rootOf(cur)

	for _, seg := range strings.FieldsFunc(rest, func(r rune) bool { return r == '/' || r == '\\' }) {
		next, err := c.Combine(cur, AutoLen, seg)
		if err != nil {
			return Path{}, err
		}
		cur = next.String()
		next.Release()
		if len(cur) < len(root) {
			cur = root
		}
	}
	return c.Combine(cur, AutoLen, ".")
}

// rootOf returns the root of an absolute p up to and including its first
// separator ("/", "~/", "C:\"), or "" when p is relative.
func (c *Combiner) rootOf(p string) string {
	if !c.isAbsolute(p) {
		return ""
	}
	if i := strings.IndexAny(p, `/\`); i >= 0 {
		return p[:i+1]
	}
	return p
}
