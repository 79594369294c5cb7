package pathutil

// NormalizeSeparators rewrites, in place, every separator of the other
// convention to conv's separator and returns p.
func NormalizeSeparators(p []byte, conv Convention) []byte {
	sep := conv.Separator()
	other := byte('\\')
	if sep == '\\' {
		other = '/'
	}
	for i := range p {
		if p[i] == other {
			p[i] = sep
		}
	}
	return p
}

// FixUnixPath turns every backslash in p into a forward slash.
func FixUnixPath(p []byte) []byte {
	return NormalizeSeparators(p, Unix)
}

// NormalizeString is NormalizeSeparators for immutable strings.
func NormalizeString(s string, conv Convention) string {
	return string(NormalizeSeparators([]byte(s), conv))
}
