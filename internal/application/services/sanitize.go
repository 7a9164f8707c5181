package services

import (
	"path"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const maxBaseNameLen = 100

var windowsReserved = map[string]struct{}{
	"con": {}, "prn": {}, "aux": {}, "nul": {},
	"com1": {}, "com2": {}, "com3": {}, "com4": {}, "com5": {}, "com6": {}, "com7": {}, "com8": {}, "com9": {},
	"lpt1": {}, "lpt2": {}, "lpt3": {}, "lpt4": {}, "lpt5": {}, "lpt6": {}, "lpt7": {}, "lpt8": {}, "lpt9": {},
}

// sanitizeFileName make file name ASCII standard
func sanitizeFileName(original string) string {
	if original == "" {
		return "file"
	}

	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "" {
		return "file"
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	ext := strings.ToLower(path.Ext(s))
	base := strings.TrimSuffix(s, ext)

	//  [a-z0-9], '-' и '_', dot/space → '-'
	var b strings.Builder
	b.Grow(len(base))
	prevDash := false
	for _, r := range base {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
			prevDash = false
		case r >= 'a' && r <= 'z':
			b.WriteRune(r)
			prevDash = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
			prevDash = false
		case r == '-' || r == '_':
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		case r == '.' || unicode.IsSpace(r):
			if !prevDash {
				b.WriteRune('-')
				prevDash = true
			}
		default:
		}
	}
	base = strings.Trim(b.String(), "-")

	if base == "" {
		base = "file"
	}
	if _, bad := windowsReserved[base]; bad {
		base = "_" + base
	}

	for utf8.RuneCountInString(base)+len(ext) > maxBaseNameLen {
		_, size := utf8.DecodeLastRuneInString(base)
		if size <= 0 || size > len(base) {
			break
		}
		base = base[:len(base)-size]
	}

	return base + ext
}

// splitFileName separates a sanitized file name into the stored base name
// and its extension without the dot.
func splitFileName(name string) (string, string) {
	ext := path.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return base, strings.TrimPrefix(ext, ".")
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
