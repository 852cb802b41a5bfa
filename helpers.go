package portfolio

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// timestampLayout is the format used for record dates and filename prefixes.
const timestampLayout = "2006-01-02 15:04:05"

// Slugify converts a title to a URL-safe slug: lowercase, runs of
// non-alphanumeric characters collapsed to single hyphens.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// sanitizeFilename strips path components and characters outside
// [A-Za-z0-9._-], mapping spaces to hyphens. Leading dots are dropped so an
// upload can never hide as a dotfile.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.', r == '_', r == '-':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	s := strings.TrimLeft(b.String(), ".")
	if s == "" {
		s = "file"
	}
	return s
}

// storedFilename prefixes a sanitized name with a second-granularity
// timestamp, which keeps concurrent uploads of the same file apart in
// practice without a directory scan.
func storedFilename(original string, now time.Time) string {
	return now.Format("20060102150405") + "_" + sanitizeFilename(original)
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// splitParagraphs divides plain text into paragraphs on blank-line
// boundaries. Single newlines stay inside their paragraph.
func splitParagraphs(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	var paras []string
	var cur []string
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				paras = append(paras, strings.Join(cur, "\n"))
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		paras = append(paras, strings.Join(cur, "\n"))
	}
	return paras
}
