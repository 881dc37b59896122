// Package frontmatter separates a leading YAML block from a Markdown document
// and decodes it into document metadata.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-mdpicks/internal/yamlutil"
)

// ErrInvalid indicates the frontmatter block is not valid YAML.
var ErrInvalid = errors.New("invalid frontmatter")

const (
	fence     = "---"
	closeDots = "..."
	bom       = "\uFEFF"
)

// Document is a Markdown document split into metadata and body.
type Document struct {
	// Meta is nil when the document has no frontmatter, or when the
	// frontmatter is not a mapping.
	Meta map[string]any
	Body string
}

// Parse splits content and decodes its frontmatter.
// Content without frontmatter is returned unchanged as the body.
func Parse(content string) (*Document, error) {
	front, body, ok := Split(content)
	if !ok {
		return &Document{Body: content}, nil
	}

	doc := &Document{Body: body}
	if strings.TrimSpace(front) == "" {
		doc.Meta = map[string]any{}
		return doc, nil
	}

	var decoded any
	if err := yamlutil.Unmarshal([]byte(front), &decoded); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	doc.Meta = toStringMap(decoded)
	return doc, nil
}

// Split returns the frontmatter block and the remaining body.
// ok is false when content does not open with a "---" line or the block is
// never closed by a "---" or "..." line.
func Split(content string) (front, body string, ok bool) {
	text := strings.TrimPrefix(content, bom)

	first, rest, found := strings.Cut(text, "\n")
	if !found || trimLine(first) != fence {
		return "", content, false
	}

	offset := 0
	for offset <= len(rest) {
		line, _, more := strings.Cut(rest[offset:], "\n")
		if l := trimLine(line); l == fence || l == closeDots {
			front = rest[:offset]
			body = ""
			if end := offset + len(line) + 1; end <= len(rest) {
				body = rest[end:]
			}
			return front, body, true
		}
		if !more {
			break
		}
		offset += len(line) + 1
	}
	return "", content, false
}

// trimLine drops a trailing carriage return and trailing blanks.
func trimLine(line string) string {
	return strings.TrimRight(line, " \t\r")
}

// toStringMap returns v as a string-keyed map, or nil if v is not a mapping.
func toStringMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			if key, ok := k.(string); ok {
				out[key] = val
			}
		}
		return out
	}
	return nil
}
