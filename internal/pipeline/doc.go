// Package pipeline implements the Markdown-to-HTML stages around the picks
// transformer:
//   - Markdown preprocessing (line endings, blank-line compression)
//   - Markdown to HTML conversion via goldmark, with pick injection
//   - Document wrapping and CSS injection
//   - Rendered-output audit of the generated pick markup
//
// Frontmatter is split off by the caller; the converter receives the body
// and the decoded metadata separately.
package pipeline
