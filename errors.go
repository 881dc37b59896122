package mdpicks

import (
	"errors"

	"github.com/alnah/go-mdpicks/internal/assets"
	"github.com/alnah/go-mdpicks/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown      = errors.New("markdown content cannot be empty")
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
	ErrHTMLConversion     = pipeline.ErrHTMLConversion
	ErrAudit              = pipeline.ErrAudit

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

// AuditError lists the findings of a failed output audit. It matches ErrAudit.
type AuditError = pipeline.AuditError

// AuditFinding is one violation reported by the output audit.
type AuditFinding = pipeline.Finding
