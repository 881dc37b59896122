package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/alnah/go-mdpicks/internal/picks"
)

// ErrAudit indicates the rendered output violates the pick markup contract.
var ErrAudit = errors.New("rendered output audit failed")

// Finding is one audit violation.
type Finding struct {
	Selector string // element the finding is about, e.g. "a.pick-cta[2]"
	Message  string
}

func (f Finding) String() string {
	return f.Selector + ": " + f.Message
}

// AuditError lists every finding of a failed audit. It matches ErrAudit.
type AuditError struct {
	Findings []Finding
}

func (e *AuditError) Error() string {
	msgs := make([]string, len(e.Findings))
	for i, f := range e.Findings {
		msgs[i] = f.String()
	}
	return fmt.Sprintf("%v: %s", ErrAudit, strings.Join(msgs, "; "))
}

func (e *AuditError) Unwrap() error { return ErrAudit }

// Audit checks rendered HTML against the pick markup contract:
//   - every a.pick-cta has a non-empty href, the sponsored rel and target _blank
//   - every .pick holds exactly one .pick-tile, .pick-body and .pick-cta-row
//   - the number of .pick elements equals len(injected)
//   - no single-item list repeats an injected pick title
//
// Returns nil or an *AuditError.
func Audit(htmlContent string, injected []picks.Pick) error {
	root, err := parseHTML(htmlContent)
	if err != nil {
		return fmt.Errorf("%w: parse: %v", ErrAudit, err)
	}
	doc := goquery.NewDocumentFromNode(root)

	var findings []Finding
	add := func(selector, format string, args ...any) {
		findings = append(findings, Finding{Selector: selector, Message: fmt.Sprintf(format, args...)})
	}

	doc.Find("a.pick-cta").Each(func(i int, a *goquery.Selection) {
		sel := fmt.Sprintf("a.pick-cta[%d]", i)
		if href, _ := a.Attr("href"); strings.TrimSpace(href) == "" {
			add(sel, "empty href")
		}
		if rel, _ := a.Attr("rel"); rel != picks.LinkRel {
			add(sel, "rel=%q, want %q", rel, picks.LinkRel)
		}
		if target, _ := a.Attr("target"); target != picks.LinkTarget {
			add(sel, "target=%q, want %q", target, picks.LinkTarget)
		}
	})

	blocks := doc.Find("div.pick")
	blocks.Each(func(i int, pick *goquery.Selection) {
		sel := fmt.Sprintf("div.pick[%d]", i)
		for _, part := range []string{".pick-tile", ".pick-body", ".pick-cta-row"} {
			if n := pick.Find(part).Length(); n != 1 {
				add(sel, "has %d %s, want 1", n, part)
			}
		}
	})
	if n := blocks.Length(); n != len(injected) {
		add("div.pick", "found %d blocks, want %d", n, len(injected))
	}

	titles := make(map[string]bool, len(injected))
	for _, p := range injected {
		titles[picks.Normalize(p.Title)] = true
	}
	doc.Find("ul, ol").Each(func(i int, list *goquery.Selection) {
		items := list.ChildrenFiltered("li")
		if items.Length() != 1 {
			return
		}
		text := strings.TrimSpace(items.Text())
		if titles[picks.Normalize(text)] {
			add(goquery.NodeName(list)+"[single]", "repeats pick title %q", text)
		}
	})

	if len(findings) > 0 {
		return &AuditError{Findings: findings}
	}
	return nil
}
