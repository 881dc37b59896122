package pipeline

import (
	"context"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestWrapDocument - HTML5 wrapper and title
// ---------------------------------------------------------------------------

func TestWrapDocument(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		title     string
		wantTitle string
	}{
		{name: "title", title: "Rainy day gear", wantTitle: "<title>Rainy day gear</title>"},
		{name: "blank title", title: "  ", wantTitle: "<title>Document</title>"},
		{name: "escaped title", title: `Tom & "Jerry" <3`, wantTitle: "<title>Tom &amp; &#34;Jerry&#34; &lt;3</title>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := WrapDocument(tt.title, "<p>x</p>\n")
			if !strings.HasPrefix(got, "<!DOCTYPE html>") {
				t.Errorf("WrapDocument() does not start with doctype: %q", got)
			}
			if !strings.Contains(got, tt.wantTitle) {
				t.Errorf("WrapDocument() missing %q in:\n%s", tt.wantTitle, got)
			}
			if !strings.Contains(got, "<article>\n<p>x</p>\n</article>") {
				t.Errorf("WrapDocument() does not wrap fragment in article:\n%s", got)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInjectCSS - Style block placement
// ---------------------------------------------------------------------------

func TestInjectCSS(t *testing.T) {
	t.Parallel()

	const css = ".pick{color:red}"
	const block = "<style>\n.pick{color:red}\n</style>\n"

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "before head close",
			html: "<html><head><title>x</title></head><body></body></html>",
			css:  css,
			want: "<html><head><title>x</title>" + block + "</head><body></body></html>",
		},
		{
			name: "uppercase head",
			html: "<HTML><HEAD></HEAD></HTML>",
			css:  css,
			want: "<HTML><HEAD>" + block + "</HEAD></HTML>",
		},
		{
			name: "after body open",
			html: `<body class="post"><p>x</p></body>`,
			css:  css,
			want: `<body class="post">` + block + "<p>x</p></body>",
		},
		{
			name: "prepended to fragment",
			html: "<p>x</p>",
			css:  css,
			want: block + "<p>x</p>",
		},
		{
			name: "empty CSS",
			html: "<p>x</p>",
			css:  "  \n",
			want: "<p>x</p>",
		},
	}

	inj := &CSSInjection{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := inj.InjectCSS(context.Background(), tt.html, tt.css); got != tt.want {
				t.Errorf("InjectCSS() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestInjectCSS_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if got := (&CSSInjection{}).InjectCSS(ctx, "<p>x</p>", "p{}"); got != "<p>x</p>" {
		t.Errorf("InjectCSS() = %q, want input unchanged", got)
	}
}

func TestSanitizeCSS(t *testing.T) {
	t.Parallel()

	got := sanitizeCSS(`p{}</style><script>alert(1)</script>`)
	if strings.Contains(got, "</style>") {
		t.Errorf("sanitizeCSS() = %q still closes the style block", got)
	}
	if got != `p{}<\/style><script>alert(1)<\/script>` {
		t.Errorf("sanitizeCSS() = %q", got)
	}
}

func TestJoinCSS(t *testing.T) {
	t.Parallel()

	got := JoinCSS(" a{} ", "", "\n", "b{}")
	if got != "a{}\n\nb{}" {
		t.Errorf("JoinCSS() = %q, want %q", got, "a{}\n\nb{}")
	}
	if JoinCSS() != "" {
		t.Error("JoinCSS() with no sheets should be empty")
	}
}
