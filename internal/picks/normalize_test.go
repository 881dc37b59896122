package picks

import "testing"

// ---------------------------------------------------------------------------
// TestNormalize - Join key projection
// ---------------------------------------------------------------------------

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "only spaces", input: "   \t ", want: ""},
		{name: "trims and lowercases", input: "  Cozy Rain Jacket ", want: "cozy rain jacket"},
		{name: "collapses whitespace", input: "Cozy \t Rain\n\nJacket", want: "cozy rain jacket"},
		{name: "strips straight quotes", input: `The "Best" Kid's Pad`, want: "the best kids pad"},
		{name: "strips curly quotes", input: "“Cozy” Jacket", want: "cozy jacket"},
		{name: "keeps hyphen and underscore", input: "All-Weather_Pro", want: "all-weather_pro"},
		{name: "strips punctuation", input: "Jacket (2024 Edition)!", want: "jacket 2024 edition"},
		{name: "no double space after stripping", input: "Salt & Pepper", want: "salt pepper"},
		{name: "no trailing space after stripping", input: "Wow !", want: "wow"},
		{name: "strips non-ASCII letters", input: "Café Set", want: "caf set"},
		{name: "numbered heading", input: "1. Cozy Rain Jacket", want: "1 cozy rain jacket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"Cozy Rain Jacket",
		"  Salt & Pepper  ",
		"a - b",
		"“Quoted” 'Title'",
		"Tabs\tand\nnewlines",
		"<script>alert(1)</script>",
		"Émile's Café — Deluxe",
		"___---___",
		"x !! y ?? z",
	}

	for _, in := range inputs {
		once := Normalize(in)
		if twice := Normalize(once); twice != once {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestNormalize_SymmetricJoin(t *testing.T) {
	t.Parallel()

	heading := "COZY Rain-Jacket!"
	title := "cozy rain-jacket"
	if Normalize(heading) != Normalize(title) {
		t.Errorf("Normalize(%q) = %q, Normalize(%q) = %q, want equal",
			heading, Normalize(heading), title, Normalize(title))
	}
	if Normalize("Rain Jacket") == Normalize("Rain-Jacket") {
		t.Error("hyphen should be part of the key")
	}
}
