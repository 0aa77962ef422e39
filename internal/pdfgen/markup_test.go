package pdfgen

import "testing"

func TestStripMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "plain text untouched",
			in:   "Hello world",
			want: "Hello world",
		},
		{
			name: "tags removed and whitespace collapsed",
			in:   "<b>Hello</b>  world",
			want: "Hello world",
		},
		{
			name: "nested formatting",
			in:   "<p>Bir <strong>önemli</strong> not</p>",
			want: "Bir önemli not",
		},
		{
			name: "tag with attributes",
			in:   `<a href="https://example.com">link</a> text`,
			want: "link text",
		},
		{
			name: "newlines and tabs collapse",
			in:   "satır bir\n\n\tsatır iki",
			want: "satır bir satır iki",
		},
		{
			name: "leading and trailing space trimmed",
			in:   "  <p>metin</p>  ",
			want: "metin",
		},
		{
			name: "unterminated tag stays literal",
			in:   "a < b ve c",
			want: "a < b ve c",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "only markup",
			in:   "<p></p><br/>",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripMarkup(tt.in); got != tt.want {
				t.Fatalf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestStripMarkupWhitespaceIdempotent(t *testing.T) {
	t.Parallel()

	in := "<p>bir   iki</p>\t<b>üç</b>"
	once := StripMarkup(in)
	if twice := StripMarkup(once); twice != once {
		t.Fatalf("whitespace collapse not idempotent: %q -> %q", once, twice)
	}
}
