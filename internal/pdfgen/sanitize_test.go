package pdfgen

import "testing"

func TestFold(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "ascii passthrough",
			in:   "E-2 Visa Application",
			want: "E-2 Visa Application",
		},
		{
			name: "turkish letters folded",
			in:   "İstanbul Şirketi",
			want: "Istanbul Sirketi",
		},
		{
			name: "full alphabet both cases",
			in:   "çÇğĞıİöÖşŞüÜ",
			want: "cCgGiIoOsSuU",
		},
		{
			name: "mixed sentence",
			in:   "Ücret Tablosu - E-2 Vizesi Başvurusu",
			want: "Ucret Tablosu - E-2 Vizesi Basvurusu",
		},
		{
			name: "typographic dash and quotes",
			in:   "Notlar – “önemli”",
			want: `Notlar - "onemli"`,
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Fold(tt.in)
			if got != tt.want {
				t.Fatalf("Fold(%q) = %q, want %q", tt.in, got, tt.want)
			}
			if again := Fold(got); again != got {
				t.Fatalf("Fold not idempotent: %q -> %q", got, again)
			}
		})
	}
}
