package pdfgen

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func pageCount(t *testing.T, pdf []byte) int {
	t.Helper()
	// the pages tree carries a single /Count entry
	idx := bytes.Index(pdf, []byte("/Count "))
	if idx < 0 {
		t.Fatal("no /Count entry in output")
	}
	n := 0
	for _, c := range pdf[idx+len("/Count "):] {
		if c < '0' || c > '9' {
			break
		}
		n = n*10 + int(c-'0')
	}
	return n
}

func TestRenderMinimalOffer(t *testing.T) {
	t.Parallel()

	r := New(ASCIIFolded{})
	out, err := r.Render(
		OfferData{ID: 1, OfferDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
		Content{CoverTitle: "Teklif"},
		nil,
	)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF, starts with %q", out[:8])
	}
	if got := pageCount(t, out); got != 4 {
		t.Fatalf("page count = %d, want 4", got)
	}
}

func TestRenderFullOffer(t *testing.T) {
	t.Parallel()

	valid := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	items := []Item{
		{Label: "Başvuru dosyasının hazırlanması", PriceUSD: 2500, Quantity: 1, IsIncluded: true},
		{Label: "Çeviri hizmeti", PriceUSD: 350.5, Quantity: 1, IsIncluded: false},
		{Label: "Konsolosluk randevusu takibi", PriceUSD: 0, Quantity: 1, IsIncluded: true},
	}
	r := New(ASCIIFolded{})
	out, err := r.Render(
		OfferData{
			ID:         42,
			OfferDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			ValidUntil: &valid,
			ClientName: "Ayşe Yılmaz",
		},
		Content{
			CoverTitle:  "E-2 Statü Değişikliği Teklifi",
			CoverNote:   "Bu teklif yalnızca bilgilendirme amaçlıdır.",
			NotesHTML:   "<p>Başvuru süreci <strong>yaklaşık</strong> 90 gün sürer.</p>",
			PaymentHTML: "<p>Ödeme <b>USD</b> olarak yapılır.</p>",
		},
		items,
	)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := pageCount(t, out); got != 4 {
		t.Fatalf("page count = %d, want 4", got)
	}
}

func TestRenderLongNotesStillFourPages(t *testing.T) {
	t.Parallel()

	long := bytes.Repeat([]byte("<p>çok uzun bir not paragrafı</p> "), 400)
	r := New(ASCIIFolded{})
	out, err := r.Render(
		OfferData{ID: 7, OfferDate: time.Now()},
		Content{CoverTitle: "Teklif", NotesHTML: string(long), PaymentHTML: string(long)},
		nil,
	)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	// overflow truncates, it never allocates continuation pages
	if got := pageCount(t, out); got != 4 {
		t.Fatalf("page count = %d, want 4", got)
	}
}

func TestRenderEmbeddedFontsMissing(t *testing.T) {
	t.Parallel()

	cache := NewFontCache(filepath.Join(t.TempDir(), "missing"))
	r := New(EmbeddedUnicode{Fonts: cache})
	_, err := r.Render(OfferData{ID: 1, OfferDate: time.Now()}, Content{}, nil)
	if !errors.Is(err, ErrFontUnavailable) {
		t.Fatalf("want ErrFontUnavailable, got %v", err)
	}
}
