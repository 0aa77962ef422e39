// Package pdfgen renders an offer as a fixed, four-page A4 PDF: cover, fee
// table, notes, payment instructions. Layout is deliberately static — every
// section has its own page, content that would overrun a page is truncated,
// never overflowed onto a continuation page.
package pdfgen

import (
	"bytes"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// OfferData is the read-only offer record the renderer consumes. The data
// layer resolves it; empty optional fields simply render nothing.
type OfferData struct {
	ID         uint
	OfferDate  time.Time
	ValidUntil *time.Time
	ClientName string
}

// Content is the resolved per-locale template text. Notes and payment
// instructions carry inline markup and are stripped before layout.
type Content struct {
	CoverTitle  string
	CoverNote   string
	NotesHTML   string
	PaymentHTML string
}

type Item struct {
	Label      string
	PriceUSD   float64
	Quantity   int
	IsIncluded bool
}

// EncodingPolicy decides how text reaches the page: through an embedded
// UTF-8 font with full Turkish coverage, or through the built-in Helvetica
// family with diacritics folded to ASCII. Selected once at configuration
// time; the renderer itself is mode-agnostic.
type EncodingPolicy interface {
	// Install registers the policy's fonts with a fresh document.
	Install(pdf *gofpdf.Fpdf) error
	// Family names the font family Install made available.
	Family() string
	// Encode rewrites text so the installed family can draw it.
	Encode(s string) string
}

const embeddedFamily = "OpenSans"

// EmbeddedUnicode embeds OpenSans from the font cache into every document.
type EmbeddedUnicode struct {
	Fonts *FontCache
}

func (p EmbeddedUnicode) Install(pdf *gofpdf.Fpdf) error {
	set, err := p.Fonts.Get()
	if err != nil {
		return err
	}
	pdf.AddUTF8FontFromBytes(embeddedFamily, "", set.Regular)
	pdf.AddUTF8FontFromBytes(embeddedFamily, "B", set.Bold)
	return nil
}

func (p EmbeddedUnicode) Family() string         { return embeddedFamily }
func (p EmbeddedUnicode) Encode(s string) string { return s }

// ASCIIFolded runs without font assets: built-in Helvetica, Turkish
// characters folded to their ASCII base.
type ASCIIFolded struct{}

func (ASCIIFolded) Install(*gofpdf.Fpdf) error { return nil }
func (ASCIIFolded) Family() string             { return "Helvetica" }
func (ASCIIFolded) Encode(s string) string     { return Fold(s) }

type Renderer struct {
	policy EncodingPolicy
}

func New(policy EncodingPolicy) *Renderer { return &Renderer{policy: policy} }

// Render produces the complete PDF or an error, never a partial document.
// Safe for concurrent use; each call builds its own document.
func (r *Renderer) Render(offer OfferData, content Content, items []Item) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	if err := r.policy.Install(pdf); err != nil {
		return nil, err
	}
	family := r.policy.Family()
	enc := r.policy.Encode
	pageW, pageH := pdf.GetPageSize()

	// 1) Cover
	pdf.AddPage()
	for _, slot := range coverSlots(offer, content) {
		style := ""
		if slot.Bold {
			style = "B"
		}
		pdf.SetFont(family, style, slot.Size)
		pdf.Text(leftMargin, slot.Y, enc(slot.Text))
	}
	if note := enc(collapseSpace(content.CoverNote)); note != "" {
		pdf.SetFont(family, "", bodySize)
		y := coverNoteY
		for _, line := range Wrap(note, pageW-contentInset, pdf.GetStringWidth) {
			pdf.Text(leftMargin, y, line)
			y += coverNoteStep
		}
	}

	// 2) Fee table
	pdf.AddPage()
	pdf.SetFont(family, "B", headingSize)
	pdf.Text(leftMargin, tableHeadingY, enc(feeTableHeading))
	pdf.SetFont(family, "B", labelSize)
	pdf.Text(leftMargin, tableHeaderY, enc(serviceColumnHeader))
	priceHeader := enc(priceColumnHeader)
	pdf.Text(pageW-rightMargin-pdf.GetStringWidth(priceHeader), tableHeaderY, priceHeader)
	pdf.SetFont(family, "", bodySize)
	for _, row := range feeTableRows(items, pageH) {
		pdf.Text(leftMargin, row.Y, enc(row.Label))
		pdf.Text(pageW-rightMargin-pdf.GetStringWidth(row.Price), row.Y, row.Price)
	}

	// 3) Notes, 4) Payment instructions — same structure, different text
	r.bodyPage(pdf, family, notesHeading, content.NotesHTML, pageW, pageH)
	r.bodyPage(pdf, family, paymentHeading, content.PaymentHTML, pageW, pageH)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *Renderer) bodyPage(pdf *gofpdf.Fpdf, family, heading, markup string, pageW, pageH float64) {
	enc := r.policy.Encode

	pdf.AddPage()
	pdf.SetFont(family, "B", headingSize)
	pdf.Text(leftMargin, bodyHeadingY, enc(heading))

	plain := enc(StripMarkup(markup))
	if plain == "" {
		return
	}
	pdf.SetFont(family, "", bodySize)
	y := bodyStartY
	for _, line := range Wrap(plain, pageW-contentInset, pdf.GetStringWidth) {
		if y > pageH-bodyBottomMargin {
			break
		}
		pdf.Text(leftMargin, y, line)
		y += bodyLineStep
	}
}
