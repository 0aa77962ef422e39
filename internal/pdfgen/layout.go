package pdfgen

import (
	"strconv"
	"time"
)

// Page geometry, A4 portrait in points. Cover fields sit in fixed vertical
// slots measured from the page top; an absent optional field leaves its
// slot empty, later fields do not move up.
const (
	leftMargin  = 50.0
	rightMargin = 50.0
	// left + right margin; content width = pageW - contentInset
	contentInset = 100.0

	coverTitleY    = 100.0
	coverTitleSize = 18.0
	coverDateY     = 130.0
	coverNoteY     = 160.0
	coverNoteStep  = 14.0
	coverValidY    = 190.0
	coverClientY   = 220.0

	tableHeadingY     = 80.0
	tableHeaderY      = 120.0
	tableRowStartY    = 140.0
	tableRowStep      = 18.0
	tableBottomMargin = 80.0

	bodyHeadingY     = 80.0
	bodyStartY       = 110.0
	bodyLineStep     = 14.0
	bodyBottomMargin = 50.0

	headingSize = 16.0
	labelSize   = 12.0
	bodySize    = 11.0
)

// DefaultCoverTitle is the data layer's fallback when a template has no
// translation for the requested locale.
const DefaultCoverTitle = "Teklif"

// Section headings and cover field prefixes, as authored for the source
// region. In ASCII-folded mode the encoding policy folds the diacritics.
const (
	coverDatePrefix     = "Tarih: "
	validUntilPrefix    = "Geçerlilik Tarihi: "
	clientPrefix        = "Müşteri: "
	feeTableHeading     = "Ücret Tablosu - E-2 Vizesi Başvurusu"
	serviceColumnHeader = "Hizmet"
	priceColumnHeader   = "Ücret (USD)"
	notesHeading        = "Notlar – E-2 Anlaşmalı Yatırımcı Statüsü"
	paymentHeading      = "Ödeme Talimatı"
)

// formatDate renders dates the tr-TR way: day.month.year.
func formatDate(t time.Time) string { return t.Format("02.01.2006") }

// formatUSD renders a price with exactly two decimal digits.
func formatUSD(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }

type textSlot struct {
	Text string
	Y    float64
	Size float64
	Bold bool
}

// coverSlots lists the cover fields that are present, each at its fixed
// offset. The cover note is handled separately (it word-wraps).
func coverSlots(offer OfferData, content Content) []textSlot {
	slots := make([]textSlot, 0, 4)
	if content.CoverTitle != "" {
		slots = append(slots, textSlot{Text: content.CoverTitle, Y: coverTitleY, Size: coverTitleSize, Bold: true})
	}
	slots = append(slots, textSlot{Text: coverDatePrefix + formatDate(offer.OfferDate), Y: coverDateY, Size: labelSize})
	if offer.ValidUntil != nil {
		slots = append(slots, textSlot{Text: validUntilPrefix + formatDate(*offer.ValidUntil), Y: coverValidY, Size: bodySize})
	}
	if offer.ClientName != "" {
		slots = append(slots, textSlot{Text: clientPrefix + offer.ClientName, Y: coverClientY, Size: bodySize})
	}
	return slots
}

type feeRow struct {
	Label string
	Price string
	Y     float64
}

// feeTableRows places the included items top to bottom at a fixed row step.
// Filtering happens before placement, so an excluded item never shifts the
// rows below it. Rows that would land past the bottom margin are dropped.
func feeTableRows(items []Item, pageH float64) []feeRow {
	rows := make([]feeRow, 0, len(items))
	y := tableRowStartY
	for _, it := range items {
		if !it.IsIncluded {
			continue
		}
		if y > pageH-tableBottomMargin {
			break
		}
		rows = append(rows, feeRow{Label: it.Label, Price: formatUSD(it.PriceUSD), Y: y})
		y += tableRowStep
	}
	return rows
}
