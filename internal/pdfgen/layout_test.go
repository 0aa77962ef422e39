package pdfgen

import (
	"fmt"
	"math"
	"testing"
	"time"
)

const a4Height = 841.89 // pt

func TestFormatUSD(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   float64
		want string
	}{
		{12.5, "12.50"},
		{0, "0.00"},
		{1500, "1500.00"},
		{99.999, "100.00"},
		{0.1, "0.10"},
	}
	for _, tt := range tests {
		if got := formatUSD(tt.in); got != tt.want {
			t.Errorf("formatUSD(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got := formatDate(d); got != "07.03.2025" {
		t.Fatalf("formatDate = %q, want 07.03.2025", got)
	}
}

func TestCoverSlotsFixedPositions(t *testing.T) {
	t.Parallel()

	date := time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC)
	valid := date.AddDate(0, 0, 30)

	t.Run("all fields present", func(t *testing.T) {
		t.Parallel()
		slots := coverSlots(
			OfferData{OfferDate: date, ValidUntil: &valid, ClientName: "Ayşe Yılmaz"},
			Content{CoverTitle: "Teklif"},
		)
		if len(slots) != 4 {
			t.Fatalf("got %d slots, want 4", len(slots))
		}
		wantY := []float64{coverTitleY, coverDateY, coverValidY, coverClientY}
		for i, s := range slots {
			if s.Y != wantY[i] {
				t.Errorf("slot %d at y=%v, want %v", i, s.Y, wantY[i])
			}
		}
		if !slots[0].Bold || slots[0].Size != coverTitleSize {
			t.Errorf("title slot not bold/%v: %+v", coverTitleSize, slots[0])
		}
	})

	t.Run("absent fields leave gaps, no reflow", func(t *testing.T) {
		t.Parallel()
		slots := coverSlots(
			OfferData{OfferDate: date, ClientName: "Ayşe Yılmaz"},
			Content{CoverTitle: "Teklif"},
		)
		// validity missing: client keeps its own slot, does not move up
		if len(slots) != 3 {
			t.Fatalf("got %d slots, want 3", len(slots))
		}
		if last := slots[len(slots)-1]; last.Y != coverClientY {
			t.Fatalf("client slot at y=%v, want %v", last.Y, coverClientY)
		}
	})

	t.Run("minimal offer shows title and date only", func(t *testing.T) {
		t.Parallel()
		slots := coverSlots(OfferData{OfferDate: date}, Content{CoverTitle: "Teklif"})
		if len(slots) != 2 {
			t.Fatalf("got %d slots, want 2", len(slots))
		}
		if slots[1].Text != "Tarih: 02.01.2025" {
			t.Fatalf("date slot text = %q", slots[1].Text)
		}
	})

	t.Run("empty title renders nothing in its slot", func(t *testing.T) {
		t.Parallel()
		slots := coverSlots(OfferData{OfferDate: date}, Content{})
		if len(slots) != 1 || slots[0].Y != coverDateY {
			t.Fatalf("want only the date slot, got %+v", slots)
		}
	})
}

func TestFeeTableRowsFiltering(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Label: "A", PriceUSD: 100, IsIncluded: true},
		{Label: "B", PriceUSD: 200, IsIncluded: false},
		{Label: "C", PriceUSD: 300, IsIncluded: true},
	}
	rows := feeTableRows(items, a4Height)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[0].Label != "A" || rows[1].Label != "C" {
		t.Fatalf("rows = %+v, want A then C", rows)
	}
	// excluded B must not leave a hole in the placement
	if rows[0].Y != tableRowStartY || rows[1].Y != tableRowStartY+tableRowStep {
		t.Fatalf("row positions %v/%v, want consecutive steps", rows[0].Y, rows[1].Y)
	}
	if rows[0].Price != "100.00" || rows[1].Price != "300.00" {
		t.Fatalf("prices = %q/%q", rows[0].Price, rows[1].Price)
	}
}

func TestFeeTableRowsOverflowTruncation(t *testing.T) {
	t.Parallel()

	items := make([]Item, 200)
	for i := range items {
		items[i] = Item{Label: fmt.Sprintf("Hizmet %d", i), PriceUSD: float64(i), IsIncluded: true}
	}
	rows := feeTableRows(items, a4Height)

	capacity := int(math.Floor((a4Height-tableRowStartY-tableBottomMargin)/tableRowStep)) + 1
	if len(rows) != capacity {
		t.Fatalf("got %d rows, want page capacity %d", len(rows), capacity)
	}
	last := rows[len(rows)-1]
	if last.Y > a4Height-tableBottomMargin {
		t.Fatalf("last row at y=%v crosses bottom margin", last.Y)
	}
	// truncation keeps the head of the list, in order
	for i, r := range rows {
		if want := fmt.Sprintf("Hizmet %d", i); r.Label != want {
			t.Fatalf("row %d label %q, want %q", i, r.Label, want)
		}
	}
}

func TestFeeTableRowsEmpty(t *testing.T) {
	t.Parallel()

	if rows := feeTableRows(nil, a4Height); len(rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(rows))
	}
	if rows := feeTableRows([]Item{{Label: "X", IsIncluded: false}}, a4Height); len(rows) != 0 {
		t.Fatalf("excluded-only list must yield no rows, got %d", len(rows))
	}
}
