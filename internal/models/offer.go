package models

import (
	"time"

	"gorm.io/gorm"
)

type Offer struct {
	gorm.Model
	TemplateID  uint      `gorm:"index"`
	OfferDate   time.Time `gorm:"column:offer_date"`
	ValidUntil  *time.Time
	Language    string `gorm:"size:8"`
	ClientName  string
	ClientEmail string
}

// OfferItem — a snapshot of one checklist row at offer-creation time.
// Unchecked rows are kept (IsIncluded=false) so the form can be re-opened.
type OfferItem struct {
	gorm.Model
	OfferID    uint   `gorm:"index"`
	Label      string
	PriceUSD   float64 `gorm:"column:price_usd"`
	Quantity   int     `gorm:"default:1"`
	IsIncluded bool    `gorm:"column:is_included"`
}
