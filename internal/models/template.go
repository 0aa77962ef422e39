package models

import "gorm.io/gorm"

// OfferTemplate — reusable offer skeleton (e.g. e2_status_change).
// All display text lives in TemplateTranslation, per locale.
type OfferTemplate struct {
	gorm.Model
	Code                string `gorm:"uniqueIndex;size:64"`
	DefaultValidityDays int    `gorm:"default:30"`
	IsActive            bool   `gorm:"default:true"`
}

type TemplateTranslation struct {
	gorm.Model
	TemplateID              uint   `gorm:"index:idx_tpl_locale,priority:1"`
	Locale                  string `gorm:"size:8;index:idx_tpl_locale,priority:2"`
	Name                    string
	CoverTitle              string
	CoverNote               string `gorm:"type:text"`
	NotesHTML               string `gorm:"column:notes_html;type:text"`
	PaymentInstructionsHTML string `gorm:"column:payment_instructions_html;type:text"`
}

type Service struct {
	gorm.Model
	Code     string `gorm:"uniqueIndex;size:64"`
	IsActive bool   `gorm:"default:true"`
}

type ServiceTranslation struct {
	gorm.Model
	ServiceID       uint   `gorm:"index:idx_svc_locale,priority:1"`
	Locale          string `gorm:"size:8;index:idx_svc_locale,priority:2"`
	Label           string
	DefaultPriceUSD float64 `gorm:"column:default_price_usd"`
}

// TemplateService — one row of a template's default fee checklist.
// DefaultPriceUSD, when set, overrides the service translation's price.
type TemplateService struct {
	gorm.Model
	TemplateID      uint     `gorm:"index"`
	ServiceID       uint     `gorm:"index"`
	DefaultPriceUSD *float64 `gorm:"column:default_price_usd"`
	SortOrder       int      `gorm:"default:100;index:idx_tplsvc_order"`
	DefaultChecked  bool     `gorm:"default:true"`
}
