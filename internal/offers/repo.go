package offers

import (
	"errors"

	"github.com/muhsinaltintop/yildiz-quote/internal/models"
	"github.com/muhsinaltintop/yildiz-quote/internal/pdfgen"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// NewItem is one checklist row as submitted by the form.
type NewItem struct {
	Label      string
	PriceUSD   float64
	Quantity   int
	IsIncluded bool
}

// CreateOffer stores the offer and its checklist snapshot in one
// transaction. Unchecked rows are stored too, with IsIncluded=false.
func (r *Repo) CreateOffer(o *models.Offer, items []NewItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for _, it := range items {
			qty := it.Quantity
			if qty < 1 {
				qty = 1
			}
			row := models.OfferItem{
				OfferID:    o.ID,
				Label:      it.Label,
				PriceUSD:   it.PriceUSD,
				Quantity:   qty,
				IsIncluded: it.IsIncluded,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *Repo) GetOffer(id uint) (*models.Offer, error) {
	var o models.Offer
	if err := r.db.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// OfferItems returns the offer's rows in insertion order. The renderer
// relies on this order being stable.
func (r *Repo) OfferItems(offerID uint) ([]models.OfferItem, error) {
	var out []models.OfferItem
	err := r.db.Where(&models.OfferItem{OfferID: offerID}).Order("id").Find(&out).Error
	return out, err
}

// ResolveContent returns the template text for the offer's locale. A
// missing translation falls back to the default cover title with empty
// bodies; the renderer omits empty slots.
func (r *Repo) ResolveContent(templateID uint, locale string) (pdfgen.Content, error) {
	var tr models.TemplateTranslation
	err := r.db.Where(&models.TemplateTranslation{TemplateID: templateID, Locale: locale}).First(&tr).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pdfgen.Content{CoverTitle: pdfgen.DefaultCoverTitle}, nil
		}
		return pdfgen.Content{}, err
	}
	c := pdfgen.Content{
		CoverTitle:  tr.CoverTitle,
		CoverNote:   tr.CoverNote,
		NotesHTML:   tr.NotesHTML,
		PaymentHTML: tr.PaymentInstructionsHTML,
	}
	if c.CoverTitle == "" {
		c.CoverTitle = pdfgen.DefaultCoverTitle
	}
	return c, nil
}
