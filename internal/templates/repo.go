package templates

import (
	"errors"
	"fmt"
	"time"

	"github.com/muhsinaltintop/yildiz-quote/internal/models"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

// ChecklistItem is one resolved row of a template's default fee checklist:
// the per-template price override wins over the service's default.
type ChecklistItem struct {
	TemplateServiceID uint
	ServiceID         uint
	Label             string
	PriceUSD          float64
	SortOrder         int
	DefaultChecked    bool
}

// GetByCode loads a template, its translation for the locale (nil when the
// locale has none) and the resolved checklist in sort order.
func (r *Repo) GetByCode(code, locale string) (*models.OfferTemplate, *models.TemplateTranslation, []ChecklistItem, error) {
	var tpl models.OfferTemplate
	if err := r.db.Where(&models.OfferTemplate{Code: code}).First(&tpl).Error; err != nil {
		return nil, nil, nil, err
	}

	var tr *models.TemplateTranslation
	var found models.TemplateTranslation
	err := r.db.Where(&models.TemplateTranslation{TemplateID: tpl.ID, Locale: locale}).First(&found).Error
	switch {
	case err == nil:
		tr = &found
	case errors.Is(err, gorm.ErrRecordNotFound):
		// no translation for this locale; caller falls back to defaults
	default:
		return nil, nil, nil, err
	}

	var links []models.TemplateService
	if err := r.db.Where(&models.TemplateService{TemplateID: tpl.ID}).
		Order("sort_order, id").Find(&links).Error; err != nil {
		return nil, nil, nil, err
	}

	items := make([]ChecklistItem, 0, len(links))
	for _, link := range links {
		item := ChecklistItem{
			TemplateServiceID: link.ID,
			ServiceID:         link.ServiceID,
			SortOrder:         link.SortOrder,
			DefaultChecked:    link.DefaultChecked,
		}
		var st models.ServiceTranslation
		err := r.db.Where(&models.ServiceTranslation{ServiceID: link.ServiceID, Locale: locale}).First(&st).Error
		if err == nil {
			item.Label = st.Label
			item.PriceUSD = st.DefaultPriceUSD
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, err
		}
		if link.DefaultPriceUSD != nil {
			item.PriceUSD = *link.DefaultPriceUSD
		}
		items = append(items, item)
	}
	return &tpl, tr, items, nil
}

// ChecklistUpdate is one submitted checklist row. TemplateServiceID == 0
// means a brand-new service.
type ChecklistUpdate struct {
	TemplateServiceID uint
	ServiceID         uint
	Label             string
	PriceUSD          float64
	SortOrder         int
}

// UpsertChecklist rewrites the template's default checklist: existing rows
// get their price/order and label translation updated, new rows create a
// service, its translation and the template link.
func (r *Repo) UpsertChecklist(code, locale string, items []ChecklistUpdate) error {
	var tpl models.OfferTemplate
	if err := r.db.Where(&models.OfferTemplate{Code: code}).First(&tpl).Error; err != nil {
		return err
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		for idx, it := range items {
			sortOrder := it.SortOrder
			if sortOrder == 0 {
				sortOrder = idx + 1
			}

			if it.TemplateServiceID != 0 {
				price := it.PriceUSD
				err := tx.Model(&models.TemplateService{}).
					Where("id = ? AND template_id = ?", it.TemplateServiceID, tpl.ID).
					Updates(map[string]any{"default_price_usd": price, "sort_order": sortOrder}).Error
				if err != nil {
					return err
				}
				if it.ServiceID != 0 {
					if err := upsertTranslation(tx, it.ServiceID, locale, it.Label, it.PriceUSD); err != nil {
						return err
					}
				}
				continue
			}

			// new checklist row
			svc := models.Service{
				Code:     fmt.Sprintf("svc_%s_%d_%d", code, time.Now().UnixMilli(), idx),
				IsActive: true,
			}
			if err := tx.Create(&svc).Error; err != nil {
				return err
			}
			if err := upsertTranslation(tx, svc.ID, locale, it.Label, it.PriceUSD); err != nil {
				return err
			}
			price := it.PriceUSD
			link := models.TemplateService{
				TemplateID:      tpl.ID,
				ServiceID:       svc.ID,
				DefaultPriceUSD: &price,
				SortOrder:       sortOrder,
				DefaultChecked:  true,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertTranslation(tx *gorm.DB, serviceID uint, locale, label string, price float64) error {
	var st models.ServiceTranslation
	err := tx.Where(&models.ServiceTranslation{ServiceID: serviceID, Locale: locale}).First(&st).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			st = models.ServiceTranslation{ServiceID: serviceID, Locale: locale, Label: label, DefaultPriceUSD: price}
			return tx.Create(&st).Error
		}
		return err
	}
	st.Label = label
	st.DefaultPriceUSD = price
	return tx.Save(&st).Error
}
