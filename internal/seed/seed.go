package seed

import (
	"errors"

	"github.com/muhsinaltintop/yildiz-quote/internal/models"

	"gorm.io/gorm"
)

const defaultTemplateCode = "e2_status_change"

// EnsureDefaultTemplate bootstraps an empty database with the E-2 status
// change template, its Turkish translation and a starter fee checklist, so
// the offer form works on first boot. Does nothing when any template exists.
func EnsureDefaultTemplate(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	var count int64
	if err := db.Model(&models.OfferTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		tpl := models.OfferTemplate{Code: defaultTemplateCode, DefaultValidityDays: 30, IsActive: true}
		if err := tx.Create(&tpl).Error; err != nil {
			return err
		}

		tr := models.TemplateTranslation{
			TemplateID: tpl.ID,
			Locale:     "tr",
			Name:       "E-2 Statü Değişikliği",
			CoverTitle: "E-2 Statü Değişikliği Teklifi",
			CoverNote:  "Bu teklif aşağıda listelenen hizmetleri kapsar.",
			NotesHTML: "<p>Başvuru süreci, belgelerin eksiksiz teslimini takiben " +
				"<strong>yaklaşık 90 gün</strong> sürmektedir. Resmi harçlar teklife dahil değildir.</p>",
			PaymentInstructionsHTML: "<p>Ödemeler <b>USD</b> olarak, fatura tarihinden itibaren " +
				"7 gün içinde banka havalesi ile yapılır.</p>",
		}
		if err := tx.Create(&tr).Error; err != nil {
			return err
		}

		starter := []struct {
			code  string
			label string
			price float64
		}{
			{"e2_petition_prep", "Başvuru dosyasının hazırlanması", 3500},
			{"e2_business_plan", "İş planı hazırlanması", 1500},
			{"e2_consulate_followup", "Konsolosluk randevusu takibi", 500},
		}
		for i, s := range starter {
			svc := models.Service{Code: s.code, IsActive: true}
			if err := tx.Create(&svc).Error; err != nil {
				return err
			}
			st := models.ServiceTranslation{ServiceID: svc.ID, Locale: "tr", Label: s.label, DefaultPriceUSD: s.price}
			if err := tx.Create(&st).Error; err != nil {
				return err
			}
			link := models.TemplateService{TemplateID: tpl.ID, ServiceID: svc.ID, SortOrder: i + 1, DefaultChecked: true}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
