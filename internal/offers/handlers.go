package offers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/muhsinaltintop/yildiz-quote/internal/logs"
	"github.com/muhsinaltintop/yildiz-quote/internal/models"
	"github.com/muhsinaltintop/yildiz-quote/internal/pdfgen"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type HTTP struct {
	repo *Repo
	rend *pdfgen.Renderer
}

func NewHTTP(repo *Repo, rend *pdfgen.Renderer) *HTTP {
	return &HTTP{repo: repo, rend: rend}
}

func (h *HTTP) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api/v1/offers").Subrouter()

	// POST /api/v1/offers  { templateId, language, clientName, ..., items }
	api.HandleFunc("", h.createOffer).Methods(http.MethodPost)
	// GET /api/v1/offers/{id}
	api.HandleFunc("/{id}", h.getOffer).Methods(http.MethodGet)
	// GET /api/v1/offers/{id}/pdf
	api.HandleFunc("/{id}/pdf", h.offerPDF).Methods(http.MethodGet)
}

type itemIn struct {
	Label      string  `json:"label"`
	PriceUSD   float64 `json:"priceUsd"`
	Quantity   int     `json:"quantity"`
	IsIncluded bool    `json:"isIncluded"`
}

func (h *HTTP) createOffer(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var in struct {
		TemplateID  uint     `json:"templateId"`
		Language    string   `json:"language"`
		ClientName  string   `json:"clientName"`
		ClientEmail string   `json:"clientEmail"`
		OfferDate   string   `json:"offerDate"`
		ValidUntil  string   `json:"validUntil"`
		Items       []itemIn `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if in.TemplateID == 0 || in.Language == "" {
		http.Error(w, "templateId and language are required", http.StatusBadRequest)
		return
	}

	offerDate := time.Now()
	if in.OfferDate != "" {
		d, err := time.Parse(dateLayout, in.OfferDate)
		if err != nil {
			http.Error(w, "offerDate must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		offerDate = d
	}
	var validUntil *time.Time
	if in.ValidUntil != "" {
		d, err := time.Parse(dateLayout, in.ValidUntil)
		if err != nil {
			http.Error(w, "validUntil must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}
		validUntil = &d
	}

	o := models.Offer{
		TemplateID:  in.TemplateID,
		OfferDate:   offerDate,
		ValidUntil:  validUntil,
		Language:    in.Language,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
	}
	items := make([]NewItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, NewItem{
			Label:      it.Label,
			PriceUSD:   it.PriceUSD,
			Quantity:   it.Quantity,
			IsIncluded: it.IsIncluded,
		})
	}
	if err := h.repo.CreateOffer(&o, items); err != nil {
		logs.Logger.Errorf("create offer: %v", err)
		http.Error(w, "failed to create offer", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":      o.ID,
		"message": "Offer created successfully",
	})
}

func (h *HTTP) getOffer(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, ok := parseID(w, r)
	if !ok {
		return
	}
	o, err := h.repo.GetOffer(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "offer not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	items, err := h.repo.OfferItems(o.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type itemOut struct {
		Label      string  `json:"label"`
		PriceUSD   float64 `json:"priceUsd"`
		Quantity   int     `json:"quantity"`
		IsIncluded bool    `json:"isIncluded"`
	}
	out := make([]itemOut, 0, len(items))
	for _, it := range items {
		out = append(out, itemOut{Label: it.Label, PriceUSD: it.PriceUSD, Quantity: it.Quantity, IsIncluded: it.IsIncluded})
	}
	var validUntil string
	if o.ValidUntil != nil {
		validUntil = o.ValidUntil.Format(dateLayout)
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":          o.ID,
		"templateId":  o.TemplateID,
		"language":    o.Language,
		"clientName":  o.ClientName,
		"clientEmail": o.ClientEmail,
		"offerDate":   o.OfferDate.Format(dateLayout),
		"validUntil":  validUntil,
		"items":       out,
	})
}

func (h *HTTP) offerPDF(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}
	o, err := h.repo.GetOffer(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "offer not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	content, err := h.repo.ResolveContent(o.TemplateID, o.Language)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	rows, err := h.repo.OfferItems(o.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	items := make([]pdfgen.Item, 0, len(rows))
	for _, it := range rows {
		items = append(items, pdfgen.Item{
			Label:      it.Label,
			PriceUSD:   it.PriceUSD,
			Quantity:   it.Quantity,
			IsIncluded: it.IsIncluded,
		})
	}
	data := pdfgen.OfferData{
		ID:         o.ID,
		OfferDate:  o.OfferDate,
		ValidUntil: o.ValidUntil,
		ClientName: o.ClientName,
	}

	out, err := h.rend.Render(data, content, items)
	if err != nil {
		logs.Logger.Errorf("render offer %d: %v", o.ID, err)
		http.Error(w, "failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="offer-%d.pdf"`, o.ID))
	w.Header().Set("Content-Length", strconv.Itoa(len(out)))
	_, _ = w.Write(out)
}

func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	idU, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || idU == 0 {
		http.Error(w, "invalid offer id", http.StatusBadRequest)
		return 0, false
	}
	return uint(idU), true
}
