package templates

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/muhsinaltintop/yildiz-quote/internal/logs"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

const defaultLocale = "tr"

type HTTP struct{ repo *Repo }

func NewHTTP(r *Repo) *HTTP { return &HTTP{repo: r} }

func (h *HTTP) RegisterRoutes(r *mux.Router) {
	api := r.PathPrefix("/api/v1/templates").Subrouter()

	// GET /api/v1/templates/{code}?locale=tr
	api.HandleFunc("/{code}", h.getTemplate).Methods(http.MethodGet)
	// POST /api/v1/templates/{code}/services  { locale, items }
	api.HandleFunc("/{code}/services", h.saveChecklist).Methods(http.MethodPost)
}

func (h *HTTP) getTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	code := mux.Vars(r)["code"]
	locale := r.URL.Query().Get("locale")
	if locale == "" {
		locale = defaultLocale
	}

	tpl, tr, items, err := h.repo.GetByCode(code, locale)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	type itemOut struct {
		TemplateServiceID uint    `json:"templateServiceId"`
		ServiceID         uint    `json:"serviceId"`
		Label             string  `json:"label"`
		PriceUSD          float64 `json:"priceUsd"`
		DefaultChecked    bool    `json:"defaultChecked"`
	}
	outItems := make([]itemOut, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, itemOut{
			TemplateServiceID: it.TemplateServiceID,
			ServiceID:         it.ServiceID,
			Label:             it.Label,
			PriceUSD:          it.PriceUSD,
			DefaultChecked:    it.DefaultChecked,
		})
	}

	tplOut := map[string]any{
		"id":                  tpl.ID,
		"code":                tpl.Code,
		"defaultValidityDays": tpl.DefaultValidityDays,
	}
	if tr != nil {
		tplOut["name"] = tr.Name
		tplOut["coverTitle"] = tr.CoverTitle
		tplOut["coverNote"] = tr.CoverNote
		tplOut["notesHtml"] = tr.NotesHTML
		tplOut["paymentInstructionsHtml"] = tr.PaymentInstructionsHTML
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"template": tplOut,
		"items":    outItems,
	})
}

func (h *HTTP) saveChecklist(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	code := mux.Vars(r)["code"]

	var in struct {
		Locale string `json:"locale"`
		Items  []struct {
			TemplateServiceID uint    `json:"templateServiceId"`
			ServiceID         uint    `json:"serviceId"`
			Label             string  `json:"label"`
			PriceUSD          float64 `json:"priceUsd"`
			SortOrder         int     `json:"sortOrder"`
		} `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}
	if len(in.Items) == 0 {
		http.Error(w, "items must not be empty", http.StatusBadRequest)
		return
	}
	if in.Locale == "" {
		in.Locale = defaultLocale
	}

	updates := make([]ChecklistUpdate, 0, len(in.Items))
	for _, it := range in.Items {
		updates = append(updates, ChecklistUpdate{
			TemplateServiceID: it.TemplateServiceID,
			ServiceID:         it.ServiceID,
			Label:             it.Label,
			PriceUSD:          it.PriceUSD,
			SortOrder:         it.SortOrder,
		})
	}

	if err := h.repo.UpsertChecklist(code, in.Locale, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "template not found", http.StatusNotFound)
			return
		}
		logs.Logger.Errorf("save checklist for %s: %v", code, err)
		http.Error(w, "failed to save checklist", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": true})
}
