// Package handler exposes the order tracker over HTTP. Uploads arrive as
// multipart forms, everything else is JSON.
package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"delivery-tracker/internal/config"
	"delivery-tracker/internal/fileio"
	"delivery-tracker/internal/orders/model"
	"delivery-tracker/internal/orders/notify"
	"delivery-tracker/internal/orders/service"
)

type Handler struct {
	svc *service.Service
	cfg config.Config
	log zerolog.Logger
}

func New(svc *service.Service, cfg config.Config, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, cfg: cfg, log: log}
}

func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Import ingests an uploaded workbook. Form fields: file (required), sheet
// (optional sheet name), mode (replace|append, default replace).
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	if err := r.ParseMultipartForm(int64(h.cfg.MaxUploadMB) << 20); err != nil {
		writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
		return
	}
	defer file.Close()

	appendMode := r.FormValue("mode") == "append" || toBool(r.FormValue("append"), false)
	built, err := h.svc.ImportWorkbook(r.Context(), file, header.Filename, r.FormValue("sheet"), appendMode)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	h.log.Info().
		Str("rid", requestID(r)).
		Str("file", header.Filename).
		Int("imported", len(built)).
		Dur("elapsed", time.Since(start)).
		Msg("import request done")
	writeJSON(w, http.StatusOK, map[string]any{"imported": len(built), "orders": built})
}

// ImportSheets lists the worksheet names of an uploaded workbook so the
// operator can pick one before importing.
func (h *Handler) ImportSheets(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(int64(h.cfg.MaxUploadMB) << 20); err != nil {
		writeError(w, http.StatusBadRequest, "bad multipart form: "+err.Error())
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file: "+err.Error())
		return
	}
	defer file.Close()

	names, err := fileio.SheetNames(file, header.Filename)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"sheets": names})
}

func (h *Handler) Orders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.svc.Orders(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var draft service.ManualOrder
	if err := decodeBody(r, &draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	o, err := h.svc.AddManualOrder(r.Context(), draft)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) EditOrder(w http.ResponseWriter, r *http.Request) {
	var patch service.OrderPatch
	if err := decodeBody(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	o, err := h.svc.EditOrder(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status     model.Status `json:"status"`
		Reason     string       `json:"reason"`
		PaidAmount float64      `json:"paidAmount"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if !body.Status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status: "+string(body.Status))
		return
	}
	o, err := h.svc.UpdateStatus(r.Context(), chi.URLParam(r, "id"), body.Status, body.Reason, body.PaidAmount)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) BulkStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs    []string     `json:"ids"`
		Status model.Status `json:"status"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if !body.Status.Valid() {
		writeError(w, http.StatusBadRequest, "unknown status: "+string(body.Status))
		return
	}
	if err := h.svc.BulkUpdateStatus(r.Context(), body.IDs, body.Status); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": len(body.IDs)})
}

func (h *Handler) BulkCompany(w http.ResponseWriter, r *http.Request) {
	var body struct {
		IDs     []string `json:"ids"`
		Company string   `json:"company"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if err := h.svc.BulkUpdateCompany(r.Context(), body.IDs, body.Company); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"updated": len(body.IDs)})
}

func (h *Handler) MarkContacted(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.MarkContacted(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) MarkManagerContacted(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Manager int `json:"manager"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if body.Manager != 1 && body.Manager != 2 {
		writeError(w, http.StatusBadRequest, "manager must be 1 or 2")
		return
	}
	o, err := h.svc.MarkManagerContacted(r.Context(), chi.URLParam(r, "id"), body.Manager)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) SetImage(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Image string `json:"image"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	o, err := h.svc.SetOrderImage(r.Context(), chi.URLParam(r, "id"), body.Image)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) DeleteImage(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.DeleteOrderImage(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) ClearImages(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearImages(r.Context()); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}

// CustomerMessage renders the delivery notice for one order, both as plain
// text and as a ready-to-open wa.me link.
func (h *Handler) CustomerMessage(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Order(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	settings, err := h.svc.Settings(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	msg := notify.CustomerMessage(o, settings.DeliveryDate)
	writeJSON(w, http.StatusOK, map[string]string{
		"message": msg,
		"link":    notify.CustomerLink(o, settings.DeliveryDate),
	})
}

func (h *Handler) ManagerReport(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Order(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	phone, err := h.managerPhone(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": notify.ManagerReport(o),
		"link":    notify.ManagerReportLink(o, phone),
	})
}

func (h *Handler) PermissionRequest(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Order(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	phone, err := h.managerPhone(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message": notify.PermissionRequest(o),
		"link":    notify.PermissionRequestLink(o, phone),
	})
}

func (h *Handler) Archives(w http.ResponseWriter, r *http.Request) {
	archives, err := h.svc.Archives(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	if archives == nil {
		archives = []model.ArchiveRound{}
	}
	writeJSON(w, http.StatusOK, archives)
}

func (h *Handler) ArchiveRound(w http.ResponseWriter, r *http.Request) {
	round, err := h.svc.ArchiveCurrentRound(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, round)
}

func (h *Handler) DeleteArchive(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteArchive(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) Settings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.svc.Settings(r.Context())
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var settings model.Settings
	if err := decodeBody(r, &settings); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body: "+err.Error())
		return
	}
	if err := h.svc.SaveSettings(r.Context(), settings); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, settings)
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Reset(r.Context()); err != nil {
		h.respondError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// managerPhone resolves the target manager from ?manager=1|2 using the
// stored settings.
func (h *Handler) managerPhone(r *http.Request) (string, error) {
	settings, err := h.svc.Settings(r.Context())
	if err != nil {
		return "", err
	}
	if r.URL.Query().Get("manager") == "2" {
		return settings.SecondaryManagerPhone, nil
	}
	return settings.ManagerPhone, nil
}
