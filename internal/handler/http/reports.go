// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/Srejith/namemybaby/internal/utils"
	"github.com/Srejith/namemybaby/models"
)

func (h *Handler) listReports(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listReports")
		return
	}

	reports, err := h.services.ReportService.List(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.listReports")
		return
	}

	utils.WriteJSON(w, reports, http.StatusOK)
}

func (h *Handler) saveReport(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.saveReport")
		return
	}

	var req models.SaveReportRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.saveReport")
		return
	}

	report, err := h.services.ReportService.Save(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "*Handler.saveReport")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) generateReport(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.generateReport")
		return
	}

	var req models.GenerateReportRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.generateReport")
		return
	}

	report, err := h.services.ReportService.Generate(r.Context(), userID, req.Name)
	if err != nil {
		writeError(w, r, err, "*Handler.generateReport")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) getReportByName(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getReportByName")
		return
	}

	// chi matches on the raw path when it holds escapes
	name, err := url.PathUnescape(chi.URLParam(r, "name"))
	if err != nil {
		utils.WriteError(w, "invalid name", http.StatusBadRequest)
		return
	}

	report, err := h.services.ReportService.GetByName(r.Context(), userID, name)
	if err != nil {
		writeError(w, r, err, "*Handler.getReportByName")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) getReport(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getReport")
		return
	}

	report, err := h.services.ReportService.GetByID(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, "*Handler.getReport")
		return
	}

	utils.WriteJSON(w, report, http.StatusOK)
}

func (h *Handler) deleteReport(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteReport")
		return
	}

	if err = h.services.ReportService.Delete(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "*Handler.deleteReport")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
