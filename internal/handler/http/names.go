// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Srejith/namemybaby/internal/utils"
	"github.com/Srejith/namemybaby/models"
)

// bucketFromRequest accepts a bucket key or its table name.
func bucketFromRequest(r *http.Request) (models.Bucket, error) {
	return models.ParseBucket(chi.URLParam(r, "bucket"))
}

func (h *Handler) listNames(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.listNames")
		return
	}

	bucket, err := bucketFromRequest(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.services.NameService.List(r.Context(), bucket, userID)
	if err != nil {
		writeError(w, r, err, "*Handler.listNames")
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) addName(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.addName")
		return
	}

	bucket, err := bucketFromRequest(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var item models.NameItem
	if err = decodeJSON(r, &item); err != nil {
		writeError(w, r, err, "*Handler.addName")
		return
	}

	added, err := h.services.NameService.Add(r.Context(), bucket, userID, item)
	if err != nil {
		writeError(w, r, err, "*Handler.addName")
		return
	}

	utils.WriteJSON(w, added, http.StatusCreated)
}

func (h *Handler) addNamesBatch(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.addNamesBatch")
		return
	}

	bucket, err := bucketFromRequest(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req models.BatchAddRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.addNamesBatch")
		return
	}

	result, err := h.services.NameService.AddBatch(r.Context(), bucket, userID, req)
	if err != nil {
		writeError(w, r, err, "*Handler.addNamesBatch")
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) deleteName(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.deleteName")
		return
	}

	bucket, err := bucketFromRequest(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err = h.services.NameService.Delete(r.Context(), bucket, userID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err, "*Handler.deleteName")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) moveName(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.moveName")
		return
	}

	var req models.MoveRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.moveName")
		return
	}
	req.UserID = userID
	req.From = normalizeBucket(req.From)
	req.To = normalizeBucket(req.To)

	moved, err := h.services.NameService.Move(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "*Handler.moveName")
		return
	}

	utils.WriteJSON(w, moved, http.StatusOK)
}

// normalizeBucket maps a table name to its bucket. Unknown values are kept
// for the validator to reject.
func normalizeBucket(b models.Bucket) models.Bucket {
	if parsed, err := models.ParseBucket(string(b)); err == nil {
		return parsed
	}
	return b
}
