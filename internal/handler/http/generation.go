// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Srejith/namemybaby/internal/utils"
	"github.com/Srejith/namemybaby/models"
)

// chat proxies a raw message to the flow service.
func (h *Handler) chat(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.chat")
		return
	}

	var req models.ChatRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.chat")
		return
	}

	resp, err := h.services.GenerationService.Chat(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "*Handler.chat")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) generateNames(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.generateNames")
		return
	}

	var req models.GenerateNamesRequest
	if err = decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.generateNames")
		return
	}

	resp, err := h.services.GenerationService.RequestNames(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "*Handler.generateNames")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) generateNamesFromPreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.generateNamesFromPreferences")
		return
	}

	resp, err := h.services.GenerationService.RequestNamesFromPreferences(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.generateNamesFromPreferences")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) generateIdeas(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.generateIdeas")
		return
	}

	var req models.GenerateIdeasRequest
	if err = decodeOptionalJSON(r, &req); err != nil {
		writeError(w, r, err, "*Handler.generateIdeas")
		return
	}

	resp, err := h.services.GenerationService.RequestIdeas(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err, "*Handler.generateIdeas")
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
