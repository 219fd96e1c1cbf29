// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/Srejith/namemybaby/internal/utils"
	"github.com/Srejith/namemybaby/models"
)

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.getPreferences")
		return
	}

	prefs, err := h.services.PreferencesService.Get(r.Context(), userID)
	if err != nil {
		writeError(w, r, err, "*Handler.getPreferences")
		return
	}

	utils.WriteJSON(w, prefs, http.StatusOK)
}

func (h *Handler) savePreferences(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err, "*Handler.savePreferences")
		return
	}

	var prefs models.UserPreferences
	if err = decodeJSON(r, &prefs); err != nil {
		writeError(w, r, err, "*Handler.savePreferences")
		return
	}

	saved, err := h.services.PreferencesService.Save(r.Context(), userID, prefs)
	if err != nil {
		writeError(w, r, err, "*Handler.savePreferences")
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}
