// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(middleware.Compress(compressionLevel))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/health", h.health)
		r.Handle("/metrics", promhttp.Handler())
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/names/{bucket}", h.listNames)
		r.Post("/api/names/{bucket}", h.addName)
		r.Post("/api/names/{bucket}/batch", h.addNamesBatch)
		r.Delete("/api/names/{bucket}/{id}", h.deleteName)
		r.Post("/api/names/move", h.moveName)

		r.Get("/api/preferences", h.getPreferences)
		r.Put("/api/preferences", h.savePreferences)

		r.Get("/api/reports", h.listReports)
		r.Post("/api/reports", h.saveReport)
		r.Get("/api/reports/by-name/{name}", h.getReportByName)
		r.Get("/api/reports/{id}", h.getReport)
		r.Delete("/api/reports/{id}", h.deleteReport)

		r.Get("/api/elevenlabs/voices", h.listVoices)

		r.Get("/api/voice-audio", h.getVoiceAudio)
		r.Post("/api/voice-audio", h.saveVoiceAudio)
		r.Get("/api/user-voice-recordings", h.getRecording)
		r.Post("/api/user-voice-recordings", h.saveRecording)
		r.Get("/api/user-voice-recordings/pending", h.listPendingRecordings)
		r.Post("/api/user-voice-recordings/pending", h.holdRecording)
		r.Post("/api/user-voice-recordings/pending/flush", h.flushPendingRecordings)

		// routes calling paid upstream services
		r.Group(func(r chi.Router) {
			r.Use(h.limiter.Limit)

			r.Post("/api/langflow", h.chat)
			r.Post("/api/generate/names", h.generateNames)
			r.Post("/api/generate/names/from-preferences", h.generateNamesFromPreferences)
			r.Post("/api/generate/ideas", h.generateIdeas)
			r.Post("/api/reports/generate", h.generateReport)
			r.Post("/api/elevenlabs/stream", h.synthesize)
			r.Post("/api/pronunciation", h.pronunciation)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
