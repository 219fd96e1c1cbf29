// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST API of the namemybaby server.
//
// It wires the chi router, decodes requests and maps service errors to
// status codes. Middleware handles panic recovery, trace ids, access logging,
// Prometheus metrics, compression, JWT authentication and per-user rate
// limiting of the routes that call paid upstream services.
package http
