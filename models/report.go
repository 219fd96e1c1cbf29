// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// NameReport is the stored etymology report of a name. Lookups by name are
// case-insensitive and resolve to the most recently created report.
type NameReport struct {
	ID            string    `json:"id"`
	UserID        int64     `json:"-"`
	Name          string    `json:"name"`
	ReportContent string    `json:"report_content"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// SaveReportRequest is the body of a manual report save.
type SaveReportRequest struct {
	Name          string `json:"name"`
	ReportContent string `json:"report_content"`
}

// GenerateReportRequest asks the flow service for the report of Name.
type GenerateReportRequest struct {
	Name string `json:"name"`
}
