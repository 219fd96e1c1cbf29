// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// Gender is the optional gender tag of a name.
type Gender string

const (
	GenderBoy  Gender = "Boy"
	GenderGirl Gender = "Girl"
)

// Valid reports whether g is empty or one of the known genders.
func (g Gender) Valid() bool {
	return g == "" || g == GenderBoy || g == GenderGirl
}

// NameItem is a single name stored in a bucket.
//
// IDs are not preserved across buckets: moving a name inserts a new row with
// a fresh ID.
type NameItem struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Gender      Gender    `json:"gender,omitempty"`
	Inspiration string    `json:"inspiration,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitzero"`
}

// Normalize trims surrounding whitespace from the user-entered fields.
func (n NameItem) Normalize() NameItem {
	n.Name = strings.TrimSpace(n.Name)
	n.Inspiration = strings.TrimSpace(n.Inspiration)
	return n
}

// MoveRequest describes a transfer of a name from one bucket to another.
//
// Name, Gender and Inspiration are only used when the source row does not
// exist in storage, which is the case for generated names that were never
// persisted.
type MoveRequest struct {
	From        Bucket `json:"from"`
	To          Bucket `json:"to"`
	ID          string `json:"id"`
	UserID      int64  `json:"-"`
	Name        string `json:"name,omitempty"`
	Gender      Gender `json:"gender,omitempty"`
	Inspiration string `json:"inspiration,omitempty"`
}

// BatchAddRequest adds several names to one bucket at once. Gender applies to
// every name that does not carry its own.
type BatchAddRequest struct {
	Names  []NameItem `json:"names"`
	Gender Gender     `json:"gender,omitempty"`
}

// BatchAddResult reports which names were inserted and how many were skipped
// as duplicates.
type BatchAddResult struct {
	Names   []NameItem `json:"names"`
	Skipped int        `json:"skipped"`
}
