// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrUnknownBucket is returned by [ParseBucket] for any value that is neither
// a bucket key nor a bucket table name.
var ErrUnknownBucket = errors.New("unknown bucket")

// Bucket is one of the four name collections a user sorts names into.
// A name lives in exactly one bucket at a time.
type Bucket string

const (
	BucketGenerated Bucket = "generated"
	BucketShortlist Bucket = "shortlist"
	BucketMaybe     Bucket = "maybe"
	BucketRejected  Bucket = "rejected"
)

// Buckets lists all buckets in display order.
var Buckets = []Bucket{BucketGenerated, BucketShortlist, BucketMaybe, BucketRejected}

// ParseBucket accepts either the bucket key ("generated") or its table name
// ("generated_list"), case-insensitively.
func ParseBucket(s string) (Bucket, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, b := range Buckets {
		if s == string(b) || s == b.Table() {
			return b, nil
		}
	}

	return "", ErrUnknownBucket
}

// Valid reports whether b is one of the known buckets.
func (b Bucket) Valid() bool {
	for _, known := range Buckets {
		if b == known {
			return true
		}
	}

	return false
}

// Table returns the name of the table that stores the bucket.
func (b Bucket) Table() string {
	if b == BucketGenerated {
		return "generated_list"
	}

	return string(b)
}

// DisplayName returns the human-readable bucket name used in messages.
func (b Bucket) DisplayName() string {
	switch b {
	case BucketGenerated:
		return "Generated Names"
	case BucketShortlist:
		return "Shortlist"
	case BucketMaybe:
		return "Maybe"
	case BucketRejected:
		return "Rejected"
	default:
		return string(b)
	}
}
