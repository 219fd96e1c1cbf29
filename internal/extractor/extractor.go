// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package extractor pulls names and ideas out of free-form flow replies.
//
// A reply is only considered once it contains the anchor phrase "Here you go"
// (case-insensitive). Everything before the anchor is ignored and every
// numbered line after it ("1. ...") is a candidate item.
package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Srejith/namemybaby/models"
)

// Anchor is the phrase the flow is prompted to put in front of its list.
const Anchor = "Here you go"

const (
	minNameLength = 2
	maxNameLength = 29
)

var (
	anchorPattern          = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(Anchor))
	numberedLine           = regexp.MustCompile(`^\s*\d+\.\s+(.+)$`)
	nameWithInspiration    = regexp.MustCompile(`(?i)Name:\s*(\S+)\s+Inspiration:\s*(.+)`)
	nameOnly               = regexp.MustCompile(`(?i)Name:\s*(\S+)`)
	markdownEmphasisMarker = strings.NewReplacer("**", "")
)

// Names returns the names listed after the anchor. Lines without a "Name:"
// label are skipped, as are names shorter than two or longer than 29
// characters.
func Names(text string) []models.NameItem {
	items := make([]models.NameItem, 0)
	for _, content := range numberedItems(text) {
		content = markdownEmphasisMarker.Replace(content)

		var item models.NameItem
		if m := nameWithInspiration.FindStringSubmatch(content); m != nil {
			item = models.NameItem{
				Name:        strings.TrimSpace(m[1]),
				Inspiration: strings.TrimSpace(m[2]),
			}
		} else if m := nameOnly.FindStringSubmatch(content); m != nil {
			item = models.NameItem{Name: strings.TrimSpace(m[1])}
		} else {
			continue
		}

		if n := utf8.RuneCountInString(item.Name); n < minNameLength || n > maxNameLength {
			continue
		}
		items = append(items, item)
	}

	return items
}

// Ideas returns the numbered items listed after the anchor. Items of a single
// character are dropped.
func Ideas(text string) []string {
	ideas := make([]string, 0)
	for _, idea := range numberedItems(text) {
		if utf8.RuneCountInString(idea) > 1 {
			ideas = append(ideas, idea)
		}
	}

	return ideas
}

// DetectGender guesses the gender a prompt asks for. Boy keywords win over
// girl keywords; an empty result means no keyword matched.
func DetectGender(prompt string) models.Gender {
	lower := strings.ToLower(prompt)
	switch {
	case strings.Contains(lower, "boy"), strings.Contains(lower, "male"), strings.Contains(lower, "prince"):
		return models.GenderBoy
	case strings.Contains(lower, "girl"), strings.Contains(lower, "female"), strings.Contains(lower, "princess"):
		return models.GenderGirl
	default:
		return ""
	}
}

func numberedItems(text string) []string {
	loc := anchorPattern.FindStringIndex(text)
	if loc == nil {
		return nil
	}

	var out []string
	for _, line := range strings.Split(text[loc[1]:], "\n") {
		line = strings.TrimRight(line, "\r")
		m := numberedLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if content := strings.TrimSpace(m[1]); content != "" {
			out = append(out, content)
		}
	}

	return out
}
