// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Srejith/namemybaby/models"
)

// ─────────────────────────────────────────────────────────────────────────────
// Names
// ─────────────────────────────────────────────────────────────────────────────

func TestNames(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []models.NameItem
	}{
		{
			name: "name and inspiration",
			text: "Sure! Here you go:\n1. Name: Aria Inspiration: A melody sung alone\n2. Name: Leo Inspiration: The lion",
			want: []models.NameItem{
				{Name: "Aria", Inspiration: "A melody sung alone"},
				{Name: "Leo", Inspiration: "The lion"},
			},
		},
		{
			name: "anchor is case-insensitive",
			text: "HERE YOU GO\n1. name: Mila inspiration: gracious",
			want: []models.NameItem{{Name: "Mila", Inspiration: "gracious"}},
		},
		{
			name: "numbered lines before the anchor are ignored",
			text: "1. Name: Early Inspiration: none\nHere you go\n2. Name: Late Inspiration: kept",
			want: []models.NameItem{{Name: "Late", Inspiration: "kept"}},
		},
		{
			name: "name without inspiration falls back",
			text: "Here you go\n1. Name: Noah",
			want: []models.NameItem{{Name: "Noah"}},
		},
		{
			name: "lines without a label are skipped",
			text: "Here you go\n1. Olivia\n2. Name: Ava Inspiration: life",
			want: []models.NameItem{{Name: "Ava", Inspiration: "life"}},
		},
		{
			name: "too short and too long names are dropped",
			text: "Here you go\n1. Name: A Inspiration: x\n2. Name: Abcdefghijklmnopqrstuvwxyzabcd Inspiration: y\n3. Name: Bo Inspiration: z",
			want: []models.NameItem{{Name: "Bo", Inspiration: "z"}},
		},
		{
			name: "markdown emphasis is stripped",
			text: "Here you go!\n1. **Name:** Ezra **Inspiration:** help",
			want: []models.NameItem{{Name: "Ezra", Inspiration: "help"}},
		},
		{
			name: "underscores are kept as written",
			text: "Here you go\n1. Name: __Ada__ Inspiration: __poise__",
			want: []models.NameItem{{Name: "__Ada__", Inspiration: "__poise__"}},
		},
		{
			name: "windows line endings",
			text: "Here you go\r\n1. Name: Ivy Inspiration: evergreen\r\n",
			want: []models.NameItem{{Name: "Ivy", Inspiration: "evergreen"}},
		},
		{
			name: "no anchor",
			text: "1. Name: Aria Inspiration: melody",
			want: []models.NameItem{},
		},
		{
			name: "empty",
			text: "",
			want: []models.NameItem{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			got := Names(tt.text)

			// Assert
			assert.Equal(t, tt.want, got)
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Ideas
// ─────────────────────────────────────────────────────────────────────────────

func TestIdeas(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "numbered ideas",
			text: "Here you go on ideas for your baby\n1. Family names\n  2.   Nature words  \nnot numbered",
			want: []string{"Family names", "Nature words"},
		},
		{
			name: "single characters are dropped",
			text: "Here you go\n1. X\n2. Stars",
			want: []string{"Stars"},
		},
		{
			name: "number without a dot is not an item",
			text: "Here you go\n1 Stars\n2) Moons",
			want: []string{},
		},
		{
			name: "no anchor",
			text: "1. Family names",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Ideas(tt.text))
		})
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// DetectGender
// ─────────────────────────────────────────────────────────────────────────────

func TestDetectGender(t *testing.T) {
	tests := []struct {
		prompt string
		want   models.Gender
	}{
		{prompt: "Provide me with name suggestions for my baby boy", want: models.GenderBoy},
		{prompt: "Names for a little PRINCE", want: models.GenderBoy},
		{prompt: "Provide me with name suggestions for my baby girl", want: models.GenderGirl},
		{prompt: "a name for a girl or a boy", want: models.GenderBoy},
		// "female" contains "male", boy keywords are checked first.
		{prompt: "female names", want: models.GenderBoy},
		{prompt: "creative ideas", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.prompt, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectGender(tt.prompt))
		})
	}
}
