// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// BabyGenderUnknown is the onboarding answer for parents who do not know the
// gender yet. Name generation then runs for both boys and girls.
const BabyGenderUnknown = "I don't know yet"

// DefaultNumberOfNames is used when preferences are missing or specify a
// non-positive count.
const DefaultNumberOfNames = 5

// UserPreferences holds the onboarding answers of a user. There is at most
// one record per user.
type UserPreferences struct {
	UserID                  int64     `json:"-"`
	UserName                string    `json:"user_name"`
	PartnerName             string    `json:"partner_name"`
	BabyGender              string    `json:"baby_gender"`
	BirthCountry            string    `json:"birth_country"`
	LivingCountry           string    `json:"living_country"`
	Religion                string    `json:"religion"`
	Tone                    string    `json:"tone"`
	AlphabetPreferences     string    `json:"alphabet_preferences"`
	OtherPreferences        string    `json:"other_preferences"`
	NumberOfNamesToGenerate int       `json:"number_of_names_to_generate"`
	UpdatedAt               time.Time `json:"updated_at,omitzero"`
}

// DefaultPreferences returns the preferences of a user that never finished
// onboarding.
func DefaultPreferences(userID int64) UserPreferences {
	return UserPreferences{
		UserID:                  userID,
		NumberOfNamesToGenerate: DefaultNumberOfNames,
	}
}

// ValidBabyGender reports whether g is one of the accepted onboarding answers.
// Empty is accepted and treated as unknown.
func ValidBabyGender(g string) bool {
	switch g {
	case "", string(GenderBoy), string(GenderGirl), BabyGenderUnknown:
		return true
	default:
		return false
	}
}
