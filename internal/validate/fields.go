// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package validate holds the lead-capture field predicates.
package validate

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// =============================================================================
// FIELDS
// =============================================================================

// Field names one of the four lead-capture inputs.
type Field string

const (
	FieldName         Field = "name"
	FieldEmail        Field = "email"
	FieldPhone        Field = "phone"
	FieldOrganization Field = "organization"
)

// Fields lists the lead-capture inputs in form order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldOrganization}

// Label returns the form label for the field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Full name"
	case FieldEmail:
		return "Email"
	case FieldPhone:
		return "Phone"
	case FieldOrganization:
		return "Organization"
	default:
		return string(f)
	}
}

// Error copy shown under each input.
const (
	MsgInvalidName         = "Please enter a valid name (letters and spaces only)."
	MsgInvalidEmail        = "Oops! Your email address looks incomplete. Please check again."
	MsgInvalidPhone        = "Please enter a valid 10-digit phone number."
	MsgInvalidOrganization = "Please enter a valid organization name (max 100 characters)."
)

// MaxOrganizationLen is the longest accepted organization name, in characters.
const MaxOrganizationLen = 100

// IndiaCountryCode is the only country prefix accepted on 12-digit numbers.
const IndiaCountryCode = "91"

var (
	nameRe       = regexp.MustCompile(`^[a-zA-Z]+(?: [a-zA-Z]+)*$`)
	emailRe      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonDigitRe   = regexp.MustCompile(`\D`)
)

// =============================================================================
// PREDICATES
// =============================================================================

// CollapseName trims the name and folds internal whitespace runs into one space.
func CollapseName(s string) string {
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
}

// DigitsOnly strips every non-digit character.
func DigitsOnly(s string) string {
	return nonDigitRe.ReplaceAllString(s, "")
}

// IsValidName reports whether s is one or more alphabetic words.
func IsValidName(s string) bool {
	clean := CollapseName(s)
	return clean != "" && nameRe.MatchString(clean)
}

// IsValidEmail is a permissive single-@ check, not an RFC 5322 parser.
func IsValidEmail(s string) bool {
	return emailRe.MatchString(strings.TrimSpace(s))
}

// IsValidPhone accepts 10 digits, or 12 digits starting with the India prefix.
func IsValidPhone(s string) bool {
	digits := DigitsOnly(s)
	switch len(digits) {
	case 10:
		return true
	case 12:
		return strings.HasPrefix(digits, IndiaCountryCode)
	default:
		return false
	}
}

// IsValidOrganization reports whether the trimmed value has 1 to 100 characters.
func IsValidOrganization(s string) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(s))
	return n > 0 && n <= MaxOrganizationLen
}

// Check runs the predicate for field.
func Check(field Field, value string) bool {
	switch field {
	case FieldName:
		return IsValidName(value)
	case FieldEmail:
		return IsValidEmail(value)
	case FieldPhone:
		return IsValidPhone(value)
	case FieldOrganization:
		return IsValidOrganization(value)
	default:
		return false
	}
}

// ValidateField returns the field's error copy, or "" when value passes.
func ValidateField(field Field, value string) string {
	if Check(field, value) {
		return ""
	}
	switch field {
	case FieldName:
		return MsgInvalidName
	case FieldEmail:
		return MsgInvalidEmail
	case FieldPhone:
		return MsgInvalidPhone
	case FieldOrganization:
		return MsgInvalidOrganization
	default:
		return "Unknown field."
	}
}
