// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package validate

import (
	"strings"

	"github.com/VishalSingh1806/ChatBot-RAG/internal/model"
)

// =============================================================================
// FIELD ERRORS
// =============================================================================

// FieldErrors maps each field to its current error copy ("" means no error).
type FieldErrors map[Field]string

// NewFieldErrors returns an error map with every field cleared.
func NewFieldErrors() FieldErrors {
	errs := make(FieldErrors, len(Fields))
	for _, f := range Fields {
		errs[f] = ""
	}
	return errs
}

// Set recomputes the error for one field.
func (e FieldErrors) Set(field Field, value string) string {
	msg := ValidateField(field, value)
	e[field] = msg
	return msg
}

// Clean reports whether no field carries an error.
func (e FieldErrors) Clean() bool {
	for _, msg := range e {
		if msg != "" {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (e FieldErrors) Clone() FieldErrors {
	out := make(FieldErrors, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// =============================================================================
// PROFILE HELPERS
// =============================================================================

// Value reads one field from a profile.
func Value(p model.UserProfile, field Field) string {
	switch field {
	case FieldName:
		return p.Name
	case FieldEmail:
		return p.Email
	case FieldPhone:
		return p.Phone
	case FieldOrganization:
		return p.Organization
	default:
		return ""
	}
}

// WithValue returns p with one field replaced.
func WithValue(p model.UserProfile, field Field, value string) model.UserProfile {
	switch field {
	case FieldName:
		p.Name = value
	case FieldEmail:
		p.Email = value
	case FieldPhone:
		p.Phone = value
	case FieldOrganization:
		p.Organization = value
	}
	return p
}

// ValidateProfile computes a fresh error map for every field of p.
func ValidateProfile(p model.UserProfile) FieldErrors {
	errs := NewFieldErrors()
	for _, f := range Fields {
		errs.Set(f, Value(p, f))
	}
	return errs
}

// IsFormValid requires every predicate to pass and the cached errors to be clean.
// Callers keep errs in step with p by recomputing on every edit.
func IsFormValid(p model.UserProfile, errs FieldErrors) bool {
	for _, f := range Fields {
		if !Check(f, Value(p, f)) {
			return false
		}
	}
	return errs.Clean()
}

// Normalize prepares a profile for transmission: the name is trimmed and
// whitespace-collapsed, the email trimmed and lowercased, the phone reduced
// to digits and the organization trimmed.
func Normalize(p model.UserProfile) model.UserProfile {
	return model.UserProfile{
		Name:         CollapseName(p.Name),
		Email:        strings.ToLower(strings.TrimSpace(p.Email)),
		Phone:        DigitsOnly(p.Phone),
		Organization: strings.TrimSpace(p.Organization),
	}
}
