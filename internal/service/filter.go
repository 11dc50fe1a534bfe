package service

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
)

// matchesDenormalized implements the loose filter match against a
// comma-joined denormalized field: the criterion passes when it is unset or
// the "all" sentinel, or when the field contains either the display name or
// the raw key as a case-insensitive substring.
//
// Deliberately loose, and used by the roster view only; the attendance view
// matches class tokens and subject names exactly. The backend hands these
// fields as joined text, not relations.
func matchesDenormalized(recordText, filterKey, filterDisplayName string) bool {
	if filterKey == "" || filterKey == models.FilterSentinel {
		return true
	}
	text := strings.ToLower(recordText)
	if filterDisplayName != "" && strings.Contains(text, strings.ToLower(filterDisplayName)) {
		return true
	}
	return strings.Contains(text, strings.ToLower(filterKey))
}

func validationError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(validator.ValidationErrors); ok {
		return appErrors.Clone(appErrors.ErrValidation, err.Error())
	}
	return appErrors.FromError(err)
}
