package model

import (
	"fmt"

	"tally/internal/apperrors"
)

// ValidateExpenseForm checks expense input ahead of any mutation. It returns
// an error wrapping apperrors.ErrValidation on the first failed rule.
func ValidateExpenseForm(v ExpenseFormValues) error {
	if v.Name == "" {
		return fmt.Errorf("%w: expense name is required", apperrors.ErrValidation)
	}
	if v.Amount <= 0 {
		return fmt.Errorf("%w: amount must be greater than 0", apperrors.ErrValidation)
	}
	if v.TagID == "" {
		return fmt.Errorf("%w: tag is required", apperrors.ErrValidation)
	}
	if v.Date.IsZero() {
		return fmt.Errorf("%w: date is required", apperrors.ErrValidation)
	}
	return nil
}

// ValidateTagForm checks tag input ahead of any mutation.
func ValidateTagForm(v TagFormValues) error {
	if v.Name == "" {
		return fmt.Errorf("%w: tag name is required", apperrors.ErrValidation)
	}
	if !v.Color.Valid() {
		return fmt.Errorf("%w: unknown color %q", apperrors.ErrValidation, v.Color)
	}
	return nil
}
