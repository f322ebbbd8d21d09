package traveltales

import (
	"errors"
	"strings"

	"github.com/etnz/traveltales/date"
)

// Validation rejects bad input at the boundary, before any state mutation.
// A failed validation leaves every collection untouched.

// ValidateSignup checks the fields of a new account.
func ValidateSignup(name, email, password string) error {
	var errs []error
	if strings.TrimSpace(name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if !strings.Contains(email, "@") {
		errs = append(errs, errors.New("a valid email is required"))
	}
	if password == "" {
		errs = append(errs, errors.New("password is required"))
	}
	return errors.Join(errs...)
}

// ValidateTrip checks the fields of a new trip or plan.
func ValidateTrip(title string, start, end date.Date) error {
	var errs []error
	if strings.TrimSpace(title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if start.IsZero() || end.IsZero() {
		errs = append(errs, errors.New("start and end dates are required"))
	}
	if !start.IsZero() && end.Before(start) {
		errs = append(errs, errors.New("end date cannot be before start date"))
	}
	return errors.Join(errs...)
}

// ValidateEntry checks the fields of a new journal entry.
func ValidateEntry(on date.Date, title string) error {
	var errs []error
	if strings.TrimSpace(title) == "" {
		errs = append(errs, errors.New("title is required"))
	}
	if on.IsZero() {
		errs = append(errs, errors.New("date is required"))
	}
	return errors.Join(errs...)
}

// ValidateExpense checks the fields of a new expense.
func ValidateExpense(on date.Date, description string, amount Money) error {
	var errs []error
	if strings.TrimSpace(description) == "" {
		errs = append(errs, errors.New("description is required"))
	}
	if on.IsZero() {
		errs = append(errs, errors.New("date is required"))
	}
	if !amount.IsPositive() {
		errs = append(errs, errors.New("amount must be positive"))
	}
	return errors.Join(errs...)
}

// ValidateItineraryItem checks the fields of a new itinerary item.
func ValidateItineraryItem(on date.Date, activity string) error {
	var errs []error
	if strings.TrimSpace(activity) == "" {
		errs = append(errs, errors.New("activity is required"))
	}
	if on.IsZero() {
		errs = append(errs, errors.New("date is required"))
	}
	return errors.Join(errs...)
}
