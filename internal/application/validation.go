package application

import (
	"fmt"
	"strings"

	"diario/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		// Format field name with spaces for error message (e.g., "countryID" -> "country ID")
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// ValidateOwner checks that an owner identity is present
func ValidateOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return ErrUnauthenticated
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "countryID" -> "country ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"countryID": "country ID",
		"cityID":    "city ID",
		"pageID":    "page ID",
		"name":      "name",
		"title":     "title",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateCountry checks that a country exists in the local tree
func ValidateCountry(s domain.JournalState, countryID string) error {
	if err := ValidateRequired("countryID", countryID); err != nil {
		return err
	}
	if _, ok := s.Country(countryID); !ok {
		return &ValidationError{
			Field:   "countryID",
			Message: fmt.Sprintf("country %s: %v", countryID, ErrNotFound),
		}
	}
	return nil
}

// ValidateCity checks that a city exists under the given country
func ValidateCity(s domain.JournalState, countryID, cityID string) error {
	if err := ValidateCountry(s, countryID); err != nil {
		return err
	}
	if err := ValidateRequired("cityID", cityID); err != nil {
		return err
	}
	if _, ok := s.City(countryID, cityID); !ok {
		return &ValidationError{
			Field:   "cityID",
			Message: fmt.Sprintf("city %s in country %s: %v", cityID, countryID, ErrNotFound),
		}
	}
	return nil
}

// ValidatePage checks that a page exists under the given city
func ValidatePage(s domain.JournalState, countryID, cityID, pageID string) error {
	if err := ValidateCity(s, countryID, cityID); err != nil {
		return err
	}
	if err := ValidateRequired("pageID", pageID); err != nil {
		return err
	}
	if _, ok := s.Page(countryID, cityID, pageID); !ok {
		return &ValidationError{
			Field:   "pageID",
			Message: fmt.Sprintf("page %s in city %s: %v", pageID, cityID, ErrNotFound),
		}
	}
	return nil
}
