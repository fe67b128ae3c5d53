package application

import (
	"fmt"
	"path"
	"strings"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "vaultID" -> "vault ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"vaultID":  "vault ID",
		"itemID":   "item ID",
		"actionID": "action ID",
		"name":     "note name",
		"query":    "query",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateNoteName checks a name for a new note. Subfolders are allowed
// ("projects/todo"), absolute paths and parent references are not.
func ValidateNoteName(fieldName, name string) error {
	if err := ValidateRequired(fieldName, name); err != nil {
		return err
	}

	slashed := strings.ReplaceAll(strings.TrimSpace(name), `\`, "/")
	if path.IsAbs(slashed) {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be relative to the vault: %s", formatFieldName(fieldName), name),
		}
	}
	for _, seg := range strings.Split(slashed, "/") {
		if seg == ".." {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("%s must stay inside the vault: %s", formatFieldName(fieldName), name),
			}
		}
	}
	return nil
}
