package utils

import "strings"

func ContainsString(targetString string, sliceOfStrings []string) bool {
	for i := range sliceOfStrings {
		if sliceOfStrings[i] == targetString {
			return true
		}
	}
	return false
}

// MissingStrings returns the elements of wanted that are not present in available, keeping the order of wanted
func MissingStrings(wanted []string, available []string) []string {
	var missing []string
	for _, element := range wanted {
		if !ContainsString(element, available) {
			missing = append(missing, element)
		}
	}
	return missing
}

// NormalizeInput lower-cases the given text and strips surrounding blanks and the line terminator
func NormalizeInput(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// IsMissing returns true for the values used by the datasets to represent an empty cell
func IsMissing(value string) bool {
	trimmed := strings.TrimSpace(value)
	return trimmed == "" || trimmed == "NaN" || trimmed == "NA" || trimmed == "<nil>"
}
