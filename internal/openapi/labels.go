package openapi

import (
	"regexp"
	"strings"
)

var splitWordsPattern = regexp.MustCompile(`[_\-.\s]+`)

// humanize turns a property name into a sentence-case label, splitting on
// separators and camelCase boundaries: "firstName" becomes "First name".
func humanize(name string) string {
	var words []string
	for _, part := range splitWordsPattern.Split(name, -1) {
		if part == "" {
			continue
		}
		words = append(words, strings.Fields(splitCamel(part))...)
	}
	if len(words) == 0 {
		return ""
	}
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	words[0] = strings.ToUpper(words[0][:1]) + words[0][1:]
	return strings.Join(words, " ")
}

func splitCamel(input string) string {
	var out strings.Builder
	for i, r := range input {
		if i > 0 && isBoundary(input, i, r) {
			out.WriteRune(' ')
		}
		out.WriteRune(r)
	}
	return out.String()
}

func isBoundary(input string, index int, r rune) bool {
	prev := rune(input[index-1])
	return (isLower(prev) && isUpper(r)) || (isLetter(prev) && isDigit(r)) || (isDigit(prev) && isLetter(r))
}

func isUpper(r rune) bool  { return r >= 'A' && r <= 'Z' }
func isLower(r rune) bool  { return r >= 'a' && r <= 'z' }
func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return isUpper(r) || isLower(r) }
