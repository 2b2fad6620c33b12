package util

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	parentheticalPattern = regexp.MustCompile(`\([^)]*\)`)
	nonDigitPattern      = regexp.MustCompile(`\D`)
	whitespacePattern    = regexp.MustCompile(`\s+`)
)

// ExtractWhatsAppPhone turns a free-text store contact field into a phone
// number in international format without the plus sign. Parenthetical
// annotations and separators are stripped; a leading 0 becomes the 62
// country code. Contacts that carry no Indonesian-looking number (social
// handles) yield the fallback number.
func ExtractWhatsAppPhone(contact, fallback string) string {
	cleaned := parentheticalPattern.ReplaceAllString(contact, "")
	digits := nonDigitPattern.ReplaceAllString(cleaned, "")

	switch {
	case digits == "":
		return fallback
	case strings.HasPrefix(digits, "0"):
		return "62" + digits[1:]
	case strings.HasPrefix(digits, "62"):
		return digits
	case strings.HasPrefix(digits, "8"):
		return "62" + digits
	default:
		return fallback
	}
}

// WhatsAppLink builds the wa.me deep link for a phone number and prefilled
// message text.
func WhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

// NormalizeCategoryKey canonicalizes a category label for tab matching:
// lower case with runs of whitespace collapsed to single hyphens.
func NormalizeCategoryKey(category string) string {
	trimmed := strings.TrimSpace(strings.ToLower(category))

	return whitespacePattern.ReplaceAllString(trimmed, "-")
}

// CategoryMatches reports whether a free-text category label belongs to the
// given tab key, comparing normalized forms.
func CategoryMatches(category, tabKey string) bool {
	return NormalizeCategoryKey(category) == NormalizeCategoryKey(tabKey)
}

// ContainsFold reports whether s contains substr, case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// HighlightMatches wraps every case-insensitive occurrence of query in text
// with <mark> tags, preserving the original casing of the matched run.
func HighlightMatches(text, query string) string {
	if query == "" {
		return text
	}

	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(query)

	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx < 0 {
			b.WriteString(text[start:])

			break
		}

		matchStart := start + idx
		matchEnd := matchStart + len(query)
		b.WriteString(text[start:matchStart])
		b.WriteString("<mark>")
		b.WriteString(text[matchStart:matchEnd])
		b.WriteString("</mark>")
		start = matchEnd
	}

	return b.String()
}
