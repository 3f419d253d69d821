package document

import (
	"regexp"
	"strings"
)

// PendingMarker replaces placeholders that no data was supplied for. A
// rendered document must never leak raw {{key}} tokens to the legal team.
const PendingMarker = "[PENDENTE]"

var placeholderPattern = regexp.MustCompile(`\{\{[a-zA-Z0-9_]+\}\}`)

// Fill replaces every {{key}} occurrence with its value from data; tokens
// with no value are swept with PendingMarker. A single pass resolves each
// token in the template, so the output never depends on map iteration order
// and substituted values are not re-scanned. A token arriving inside a value
// is swept afterwards so no raw {{key}} ever reaches a rendered document.
// Replacement matches whole tokens only, so "nome" never clobbers
// "nome_colaborador". The input template is not modified.
func Fill(template string, data map[string]string) string {
	filled := placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		key := strings.TrimSuffix(strings.TrimPrefix(token, "{{"), "}}")
		if value, ok := data[key]; ok {
			return value
		}
		return PendingMarker
	})
	return placeholderPattern.ReplaceAllString(filled, PendingMarker)
}
