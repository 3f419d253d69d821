package process

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeText folds a raw status or classification value into a comparable
// form: underscores become spaces, accents are stripped, everything is
// lowercased. Spreadsheet imports produce wildly inconsistent values
// ("Em_Analise", "em análise", "GRAVÍSSIMA"), so matching happens on this
// folded form only.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	folded, _, err := transform.String(stripAccents, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// FormatStatus maps any recognizable status spelling onto its display label.
// Unrecognized values pass through trimmed with underscores replaced, so data
// problems stay visible.
func FormatStatus(raw string) string {
	n := normalizeText(raw)
	switch {
	case strings.Contains(n, "analise") || strings.Contains(n, "sindic"):
		return "Sindicância"
	case strings.Contains(n, "assinatura"):
		return "Aguardando Assinatura"
	case strings.Contains(n, "final"):
		return "Finalizado"
	}
	return strings.TrimSpace(strings.ReplaceAll(raw, "_", " "))
}

// FormatClassification maps any recognizable severity spelling onto its
// accented display label. "gravissima" must match before "grave" since the
// former contains the latter. Anything unrecognizable falls back to the
// lightest severity.
func FormatClassification(raw string) string {
	n := normalizeText(raw)
	switch {
	case strings.Contains(n, "gravissima"):
		return "Gravíssima"
	case strings.Contains(n, "grave"):
		return "Grave"
	case strings.Contains(n, "media"):
		return "Média"
	case strings.Contains(n, "leve"):
		return "Leve"
	}
	return "Leve"
}
