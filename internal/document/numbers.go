package document

import "strconv"

var (
	unitWords = []string{"", "um", "dois", "três", "quatro", "cinco", "seis", "sete", "oito", "nove"}
	teenWords = []string{"dez", "onze", "doze", "treze", "quatorze", "quinze", "dezesseis", "dezessete", "dezoito", "dezenove"}
	tensWords = []string{"", "", "vinte", "trinta", "quarenta", "cinquenta", "sessenta", "setenta", "oitenta", "noventa"}
	hundredWords = []string{"", "cento", "duzentos", "trezentos", "quatrocentos", "quinhentos", "seiscentos", "setecentos", "oitocentos", "novecentos"}
)

// Extenso spells out a number in Portuguese, covering 0 through 999.
// Suspension periods never come close to that ceiling; values outside the
// range fall back to digits.
func Extenso(n int) string {
	switch {
	case n == 0:
		return "zero"
	case n < 0 || n >= 1000:
		return strconv.Itoa(n)
	case n < 10:
		return unitWords[n]
	case n < 20:
		return teenWords[n-10]
	case n < 100:
		d, u := n/10, n%10
		if u == 0 {
			return tensWords[d]
		}
		return tensWords[d] + " e " + unitWords[u]
	default:
		c, rest := n/100, n%100
		if rest == 0 {
			if c == 1 {
				return "cem"
			}
			return hundredWords[c]
		}
		return hundredWords[c] + " e " + Extenso(rest)
	}
}
