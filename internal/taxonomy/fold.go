package taxonomy

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldChain убирает диакритику: NFD -> удаление комбинируемых знаков -> NFC.
// Пользователи набирают "chamartin" для "Chamartín".
var foldChain = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold нормализует название для сравнения: trim, нижний регистр, без диакритики
func Fold(s string) string {
	folded, _, err := transform.String(foldChain, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(strings.TrimSpace(folded))
}

// foldContains - поиск подстроки без учёта регистра и диакритики
func foldContains(name, query string) bool {
	return strings.Contains(Fold(name), Fold(query))
}
