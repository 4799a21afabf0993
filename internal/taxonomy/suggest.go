package taxonomy

const (
	// MinQueryLen - запросы короче не дают подсказок: на 1-2 буквах
	// совпадает слишком много
	MinQueryLen = 3

	// MaxSuggestions - жёсткий предел списка подсказок
	MaxSuggestions = 10
)

// Suggest возвращает упорядоченный список подсказок по подстроке запроса.
// Порядок приоритета фиксированный: сентинел "все баррио", затем районы,
// затем баррио города; внутри уровня - каталожный порядок. Список
// обрезается до MaxSuggestions после конкатенации уровней, поэтому районы
// могут вытеснить баррио целиком - осознанный размен простоты и задержки
// на полноту. Только вхождение подстроки, без нечёткого поиска.
func (t *Taxonomy) Suggest(query, city string) []string {
	if len([]rune(Fold(query))) < MinQueryLen {
		return nil
	}

	canonCity, ok := t.CanonicalCity(city)
	if !ok {
		return nil
	}

	suggestions := make([]string, 0, MaxSuggestions)
	seen := make(map[string]bool)

	add := func(name string) bool {
		key := Fold(name)
		if seen[key] {
			return len(suggestions) < MaxSuggestions
		}
		seen[key] = true
		suggestions = append(suggestions, name)
		return len(suggestions) < MaxSuggestions
	}

	// Уровень 1: сентинел города
	if foldContains(canonCity, query) {
		if !add(string(t.EncodeAllNeighborhoods(canonCity))) {
			return suggestions
		}
	}

	// Уровень 2: районы
	for _, d := range t.districtsByCity[Fold(canonCity)] {
		if foldContains(d, query) {
			if !add(d) {
				return suggestions
			}
		}
	}

	// Уровень 3: баррио
	for _, n := range t.allNeighborhoods[Fold(canonCity)] {
		if foldContains(n, query) {
			if !add(n) {
				return suggestions
			}
		}
	}

	return suggestions
}
