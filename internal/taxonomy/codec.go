package taxonomy

import "strings"

// AllNeighborhoodsSuffix - сентинел "все баррио города" в токене локации
const AllNeighborhoodsSuffix = " (Todos los barrios)"

// Token - каноническая сериализация выбора локации, от частного к общему:
// "Баррио, Район, Город", "Район, Город", "Город" или сентинел
// "Город (Todos los barrios)". Используется в URL и ключах кеша.
type Token string

// Selection - структурированный результат декодирования токена.
// AllNeighborhoods отличает сентинел от обычного городского токена:
// область поиска одинаковая, но намерение пользователя разное.
type Selection struct {
	City             string
	District         string
	Neighborhood     string
	AllNeighborhoods bool
}

// Token кодирует выбор обратно в каноническую форму
func (s Selection) Token(t *Taxonomy) Token {
	if s.AllNeighborhoods {
		return t.EncodeAllNeighborhoods(s.City)
	}
	return t.Encode(s.City, s.District, s.Neighborhood)
}

// LocationFilter - поля выбора для запроса к хранилищу
func (s Selection) LocationFilter() (city, district, neighborhood string, all bool) {
	return s.City, s.District, s.Neighborhood, s.AllNeighborhoods
}

// Encode строит максимально специфичный токен из известных частей.
// Если известно баррио без района, район разрешается обратным индексом.
func (t *Taxonomy) Encode(city, district, neighborhood string) Token {
	if canonical, ok := t.CanonicalCity(city); ok {
		city = canonical
	}
	if neighborhood != "" && district == "" {
		if d, ok := t.DistrictOf(neighborhood, city); ok {
			district = d
		}
	}
	if canonical, ok := t.CanonicalDistrict(district, city); ok {
		district = canonical
	}
	if canonical, ok := t.CanonicalNeighborhood(neighborhood, city); ok {
		neighborhood = canonical
	}

	parts := make([]string, 0, 3)
	if neighborhood != "" {
		parts = append(parts, neighborhood)
	}
	if district != "" {
		parts = append(parts, district)
	}
	parts = append(parts, city)
	return Token(strings.Join(parts, ", "))
}

// EncodeAllNeighborhoods строит сентинел "все баррио города"
func (t *Taxonomy) EncodeAllNeighborhoods(city string) Token {
	if canonical, ok := t.CanonicalCity(city); ok {
		city = canonical
	}
	return Token(city + AllNeighborhoodsSuffix)
}

// Decode разбирает токен в структурированный выбор. Декодер тотален:
// любой сохранённый или расшаренный URL должен отрисовать хоть что-то,
// в худшем случае - город по умолчанию.
//
// Порядок разбора:
//  1. сентинел "(Todos los barrios)" с известным городом;
//  2. три части как (баррио, район, город), все валидны по каталогу;
//  3. две части как (район, город), район принадлежит городу;
//  4. одна часть как точное имя города;
//  5. иначе вся строка - имя баррио; район через обратный индекс,
//     неизвестное баррио принимается как свободный текст.
func (t *Taxonomy) Decode(token Token) Selection {
	raw := strings.TrimSpace(string(token))
	if raw == "" {
		return Selection{City: t.DefaultCity()}
	}

	if sel, ok := t.decodeAllNeighborhoods(raw); ok {
		return sel
	}

	parts := splitToken(raw)

	if len(parts) == 3 {
		if sel, ok := t.decodeTriple(parts[0], parts[1], parts[2]); ok {
			return sel
		}
	}
	if len(parts) == 2 {
		if sel, ok := t.decodePair(parts[0], parts[1]); ok {
			return sel
		}
	}
	if len(parts) == 1 {
		if city, ok := t.CanonicalCity(parts[0]); ok {
			return Selection{City: city}
		}
	}

	return t.decodeFreeText(raw)
}

func (t *Taxonomy) decodeAllNeighborhoods(raw string) (Selection, bool) {
	if !strings.HasSuffix(raw, AllNeighborhoodsSuffix) {
		return Selection{}, false
	}
	city, ok := t.CanonicalCity(strings.TrimSuffix(raw, AllNeighborhoodsSuffix))
	if !ok {
		return Selection{}, false
	}
	return Selection{City: city, AllNeighborhoods: true}, true
}

func (t *Taxonomy) decodeTriple(neighborhood, district, city string) (Selection, bool) {
	canonCity, ok := t.CanonicalCity(city)
	if !ok {
		return Selection{}, false
	}
	canonDistrict, ok := t.CanonicalDistrict(district, canonCity)
	if !ok {
		return Selection{}, false
	}
	canonNeighborhood, ok := t.CanonicalNeighborhood(neighborhood, canonCity)
	if !ok {
		return Selection{}, false
	}
	if d, _ := t.DistrictOf(canonNeighborhood, canonCity); d != canonDistrict {
		return Selection{}, false
	}
	return Selection{City: canonCity, District: canonDistrict, Neighborhood: canonNeighborhood}, true
}

func (t *Taxonomy) decodePair(district, city string) (Selection, bool) {
	canonCity, ok := t.CanonicalCity(city)
	if !ok {
		return Selection{}, false
	}
	canonDistrict, ok := t.CanonicalDistrict(district, canonCity)
	if !ok {
		return Selection{}, false
	}
	return Selection{City: canonCity, District: canonDistrict}, true
}

// decodeFreeText - последний рубеж: вся строка считается именем баррио.
// Устаревшие и отсутствующие в каталоге локации не ломают навигацию.
func (t *Taxonomy) decodeFreeText(raw string) Selection {
	if city, ok := t.cityOfNeighborhood(raw); ok {
		canonNeighborhood, _ := t.CanonicalNeighborhood(raw, city)
		district, _ := t.DistrictOf(canonNeighborhood, city)
		return Selection{City: city, District: district, Neighborhood: canonNeighborhood}
	}
	return Selection{City: t.DefaultCity(), Neighborhood: raw}
}

func splitToken(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// ParseTokenList нормализует многоформенный параметр neighborhoods в список
// токенов длины >= 1. Токены сами содержат запятые, поэтому сегменты
// группируются жадно по каталогу: от самого длинного валидного токена.
func (t *Taxonomy) ParseTokenList(raw string) []Token {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []Token{t.Encode(t.DefaultCity(), "", "")}
	}

	// Одиночный валидный токен имеет приоритет над расщеплением
	if t.strictDecode(raw) {
		return []Token{t.Decode(Token(raw)).Token(t)}
	}

	segments := splitToken(raw)

	var tokens []Token
	for i := 0; i < len(segments); {
		matched := false
		// От трёх сегментов к одному: самый специфичный валидный токен
		for width := 3; width >= 1; width-- {
			if i+width > len(segments) {
				continue
			}
			candidate := strings.Join(segments[i:i+width], ", ")
			if t.strictDecode(candidate) {
				tokens = append(tokens, t.Decode(Token(candidate)).Token(t))
				i += width
				matched = true
				break
			}
		}
		if !matched {
			// Свободный текст: один сегмент - один токен
			tokens = append(tokens, t.Decode(Token(segments[i])).Token(t))
			i++
		}
	}

	if len(tokens) == 0 {
		tokens = []Token{t.Encode(t.DefaultCity(), "", "")}
	}
	return tokens
}

// strictDecode сообщает, разбирается ли строка без свободно-текстового
// фолбэка: валидная тройка, пара, город или сентинел
func (t *Taxonomy) strictDecode(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	if _, ok := t.decodeAllNeighborhoods(raw); ok {
		return true
	}
	parts := splitToken(raw)
	switch len(parts) {
	case 3:
		_, ok := t.decodeTriple(parts[0], parts[1], parts[2])
		return ok
	case 2:
		_, ok := t.decodePair(parts[0], parts[1])
		return ok
	case 1:
		if _, ok := t.CanonicalCity(parts[0]); ok {
			return true
		}
		_, ok := t.cityOfNeighborhood(parts[0])
		return ok
	}
	return false
}
