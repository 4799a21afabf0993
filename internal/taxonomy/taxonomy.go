package taxonomy

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed catalog.json
var defaultCatalog []byte

// catalog - формат статического справочника локаций
type catalog struct {
	Cities []catalogCity `json:"cities"`
}

type catalogCity struct {
	Name      string            `json:"name"`
	Districts []catalogDistrict `json:"districts"`
}

type catalogDistrict struct {
	Name          string   `json:"name"`
	Neighborhoods []string `json:"neighborhoods"`
}

// Taxonomy - неизменяемый справочник город -> район -> баррио с обратным
// индексом баррио -> район. Загружается один раз на старте процесса и
// безопасно разделяется между запросами без синхронизации.
type Taxonomy struct {
	cities []string

	// каноническое написание по свёрнутому ключу
	cityByFold map[string]string

	districtsByCity      map[string][]string            // foldCity -> districts
	districtByFold       map[string]map[string]string   // foldCity -> foldDistrict -> canonical
	neighborhoodsByDist  map[string]map[string][]string // foldCity -> foldDistrict -> neighborhoods
	allNeighborhoods     map[string][]string            // foldCity -> все баррио в каталожном порядке
	reverseDistrict      map[string]map[string]string   // foldCity -> foldNeighborhood -> district
	neighborhoodCanon    map[string]map[string]string   // foldCity -> foldNeighborhood -> canonical
	cityByNeighborhood   map[string][]string            // foldNeighborhood -> города, где есть такое баррио
}

// Load строит таксономию из JSON-каталога
func Load(data []byte) (*Taxonomy, error) {
	var cat catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, fmt.Errorf("failed to parse location catalog: %w", err)
	}
	if len(cat.Cities) == 0 {
		return nil, fmt.Errorf("location catalog is empty")
	}

	t := &Taxonomy{
		cityByFold:          make(map[string]string),
		districtsByCity:     make(map[string][]string),
		districtByFold:      make(map[string]map[string]string),
		neighborhoodsByDist: make(map[string]map[string][]string),
		allNeighborhoods:    make(map[string][]string),
		reverseDistrict:     make(map[string]map[string]string),
		neighborhoodCanon:   make(map[string]map[string]string),
		cityByNeighborhood:  make(map[string][]string),
	}

	for _, city := range cat.Cities {
		fc := Fold(city.Name)
		t.cities = append(t.cities, city.Name)
		t.cityByFold[fc] = city.Name
		t.districtByFold[fc] = make(map[string]string)
		t.neighborhoodsByDist[fc] = make(map[string][]string)
		t.reverseDistrict[fc] = make(map[string]string)
		t.neighborhoodCanon[fc] = make(map[string]string)

		for _, d := range city.Districts {
			fd := Fold(d.Name)
			t.districtsByCity[fc] = append(t.districtsByCity[fc], d.Name)
			t.districtByFold[fc][fd] = d.Name
			t.neighborhoodsByDist[fc][fd] = append([]string(nil), d.Neighborhoods...)

			for _, n := range d.Neighborhoods {
				fn := Fold(n)
				t.allNeighborhoods[fc] = append(t.allNeighborhoods[fc], n)
				t.reverseDistrict[fc][fn] = d.Name
				t.neighborhoodCanon[fc][fn] = n
				t.cityByNeighborhood[fn] = append(t.cityByNeighborhood[fn], city.Name)
			}
		}
	}

	return t, nil
}

// Default строит таксономию из встроенного каталога
func Default() (*Taxonomy, error) {
	return Load(defaultCatalog)
}

// CitiesAvailable - все города в каталожном порядке
func (t *Taxonomy) CitiesAvailable() []string {
	return append([]string(nil), t.cities...)
}

// DefaultCity - первый город каталога; последний рубеж тотального декодера
func (t *Taxonomy) DefaultCity() string {
	return t.cities[0]
}

// CanonicalCity возвращает каталожное написание города
func (t *Taxonomy) CanonicalCity(city string) (string, bool) {
	name, ok := t.cityByFold[Fold(city)]
	return name, ok
}

// DistrictsOf - районы города в каталожном порядке; пусто для неизвестного города
func (t *Taxonomy) DistrictsOf(city string) []string {
	return append([]string(nil), t.districtsByCity[Fold(city)]...)
}

// CanonicalDistrict возвращает каталожное написание района города
func (t *Taxonomy) CanonicalDistrict(district, city string) (string, bool) {
	byFold, ok := t.districtByFold[Fold(city)]
	if !ok {
		return "", false
	}
	name, ok := byFold[Fold(district)]
	return name, ok
}

// NeighborhoodsOf - баррио района в каталожном порядке; пусто для неизвестных входов
func (t *Taxonomy) NeighborhoodsOf(district, city string) []string {
	byDist, ok := t.neighborhoodsByDist[Fold(city)]
	if !ok {
		return nil
	}
	return append([]string(nil), byDist[Fold(district)]...)
}

// AllNeighborhoodsOf - все баррио города, развёрнутые по районам
func (t *Taxonomy) AllNeighborhoodsOf(city string) []string {
	return append([]string(nil), t.allNeighborhoods[Fold(city)]...)
}

// DistrictOf - район баррио через предвычисленный обратный индекс, O(1).
// Вызывается при рендере каждого объявления.
func (t *Taxonomy) DistrictOf(neighborhood, city string) (string, bool) {
	byFold, ok := t.reverseDistrict[Fold(city)]
	if !ok {
		return "", false
	}
	d, ok := byFold[Fold(neighborhood)]
	return d, ok
}

// CanonicalNeighborhood возвращает каталожное написание баррио города
func (t *Taxonomy) CanonicalNeighborhood(neighborhood, city string) (string, bool) {
	byFold, ok := t.neighborhoodCanon[Fold(city)]
	if !ok {
		return "", false
	}
	n, ok := byFold[Fold(neighborhood)]
	return n, ok
}

// cityOfNeighborhood находит город баррио для свободного текста без города.
// Возвращает первый подходящий город в каталожном порядке.
func (t *Taxonomy) cityOfNeighborhood(neighborhood string) (string, bool) {
	cities := t.cityByNeighborhood[Fold(neighborhood)]
	if len(cities) == 0 {
		return "", false
	}
	return cities[0], true
}
