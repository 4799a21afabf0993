package domain

import "time"

// SearchDomain - один из трёх независимых доменов поиска
type SearchDomain string

const (
	DomainProperties SearchDomain = "properties"
	DomainAgencies   SearchDomain = "agencies"
	DomainAgents     SearchDomain = "agents"
)

// Domains - все домены в фиксированном порядке
func Domains() []SearchDomain {
	return []SearchDomain{DomainProperties, DomainAgencies, DomainAgents}
}

// Valid проверяет имя домена
func (d SearchDomain) Valid() bool {
	switch d {
	case DomainProperties, DomainAgencies, DomainAgents:
		return true
	}
	return false
}

// DomainState - состояние домена в оркестраторе поиска
type DomainState string

const (
	StateIdle    DomainState = "idle"
	StateLoading DomainState = "loading"
	StateLoaded  DomainState = "loaded"
	StateError   DomainState = "error"
)

// SearchResultSet - результат запроса одного домена. После создания
// не изменяется; вытесняется политикой GC кеша результатов.
type SearchResultSet struct {
	Domain          SearchDomain `json:"domain"`
	Location        string       `json:"location"`
	FilterSignature string       `json:"filter_signature"`
	Properties      []Property   `json:"properties,omitempty"`
	Agencies        []Agency     `json:"agencies,omitempty"`
	Agents          []Agent      `json:"agents,omitempty"`
	FetchedAt       time.Time    `json:"fetched_at"`
}

// Len - число элементов в результате независимо от домена
func (rs *SearchResultSet) Len() int {
	switch rs.Domain {
	case DomainAgencies:
		return len(rs.Agencies)
	case DomainAgents:
		return len(rs.Agents)
	default:
		return len(rs.Properties)
	}
}
