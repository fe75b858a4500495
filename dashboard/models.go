package dashboard

import "time"

// Source labels where a snapshot came from. It is internal bookkeeping; the
// response shape is identical either way.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// StatsSnapshot is the dashboard summary. Every snapshot is fully populated
// from exactly one source; live and fallback values are never mixed.
type StatsSnapshot struct {
	TotalSpecies      int            `json:"totalSpecies"`
	TotalSequences    int            `json:"totalSequences"`
	EndangeredSpecies int            `json:"endangeredSpecies"`
	SpeciesByZone     map[string]int `json:"speciesByZone"`
	SequencesByType   map[string]int `json:"sequencesByType"`
	LastUpdated       time.Time      `json:"lastUpdated"`
}
