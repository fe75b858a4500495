package species

import "time"

type MarineZone string

const (
	ZoneIntertidal MarineZone = "intertidal"
	ZonePelagic    MarineZone = "pelagic"
	ZoneBenthic    MarineZone = "benthic"
	ZoneAbyssal    MarineZone = "abyssal"
	ZoneReef       MarineZone = "coral_reef"
)

type ConservationStatus string

const (
	StatusLeastConcern         ConservationStatus = "least_concern"
	StatusNearThreatened       ConservationStatus = "near_threatened"
	StatusVulnerable           ConservationStatus = "vulnerable"
	StatusEndangered           ConservationStatus = "endangered"
	StatusCriticallyEndangered ConservationStatus = "critically_endangered"
)

// Record is a single species entry. No uniqueness is enforced at this layer;
// the same organism may legitimately appear under revised taxonomy.
type Record struct {
	ID                 string             `json:"id"`
	ScientificName     string             `json:"scientificName"`
	CommonName         string             `json:"commonName"`
	Genus              string             `json:"genus"`
	Family             string             `json:"family"`
	MarineZone         MarineZone         `json:"marineZone"`
	ConservationStatus ConservationStatus `json:"conservationStatus"`
	Description        string             `json:"description"`
	LastUpdated        time.Time          `json:"lastUpdated"`
}

// Filters is the species filter descriptor. Zero-valued fields impose no
// constraint. Search composes an OR across the four free-text name fields and
// is independent of the per-field filters.
type Filters struct {
	Search             string
	Genus              string
	Family             string
	MarineZone         MarineZone
	ConservationStatus ConservationStatus
	Page               int
	Limit              int
}

// CreateParams contains write parameters for new species records.
type CreateParams struct {
	ScientificName     string
	CommonName         string
	Genus              string
	Family             string
	MarineZone         MarineZone
	ConservationStatus ConservationStatus
	Description        string
}
