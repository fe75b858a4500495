package dashboard

import "time"

// fallbackTimestamp marks fallback snapshots with a fixed instant so the
// generator stays a pure function of nothing.
var fallbackTimestamp = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

// FallbackSnapshot is the deterministic substitute used when the primary
// store is unreachable. It is total: it allocates fresh maps, touches no
// shared state, and cannot fail.
func FallbackSnapshot() StatsSnapshot {
	return StatsSnapshot{
		TotalSpecies:      142,
		TotalSequences:    387,
		EndangeredSpecies: 23,
		SpeciesByZone: map[string]int{
			"intertidal": 31,
			"pelagic":    48,
			"benthic":    37,
			"abyssal":    9,
			"coral_reef": 17,
		},
		SequencesByType: map[string]int{
			"DNA":  251,
			"RNA":  82,
			"mRNA": 39,
			"rRNA": 15,
		},
		LastUpdated: fallbackTimestamp,
	}
}
