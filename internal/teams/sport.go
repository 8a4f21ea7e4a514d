package teams

import "sync"

// Sport identifies which league partition a team belongs to.
type Sport string

const (
	Basketball Sport = "basketball"
	Football   Sport = "football"
	Hockey     Sport = "hockey"
)

// sportPriority is the partition order used when a lookup carries no sport
// hint and an alias collides across leagues (bare "hawks" matches both NBA
// Atlanta and fragments of NFL Seattle). Basketball-first mirrors the
// historically dominant interpretation. The order is written exactly once,
// at startup through SetDefaultSportPriority; afterwards it is as immutable
// as the alias tables themselves.
var (
	sportPriority     = []Sport{Basketball, Football, Hockey}
	sportPriorityOnce sync.Once
)

// SetDefaultSportPriority moves first to the front of the cross-partition
// search order. Only the first valid call takes effect; later calls are
// no-ops, so the order cannot change underneath concurrent lookups.
func SetDefaultSportPriority(first Sport) {
	if !ValidSport(first) {
		return
	}
	sportPriorityOnce.Do(func() {
		ordered := []Sport{first}
		for _, s := range sportPriority {
			if s != first {
				ordered = append(ordered, s)
			}
		}
		sportPriority = ordered
	})
}

// ValidSport reports whether s names a supported league partition.
func ValidSport(s Sport) bool {
	switch s {
	case Basketball, Football, Hockey:
		return true
	}
	return false
}

// TeamInfo identifies a canonical team.
type TeamInfo struct {
	Name         string `json:"name"`         // "Los Angeles Lakers"
	City         string `json:"city"`         // market name, e.g. "Los Angeles", "Golden State"
	Abbreviation string `json:"abbreviation"` // "LAL"
	Sport        Sport  `json:"sport"`
}

// Nickname returns the team name with the market prefix stripped,
// e.g. "Lakers" or "Trail Blazers".
func (t *TeamInfo) Nickname() string {
	if len(t.Name) > len(t.City)+1 && t.Name[:len(t.City)] == t.City {
		return t.Name[len(t.City)+1:]
	}
	return t.Name
}
