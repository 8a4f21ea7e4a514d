package teams

import (
	"fmt"
	"sort"
	"strings"
)

// MatchType describes how a resolution was obtained.
type MatchType string

const (
	MatchExact   MatchType = "exact"   // normalized input equals a known alias
	MatchPartial MatchType = "partial" // substring containment against the alias table
	MatchFuzzy   MatchType = "fuzzy"   // alias mention found while scanning raw text
)

// Resolution is a successful team lookup.
type Resolution struct {
	Team      *TeamInfo `json:"team"`
	Sport     Sport     `json:"sport"`
	MatchType MatchType `json:"match_type"`
}

// NotFoundError reports a failed lookup along with up to five ranked
// suggestions the caller can surface to the user.
type NotFoundError struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions,omitempty"`
}

func (e *NotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("team %q not found, please check the name", e.Query)
	}
	return fmt.Sprintf("team %q not found, did you mean: %s", e.Query, strings.Join(e.Suggestions, ", "))
}

// aliasRecord is one alias-table row.
type aliasRecord struct {
	norm   string // alphanumeric-only lowercase form, used for lookups
	spaced string // lowercase form with spaces kept, used for raw-text scanning
	team   *TeamInfo
}

type aliasIndex struct {
	bySport map[Sport]map[string]*TeamInfo
	ordered map[Sport][]aliasRecord // sorted longest-alias-first for deterministic substring matches
}

// index is built once at init and never mutated afterwards; all lookups are
// read-only so concurrent use needs no locking.
var index = buildIndex()

func buildIndex() *aliasIndex {
	idx := &aliasIndex{
		bySport: make(map[Sport]map[string]*TeamInfo),
		ordered: make(map[Sport][]aliasRecord),
	}

	for _, sport := range []Sport{Basketball, Football, Hockey} {
		idx.bySport[sport] = make(map[string]*TeamInfo)
		for i := range entriesForSport(sport) {
			entry := entriesForSport(sport)[i]
			team := &entry.info

			aliases := []string{team.Name, team.City, team.Abbreviation, team.Nickname()}
			aliases = append(aliases, entry.extra...)
			for _, a := range aliases {
				idx.register(sport, a, team)
			}
		}
		recs := idx.ordered[sport]
		sort.Slice(recs, func(i, j int) bool {
			if len(recs[i].norm) != len(recs[j].norm) {
				return len(recs[i].norm) > len(recs[j].norm)
			}
			return recs[i].norm < recs[j].norm
		})
	}
	return idx
}

// register adds one alias, keep-first on collisions within a partition so
// shared markets resolve to the first franchise listed in the table.
func (idx *aliasIndex) register(sport Sport, alias string, team *TeamInfo) {
	norm := normalizeAlias(alias)
	if norm == "" {
		return
	}
	if _, taken := idx.bySport[sport][norm]; taken {
		return
	}
	idx.bySport[sport][norm] = team
	idx.ordered[sport] = append(idx.ordered[sport], aliasRecord{
		norm:   norm,
		spaced: strings.ToLower(strings.TrimSpace(alias)),
		team:   team,
	})
}

// Normalize is the canonical alias normalization: lowercase with everything
// except letters and digits stripped. Collaborators that key tables by team
// name use the same form so their lookups agree with resolution.
func Normalize(s string) string {
	return normalizeAlias(s)
}

// normalizeAlias lowercases and strips everything except letters and digits.
func normalizeAlias(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// partitions returns the sport partitions to search, hint-scoped when a hint
// is present, otherwise in the configured cross-partition priority order.
func partitions(hint Sport) []Sport {
	if ValidSport(hint) {
		return []Sport{hint}
	}
	return sportPriority
}

// Resolve maps free-text input to a canonical team. Priority: exact
// normalized match, then partial containment against the alias table, then a
// word-boundary scan of the raw text, within the hinted sport partition
// first. Failure carries ranked suggestions.
func Resolve(text string, hint Sport) (*Resolution, error) {
	q := normalizeAlias(text)
	if q == "" {
		return nil, &NotFoundError{Query: text}
	}

	for _, sport := range partitions(hint) {
		if team, ok := index.bySport[sport][q]; ok {
			return &Resolution{Team: team, Sport: sport, MatchType: MatchExact}, nil
		}
	}

	// Prefix-style partial input: the query is contained in a known alias.
	// Guard very short inputs: two characters would match half the table.
	if len(q) >= 3 {
		for _, sport := range partitions(hint) {
			for _, rec := range index.ordered[sport] {
				if len(rec.norm) < 3 {
					continue
				}
				if strings.Contains(rec.norm, q) {
					return &Resolution{Team: rec.team, Sport: sport, MatchType: MatchPartial}, nil
				}
			}
		}

		// The opposite direction, an alias buried in longer input
		// ("Lakers -5.5"), scans the raw text at word boundaries. Containment
		// on the normalized form would let short abbreviations fire mid-word:
		// "the Chiefs" contains CHI.
		if ms := Mentions(text, hint); len(ms) > 0 {
			m := ms[0]
			return &Resolution{Team: m.Team, Sport: m.Team.Sport, MatchType: MatchFuzzy}, nil
		}
	}

	return nil, &NotFoundError{Query: text, Suggestions: Suggest(text, hint, 5)}
}

// Suggest returns up to max canonical team names whose aliases partially
// overlap the search term, best matches first.
func Suggest(text string, hint Sport, max int) []string {
	q := normalizeAlias(text)
	if q == "" || max <= 0 {
		return nil
	}

	type scored struct {
		name  string
		score int
	}
	var candidates []scored
	seen := make(map[string]bool)

	for _, sport := range partitions(hint) {
		for _, rec := range index.ordered[sport] {
			if seen[rec.team.Name] {
				continue
			}
			s := overlapScore(q, rec.norm)
			if s < 2 {
				continue
			}
			seen[rec.team.Name] = true
			candidates = append(candidates, scored{name: rec.team.Name, score: s})
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}
		return candidates[i].name < candidates[j].name
	})

	if len(candidates) > max {
		candidates = candidates[:max]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.name
	}
	return out
}

// overlapScore is a cheap similarity rank: full containment beats a shared
// prefix, longer shared prefixes beat shorter ones.
func overlapScore(q, alias string) int {
	if strings.Contains(alias, q) || strings.Contains(q, alias) {
		return len(alias) + 10
	}
	n := 0
	for n < len(q) && n < len(alias) && q[n] == alias[n] {
		n++
	}
	return n
}

// List returns the canonical teams of a sport in table order.
func List(sport Sport) []TeamInfo {
	entries := entriesForSport(sport)
	out := make([]TeamInfo, len(entries))
	for i, e := range entries {
		out[i] = e.info
	}
	return out
}
