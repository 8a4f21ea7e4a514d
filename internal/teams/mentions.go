package teams

import (
	"sort"
	"strings"
)

// Mention is a team alias found while scanning raw text.
type Mention struct {
	Team  *TeamInfo
	Alias string // the alias form that matched
	Index int    // byte offset of the match in the scanned text
}

// scanStopwords are short aliases that collide with common English words and
// would produce garbage mentions when scanning prose ("was", "no", ...).
// They still work for exact lookups, just not for free-text scanning.
var scanStopwords = map[string]bool{
	"was": true, "no": true, "ny": true, "gb": true, "ne": true,
	"la": true, "lv": true, "kc": true, "sf": true, "tb": true,
}

// Mentions scans raw text for team alias occurrences and returns one mention
// per distinct team, ordered by position of first appearance. Ordering is
// deterministic by string index, never by alias-table order.
func Mentions(text string, hint Sport) []Mention {
	lower := strings.ToLower(text)

	best := make(map[*TeamInfo]Mention)
	for _, sport := range partitions(hint) {
		for _, rec := range index.ordered[sport] {
			if scanStopwords[rec.spaced] {
				continue
			}
			// Two-letter fragments match far too much prose.
			if len(rec.spaced) < 3 {
				continue
			}
			pos := findWord(lower, rec.spaced)
			if pos < 0 {
				continue
			}
			prev, seen := best[rec.team]
			if !seen || pos < prev.Index || (pos == prev.Index && len(rec.spaced) > len(prev.Alias)) {
				best[rec.team] = Mention{Team: rec.team, Alias: rec.spaced, Index: pos}
			}
		}
	}

	out := make([]Mention, 0, len(best))
	for _, m := range best {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Index != out[j].Index {
			return out[i].Index < out[j].Index
		}
		return out[i].Team.Name < out[j].Team.Name
	})
	return out
}

// findWord locates needle in haystack at word boundaries, returning the byte
// offset of the first such occurrence or -1.
func findWord(haystack, needle string) int {
	from := 0
	for {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return -1
		}
		pos := from + i
		end := pos + len(needle)
		startOK := pos == 0 || !isWordChar(haystack[pos-1])
		endOK := end == len(haystack) || !isWordChar(haystack[end])
		if startOK && endOK {
			return pos
		}
		from = pos + 1
		if from >= len(haystack) {
			return -1
		}
	}
}

func isWordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}
