package parse

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"bet-advisor/internal/teams"
)

// Pass 1: explicit league tokens.

var leagueTokens = []struct {
	re    *regexp.Regexp
	sport teams.Sport
}{
	{regexp.MustCompile(`(?i)\b(nfl|cfb|college football)\b`), teams.Football},
	{regexp.MustCompile(`(?i)\b(nba|cbb|college basketball|march madness)\b`), teams.Basketball},
	{regexp.MustCompile(`(?i)\b(nhl|hockey)\b`), teams.Hockey},
}

func detectSport(text string) teams.Sport {
	for _, lt := range leagueTokens {
		if lt.re.MatchString(text) {
			return lt.sport
		}
	}
	return ""
}

// Pass 2: team pair extraction. Explicit matchup patterns are tried in
// order; each stops the right-hand token at comma/period/semicolon/paren.
// When none yields two resolvable teams, fall back to scanning the whole
// text for the first two distinct alias mentions in order of appearance.

var pairPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*(.{2,60}?)\s+(?:at|@)\s+([^,.;:()]{2,40})`),
	regexp.MustCompile(`(?i)^\s*(.{2,60}?)\s+vs\.?\s+([^,.;:()]{2,40})`),
	regexp.MustCompile(`(?i)^\s*(.{2,60}?)\s+versus\s+([^,.;:()]{2,40})`),
}

func extractTeams(text string, hint teams.Sport) (*teams.TeamInfo, *teams.TeamInfo, *Error) {
	for _, re := range pairPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		a, errA := teams.Resolve(m[1], hint)
		b, errB := teams.Resolve(m[2], hint)
		if errA != nil || errB != nil {
			continue
		}
		if a.Team == b.Team {
			return nil, nil, &Error{
				Reason:              ReasonSameTeamTwice,
				ClarificationNeeded: []string{"both sides of the matchup resolved to " + a.Team.Name + "; who is the opponent"},
			}
		}
		return a.Team, b.Team, nil
	}

	// Fuzzy fallback: first two distinct alias mentions by string index.
	mentions := teams.Mentions(text, hint)
	if len(mentions) >= 2 {
		return mentions[0].Team, mentions[1].Team, nil
	}

	clar := "which two teams are playing"
	if len(mentions) == 1 {
		clar = "only identified " + mentions[0].Team.Name + "; who is the opponent"
	}
	return nil, nil, &Error{
		Reason:              ReasonTeamsNotIdentified,
		ClarificationNeeded: []string{clar},
	}
}

// Pass 4: spread extraction. Patterns are tried in order; the first
// successful one wins.

var (
	// Explicit signed number, optional point suffix: "-6.5", "+3 pts".
	signedSpreadRe = regexp.MustCompile(`([+-])\s?(\d{1,2}(?:\.\d+)?)\s*(?:pts?\b|points?\b)?`)
	// Unsigned number with a mandatory point suffix: "6.5 points".
	suffixSpreadRe = regexp.MustCompile(`(?i)\b(\d{1,2}(?:\.\d+)?)\s*(?:pts?|points?)\b`)
	// "favored by 3" / "3 point favorites": always the favorite's (negative) line.
	favoredByRe  = regexp.MustCompile(`(?i)\bfavou?red\s+by\s+(\d{1,2}(?:\.\d+)?)`)
	favoritesRe  = regexp.MustCompile(`(?i)\b(\d{1,2}(?:\.\d+)?)\s*(?:-?\s*(?:pt|pts|point|points))?\s+favou?rites?\b`)
	underdogsRe  = regexp.MustCompile(`(?i)\b(\d{1,2}(?:\.\d+)?)\s*(?:-?\s*(?:pt|pts|point|points))?\s+(?:underdogs?|dogs?)\b`)
	spelledOutRe = regexp.MustCompile(`(?i)\b(minus|plus)\s+(one|two|three|four|five|six|seven)(\s+and\s+a\s+half)?\b`)
)

var spelledNumbers = map[string]float64{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5, "six": 6, "seven": 7,
}

// Plausible spread magnitudes. Filters out years, scores, and odds quotes.
const (
	minSpreadMagnitude = 0.5
	maxSpreadMagnitude = 50.0
)

func plausibleSpread(v float64) bool {
	m := math.Abs(v)
	return m >= minSpreadMagnitude && m <= maxSpreadMagnitude
}

// extractSpread returns the spread value as written, its byte offset in the
// text, and whether any pattern succeeded.
func extractSpread(text string) (float64, int, bool) {
	// An odds quote ("-110") can appear before the spread, so every signed
	// match is considered, not just the first. The pattern caps the number at
	// two digits and regexp has no lookahead, so "-110" surfaces here as a
	// candidate "-11" and a score "110-105" as "-10"; a candidate whose
	// digits continue past the match is rejected.
	for _, loc := range signedSpreadRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[5] < len(text) && isDigit(text[loc[5]]) {
			continue
		}
		v, _ := strconv.ParseFloat(text[loc[4]:loc[5]], 64)
		if text[loc[2]:loc[3]] == "-" {
			v = -v
		}
		if plausibleSpread(v) {
			return v, loc[0], true
		}
	}

	if loc := favoredByRe.FindStringSubmatchIndex(text); loc != nil {
		m := favoredByRe.FindStringSubmatch(text)
		v, _ := strconv.ParseFloat(m[1], 64)
		if plausibleSpread(v) {
			return -v, loc[0], true
		}
	}

	if loc := favoritesRe.FindStringSubmatchIndex(text); loc != nil {
		m := favoritesRe.FindStringSubmatch(text)
		v, _ := strconv.ParseFloat(m[1], 64)
		if plausibleSpread(v) {
			return -v, loc[0], true
		}
	}

	if loc := underdogsRe.FindStringSubmatchIndex(text); loc != nil {
		m := underdogsRe.FindStringSubmatch(text)
		v, _ := strconv.ParseFloat(m[1], 64)
		if plausibleSpread(v) {
			return v, loc[0], true
		}
	}

	// Bare "N points" reads as the favorite's line, so it must lose to the
	// explicit favorite/underdog phrasings above ("4 point underdogs" is +4).
	if loc := suffixSpreadRe.FindStringSubmatchIndex(text); loc != nil {
		m := suffixSpreadRe.FindStringSubmatch(text)
		v, _ := strconv.ParseFloat(m[1], 64)
		if plausibleSpread(v) {
			return -v, loc[0], true
		}
	}

	if loc := spelledOutRe.FindStringSubmatchIndex(text); loc != nil {
		m := spelledOutRe.FindStringSubmatch(text)
		v := spelledNumbers[strings.ToLower(m[2])]
		if m[3] != "" {
			v += 0.5
		}
		if strings.EqualFold(m[1], "minus") {
			v = -v
		}
		if plausibleSpread(v) {
			return v, loc[0], true
		}
	}

	return 0, 0, false
}

// Pass 5: spread-team attribution by proximity. The spread belongs to
// whichever team has an alias occurrence closest to the spread number. Every
// occurrence counts, not just the first: "Panthers vs Rangers, Panthers -1.5"
// ties the number to the repeated Panthers. Nil when neither team is near
// enough to claim it.
func attributeSpread(text string, spreadIdx int, teamA, teamB *teams.TeamInfo, mentions []teams.Mention) *teams.TeamInfo {
	const maxAttributionDistance = 30
	lower := strings.ToLower(text)

	bestDist := maxAttributionDistance + 1
	var best *teams.TeamInfo
	for _, m := range mentions {
		if m.Team != teamA && m.Team != teamB {
			continue
		}
		d := nearestGap(lower, m.Alias, spreadIdx)
		if d >= 0 && d < bestDist {
			bestDist = d
			best = m.Team
		}
	}
	return best
}

// nearestGap returns the smallest gap in bytes between any word-bounded
// occurrence of alias and the spread position, or -1 when alias never occurs.
// An occurrence ending right before the spread has gap 1, so "Lakers -5.5"
// beats the opposing team across the comma.
func nearestGap(lower, alias string, spreadIdx int) int {
	best := -1
	from := 0
	for from < len(lower) {
		i := strings.Index(lower[from:], alias)
		if i < 0 {
			break
		}
		pos := from + i
		end := pos + len(alias)
		startOK := pos == 0 || !wordChar(lower[pos-1])
		endOK := end == len(lower) || !wordChar(lower[end])
		if startOK && endOK {
			var d int
			switch {
			case end <= spreadIdx:
				d = spreadIdx - end
			case pos > spreadIdx:
				d = pos - spreadIdx
			}
			if best < 0 || d < best {
				best = d
			}
		}
		from = pos + 1
	}
	return best
}

func wordChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Pass 6: first-person betting intent.

var pickPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bi\s*'?\s*a?m\s+taking\s+(?:the\s+)?([a-z0-9 .'\-]{3,40})`),
	regexp.MustCompile(`(?i)\bmy\s+pick\s+is\s+(?:the\s+)?([a-z0-9 .'\-]{3,40})`),
	regexp.MustCompile(`(?i)\bbetting\s+on\s+(?:the\s+)?([a-z0-9 .'\-]{3,40})`),
	regexp.MustCompile(`(?i)\bgoing\s+with\s+(?:the\s+)?([a-z0-9 .'\-]{3,40})`),
	regexp.MustCompile(`(?i)\bbacking\s+(?:the\s+)?([a-z0-9 .'\-]{3,40})`),
	regexp.MustCompile(`(?i)\btake\s+(?:the\s+)?([a-z0-9 .'\-]{3,40})`),
}

func extractPick(text string, hint teams.Sport, teamA, teamB *teams.TeamInfo) *teams.TeamInfo {
	for _, re := range pickPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		r, err := teams.Resolve(m[1], hint)
		if err != nil {
			continue
		}
		if r.Team == teamA || r.Team == teamB {
			return r.Team
		}
	}
	return nil
}

// Pass 8: venue inference.

var (
	neutralRe  = regexp.MustCompile(`(?i)\bneutral\s+(?:site|court|field|venue|ice)\b`)
	locationRe = regexp.MustCompile(`(?i)\b(?:at|in)\s+(?:the\s+)?([A-Za-z][A-Za-z .'\-]{2,30})`)
	homeRe     = regexp.MustCompile(`(?i)\b(?:at\s+home|home\s+game|home\s+court|home\s+field|at\s+their\s+place)\b`)
	awayRe     = regexp.MustCompile(`(?i)\b(?:on\s+the\s+road|away\s+game|road\s+game|away)\b`)
)

// venueProximity bounds how far a home/away phrase may sit from a mention of
// the picked team before it stops counting as evidence about that team.
const venueProximity = 40

func extractVenue(text string, pick, opponent *teams.TeamInfo, mentions []teams.Mention) (Venue, bool) {
	// Explicit neutral wins outright.
	if neutralRe.MatchString(text) {
		return VenueNeutral, true
	}

	// "at/in LOCATION" where LOCATION resolves to one of the two teams (home
	// city or alias) makes that team the host.
	for _, m := range locationRe.FindAllStringSubmatch(text, -1) {
		r, err := teams.Resolve(strings.TrimSpace(m[1]), pick.Sport)
		if err != nil {
			continue
		}
		if r.Team == pick {
			return VenueHome, true
		}
		if r.Team == opponent {
			return VenueAway, true
		}
	}

	// Explicit home/away phrasing near a mention of the picked team.
	pickIdx := -1
	for _, m := range mentions {
		if m.Team == pick {
			pickIdx = m.Index
			break
		}
	}
	if pickIdx >= 0 {
		if loc := homeRe.FindStringIndex(text); loc != nil && near(loc[0], pickIdx, venueProximity) {
			return VenueHome, true
		}
		if loc := awayRe.FindStringIndex(text); loc != nil && near(loc[0], pickIdx, venueProximity) {
			return VenueAway, true
		}
	}

	return VenueNeutral, false
}

func near(a, b, within int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= within
}

// Pass 9: odds extraction. A 3-4 digit signed number adjacent to "odds" or
// "at"; spread-sized magnitudes are excluded by construction (|odds| >= 100).

var oddsRe = regexp.MustCompile(`(?i)\b(?:odds\s*(?:of|at|:)?\s*|at\s+)([+-]?\d{3,4})\b`)

func extractOdds(text string) (int, bool) {
	for _, m := range oddsRe.FindAllStringSubmatch(text, -1) {
		v, err := strconv.Atoi(strings.TrimPrefix(m[1], "+"))
		if err != nil {
			continue
		}
		if v >= 100 || v <= -100 {
			return v, true
		}
	}
	return 0, false
}
