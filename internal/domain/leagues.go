package domain

import "strings"

// League identifies which adapter produced a game.
type League string

const (
	LeagueMLB League = "mlb"
	LeagueNHL League = "nhl"
	LeagueNFL League = "nfl"
	LeagueNBA League = "nba"
)

// SupportedLeagues lists the leagues in their canonical rotation order.
var SupportedLeagues = []League{LeagueMLB, LeagueNHL, LeagueNFL, LeagueNBA}

// DefaultLeague is used when configuration names no league at all.
const DefaultLeague = LeagueMLB

// ParseLeague normalizes a single league token. Unknown tokens are rejected.
func ParseLeague(value string) (League, bool) {
	token := League(strings.ToLower(strings.TrimSpace(value)))
	for _, l := range SupportedLeagues {
		if token == l {
			return l, true
		}
	}
	return "", false
}

// CoerceLeagues turns free-form config input (single values, lists, comma or
// whitespace separated strings) into a de-duplicated league list. The token
// "all" expands to every supported league. An empty result falls back to the
// default league.
func CoerceLeagues(values ...string) []League {
	var tokens []string
	for _, v := range values {
		for _, part := range strings.FieldsFunc(v, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n'
		}) {
			if part != "" {
				tokens = append(tokens, part)
			}
		}
	}

	leagues := make([]League, 0, len(tokens))
	seen := make(map[League]struct{})
	for _, token := range tokens {
		if strings.EqualFold(token, "all") {
			return append([]League(nil), SupportedLeagues...)
		}
		league, ok := ParseLeague(token)
		if !ok {
			continue
		}
		if _, dup := seen[league]; dup {
			continue
		}
		seen[league] = struct{}{}
		leagues = append(leagues, league)
	}

	if len(leagues) == 0 {
		return []League{DefaultLeague}
	}
	return leagues
}
