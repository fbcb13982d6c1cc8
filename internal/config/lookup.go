package config

import (
	"strings"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/resolve"
)

// keyAliases maps a canonical option key to the older spellings the widget
// still accepts. Aliases are checked after the canonical key, in order.
var keyAliases = map[string][]string{
	"gamesPerColumn": {"scoreboardRows", "rowsPerColumn"},
}

// ValueForLeague resolves an option for a league from the free-form option
// map. For each alias in order, the precedence is: league-suffixed key
// ("scoreboardColumns_nhl"), then a map-valued base key indexed by league
// (exact, lowercase, uppercase, then its "default" entry), then the plain
// key. Historical widget revisions disagreed on this order; this total order
// is the contract.
func ValueForLeague(opts map[string]any, key string, league domain.League) (any, bool) {
	if len(opts) == 0 {
		return nil, false
	}

	for _, candidate := range expandAliases(key) {
		if league != "" {
			if v, ok := opts[candidate+"_"+string(league)]; ok {
				return v, true
			}
		}

		base, present := opts[candidate]
		if !present {
			continue
		}

		if byLeague, ok := base.(map[string]any); ok {
			if league != "" {
				for _, lk := range []string{string(league), strings.ToLower(string(league)), strings.ToUpper(string(league))} {
					if v, ok := byLeague[lk]; ok {
						return v, true
					}
				}
			}
			if v, ok := byLeague["default"]; ok {
				return v, true
			}
			continue
		}

		if base != nil {
			return base, true
		}
	}

	return nil, false
}

// IntForLeague is ValueForLeague with numeric coercion.
func IntForLeague(opts map[string]any, key string, league domain.League) (int, bool) {
	v, ok := ValueForLeague(opts, key, league)
	if !ok {
		return 0, false
	}
	return resolve.Int(v)
}

func expandAliases(key string) []string {
	keys := []string{key}
	for _, alias := range keyAliases[key] {
		if alias != key {
			keys = append(keys, alias)
		}
	}
	return keys
}
