package domain

import "strings"

// mlbAbbreviations maps full MLB team names to the short forms the display
// uses. The upstream schedule payload carries its own abbreviations, but the
// display forms differ for a handful of clubs (CUBS, SOX, ATH), so this table
// wins over whatever the payload says.
var mlbAbbreviations = map[string]string{
	"Chicago Cubs":          "CUBS",
	"Atlanta Braves":        "ATL",
	"Miami Marlins":         "MIA",
	"New York Mets":         "NYM",
	"Philadelphia Phillies": "PHI",
	"Washington Nationals":  "WAS",
	"Cincinnati Reds":       "CIN",
	"Milwaukee Brewers":     "MIL",
	"Pittsburgh Pirates":    "PIT",
	"St. Louis Cardinals":   "STL",
	"Arizona Diamondbacks":  "ARI",
	"Colorado Rockies":      "COL",
	"Los Angeles Dodgers":   "LAD",
	"San Diego Padres":      "SD",
	"San Francisco Giants":  "SF",
	"Baltimore Orioles":     "BAL",
	"Boston Red Sox":        "BOS",
	"New York Yankees":      "NYY",
	"Tampa Bay Rays":        "TB",
	"Toronto Blue Jays":     "TOR",
	"Chicago White Sox":     "SOX",
	"Cleveland Guardians":   "CLE",
	"Detroit Tigers":        "DET",
	"Kansas City Royals":    "KC",
	"Minnesota Twins":       "MIN",
	"Houston Astros":        "HOU",
	"Los Angeles Angels":    "LAA",
	"Athletics":             "ATH",
	"Seattle Mariners":      "SEA",
	"Texas Rangers":         "TEX",
}

// ResolveAbbreviation picks a display abbreviation for a team. The explicit
// lookup table has highest priority, then whatever abbreviation-like value the
// upstream payload provided, then the raw name. The result is never empty when
// a name is present.
func ResolveAbbreviation(displayName, upstream string) string {
	if abbr, ok := mlbAbbreviations[strings.TrimSpace(displayName)]; ok {
		return abbr
	}
	if upstream = strings.TrimSpace(upstream); upstream != "" {
		return strings.ToUpper(upstream)
	}
	return strings.ToUpper(strings.TrimSpace(displayName))
}
