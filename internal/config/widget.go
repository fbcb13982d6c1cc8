package config

import (
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mirrormods/scores-data-service/internal/domain"
)

// Widget mirrors the display widget's configuration object. Known options are
// typed; everything else (layout override keys in their many spellings) stays
// in Rest for league-scoped lookup.
type Widget struct {
	Leagues              LeagueList          `yaml:"leagues"`
	League               LeagueList          `yaml:"league"`
	TimeZone             string              `yaml:"timeZone"`
	UpdateIntervalScores Duration            `yaml:"updateIntervalScores"`
	RotateIntervalScores Duration            `yaml:"rotateIntervalScores"`
	LayoutScale          float64             `yaml:"layoutScale"`
	ShowNhlStandings     bool                `yaml:"showNhlStandings"`
	HighlightedTeams     map[string][]string `yaml:"highlightedTeams"`
	MaxWidth             string              `yaml:"maxWidth"`
	RightAligned         bool                `yaml:"rightAligned"`

	Rest map[string]any `yaml:",inline"`
}

// LoadWidget reads the widget config file. A missing file yields defaults.
func LoadWidget(path string) (Widget, error) {
	var w Widget
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return w, nil
		}
		return w, err
	}
	if err := yaml.Unmarshal(data, &w); err != nil {
		return Widget{}, fmt.Errorf("widget config %s: %w", path, err)
	}
	return w, nil
}

// ConfiguredLeagues resolves the league rotation list, honoring both the
// plural and singular config keys, defaulting to mlb.
func (w Widget) ConfiguredLeagues() []domain.League {
	tokens := w.Leagues
	if len(tokens) == 0 {
		tokens = w.League
	}
	return domain.CoerceLeagues(tokens...)
}

// UpdateInterval returns the score poll interval, clamped to the minimum.
func (w Widget) UpdateInterval() time.Duration {
	d := time.Duration(w.UpdateIntervalScores)
	if d <= 0 {
		return defaultUpdateInterval
	}
	if d < minUpdateInterval {
		return minUpdateInterval
	}
	return d
}

// RotateInterval returns the page rotation interval.
func (w Widget) RotateInterval() time.Duration {
	d := time.Duration(w.RotateIntervalScores)
	if d <= 0 {
		return defaultRotateInterval
	}
	return d
}

// Location resolves the configured timezone, defaulting to America/Chicago
// and falling back to UTC when the zone cannot be loaded.
func (w Widget) Location() *time.Location {
	tz := w.TimeZone
	if tz == "" {
		tz = defaultTimeZone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Scale returns the layout scale clamped to [0.6, 1.4], defaulting to 1 for
// non-finite or non-positive input.
func (w Widget) Scale() float64 {
	raw := w.LayoutScale
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw <= 0 {
		return defaultLayoutScale
	}
	if raw < minLayoutScale {
		return minLayoutScale
	}
	if raw > maxLayoutScale {
		return maxLayoutScale
	}
	return raw
}

// ShowStandings reports whether standings pages rotate in for the league.
func (w Widget) ShowStandings(league domain.League) bool {
	return league == domain.LeagueNHL && w.ShowNhlStandings
}

// MaxWidthValue returns the configured width cap for the display layer.
func (w Widget) MaxWidthValue() string {
	if w.MaxWidth == "" {
		return defaultMaxWidth
	}
	return w.MaxWidth
}

// LeagueList accepts either a scalar ("mlb, nhl") or a sequence of strings.
type LeagueList []string

func (l *LeagueList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*l = LeagueList{s}
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		*l = LeagueList(items)
		return nil
	default:
		return fmt.Errorf("leagues: unsupported YAML node kind %d", value.Kind)
	}
}

// Duration accepts Go duration strings ("15s") or bare numbers, which the
// widget historically expressed in milliseconds.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var ms int64
	if err := value.Decode(&ms); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}
