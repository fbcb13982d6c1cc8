package nhl

import (
	"fmt"
	"strings"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/resolve"
)

// mapState translates the modern gameState/gameScheduleState pair into a
// phase and detail. The scoreboard and REST APIs share this vocabulary.
func mapState(gameState, scheduleState string, pd periodDescriptor) domain.GameStatus {
	state := strings.ToUpper(strings.TrimSpace(gameState))
	schedule := strings.ToUpper(strings.TrimSpace(scheduleState))

	switch {
	case state == "LIVE" || strings.HasPrefix(state, "CRIT"):
		return domain.GameStatus{Phase: domain.PhaseLive, Detail: liveDetail(pd)}
	case state == "FINAL" || state == "OFF" || strings.HasPrefix(state, "COMPLETE"):
		return domain.GameStatus{Phase: domain.PhaseFinal, Detail: finalDetail(pd)}
	case state == "POSTPONED" || schedule == "PPD":
		return domain.GameStatus{Phase: domain.PhasePostponed, Detail: "Postponed"}
	case state == "SUSP" || schedule == "SUSP":
		return domain.GameStatus{Phase: domain.PhaseSuspended, Detail: "Suspended"}
	case state == "CANCELLED" || state == "CNCL" || schedule == "CNCL":
		return domain.GameStatus{Phase: domain.PhaseCancelled, Detail: "Cancelled"}
	default:
		return domain.GameStatus{Phase: domain.PhasePreview, Detail: "Scheduled"}
	}
}

func liveDetail(pd periodDescriptor) string {
	ord := periodOrdinal(pd)
	remaining := strings.TrimSpace(pd.TimeRemaining)

	if strings.EqualFold(remaining, "END") {
		return strings.TrimSpace(ord + " End")
	}

	parts := make([]string, 0, 2)
	if ord != "" {
		parts = append(parts, ord)
	}
	if remaining != "" {
		parts = append(parts, remaining)
	}
	if len(parts) == 0 {
		return "Live"
	}
	return strings.Join(parts, " ")
}

// periodOrdinal renders the period label: SO for shootouts, OT/2OT/... for
// overtimes (the fourth period is plain OT), and 1st/2nd/3rd/Nth otherwise.
func periodOrdinal(pd periodDescriptor) string {
	if !pd.HasNumber {
		return ""
	}
	switch strings.ToUpper(pd.Type) {
	case "SO":
		return "SO"
	case "OT":
		if pd.Number <= 4 {
			return "OT"
		}
		return fmt.Sprintf("%dOT", pd.Number-3)
	}
	switch pd.Number {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", pd.Number)
	}
}

func finalDetail(pd periodDescriptor) string {
	switch strings.ToUpper(pd.Type) {
	case "SO":
		return "Final/SO"
	case "OT":
		if pd.HasNumber && pd.Number > 4 {
			return fmt.Sprintf("Final/%dOT", pd.Number-3)
		}
		return "Final/OT"
	}
	return "Final"
}

// clockText turns whatever the API calls its clock into "M:SS" text. Newer
// payloads carry an object with both a text form and a seconds counter;
// either serves.
func clockText(candidates ...any) string {
	for _, c := range candidates {
		if s := resolve.Text(c); s != "" && strings.Contains(s, ":") {
			return strings.TrimPrefix(s, "0")
		}
	}
	for _, c := range candidates {
		if obj, ok := c.(map[string]any); ok {
			if secs, ok := resolve.Int(obj["secondsRemaining"]); ok {
				return fmt.Sprintf("%d:%02d", secs/60, secs%60)
			}
		}
	}
	for _, c := range candidates {
		if s := resolve.Text(c); s != "" {
			return s
		}
	}
	return ""
}

func markWinners(game *domain.Game) {
	if game.Status.Phase != domain.PhaseFinal {
		return
	}
	away, home := &game.Away, &game.Home
	if away.Score == nil || home.Score == nil || *away.Score == *home.Score {
		return
	}
	if *away.Score > *home.Score {
		away.IsWinner, home.IsLoser = true, true
	} else {
		home.IsWinner, away.IsLoser = true, true
	}
}

// Shots on goal move between deployments: sometimes a top-level field,
// sometimes buried in a stats or linescore container.
var (
	sogKeys       = []string{"sog", "shotsOnGoal", "shots"}
	sogContainers = []string{"teamStats", "stats", "linescore", "team"}
)

func sogStats(shots *int) map[string]int {
	if shots == nil {
		return nil
	}
	return map[string]int{"sog": *shots}
}
