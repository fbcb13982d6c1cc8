package mlb

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/resolve"
)

const regulationInnings = 9

func mapGame(g scheduleGame) domain.Game {
	away := mapTeamLine(g.Teams.Away, linescoreSide(g.Linescore, false))
	home := mapTeamLine(g.Teams.Home, linescoreSide(g.Linescore, true))
	status := mapStatus(g)
	markWinners(&away, &home, g.Teams, status.Phase)

	return domain.Game{
		ID:        strconv.FormatInt(g.GamePk, 10),
		League:    domain.LeagueMLB,
		StartTime: g.GameDate,
		Status:    status,
		Away:      away,
		Home:      home,
	}
}

// mapStatus resolves the game phase against the detail-state text, in
// priority order: Suspended > Postponed > Cancelled > Warmup > Preview >
// Final > Live.
func mapStatus(g scheduleGame) domain.GameStatus {
	detailed := g.Status.DetailedState
	abstract := g.Status.AbstractGameState

	switch {
	case strings.Contains(detailed, "Suspended"):
		return domain.GameStatus{Phase: domain.PhaseSuspended, Detail: "Suspended"}
	case strings.Contains(detailed, "Postponed"):
		return domain.GameStatus{Phase: domain.PhasePostponed, Detail: "Postponed"}
	case strings.Contains(detailed, "Cancelled") || strings.Contains(detailed, "Canceled"):
		return domain.GameStatus{Phase: domain.PhaseCancelled, Detail: "Cancelled"}
	case detailed == "Warmup":
		return domain.GameStatus{Phase: domain.PhasePreview, Detail: "Warmup"}
	case abstract == "Preview" || detailed == "Scheduled" || detailed == "Pre-Game":
		detail := detailed
		if detail == "" {
			detail = "Scheduled"
		}
		return domain.GameStatus{Phase: domain.PhasePreview, Detail: detail}
	case abstract == "Final" || strings.Contains(detailed, "Final") || strings.Contains(detailed, "Completed"):
		return domain.GameStatus{Phase: domain.PhaseFinal, Detail: finalDetail(g.Linescore)}
	default:
		return domain.GameStatus{Phase: domain.PhaseLive, Detail: liveDetail(g.Linescore)}
	}
}

// finalDetail appends the inning count when the game did not go a standard
// nine ("Final/11").
func finalDetail(ls *linescore) string {
	innings := inningsPlayed(ls)
	if innings > 0 && innings != regulationInnings {
		return fmt.Sprintf("Final/%d", innings)
	}
	return "Final"
}

func inningsPlayed(ls *linescore) int {
	if ls == nil {
		return 0
	}
	if len(ls.Innings) > 0 {
		return len(ls.Innings)
	}
	if n, ok := resolve.Int(ls.CurrentInning); ok {
		return n
	}
	return 0
}

func liveDetail(ls *linescore) string {
	if ls == nil {
		return "Live"
	}
	parts := make([]string, 0, 2)
	if ls.InningState != "" {
		parts = append(parts, ls.InningState)
	}
	if ls.CurrentInningOrdinal != "" {
		parts = append(parts, ls.CurrentInningOrdinal)
	}
	if len(parts) == 0 {
		return "Live"
	}
	return strings.Join(parts, " ")
}

func linescoreSide(ls *linescore, home bool) linescoreTeam {
	if ls == nil || ls.Teams == nil {
		return linescoreTeam{}
	}
	if home {
		return ls.Teams.Home
	}
	return ls.Teams.Away
}

func mapTeamLine(t scheduleTeam, lsTeam linescoreTeam) domain.TeamLine {
	line := domain.TeamLine{
		Team: domain.TeamRef{
			ID:           strconv.Itoa(t.Team.ID),
			DisplayName:  t.Team.Name,
			Abbreviation: domain.ResolveAbbreviation(t.Team.Name, t.Team.Abbreviation),
		},
		Score: resolve.IntPtr(t.Score, lsTeam.Runs),
	}

	stats := make(map[string]int, 2)
	// The per-team value wins over the linescore team split.
	if hits, ok := resolve.Int(t.Hits, lsTeam.Hits); ok {
		stats["hits"] = hits
	}
	if errs, ok := resolve.Int(t.Errors, lsTeam.Errors); ok {
		stats["errors"] = errs
	}
	if len(stats) > 0 {
		line.ExtraStats = stats
	}
	return line
}

func markWinners(away, home *domain.TeamLine, teams scheduleTeams, phase domain.GamePhase) {
	if phase != domain.PhaseFinal {
		return
	}
	if away.Score != nil && home.Score != nil && *away.Score != *home.Score {
		if *away.Score > *home.Score {
			away.IsWinner, home.IsLoser = true, true
		} else {
			home.IsWinner, away.IsLoser = true, true
		}
		return
	}
	// Scores missing or tied: trust the upstream winner flags if present.
	if teams.Away.IsWinner != nil && *teams.Away.IsWinner {
		away.IsWinner, home.IsLoser = true, true
	} else if teams.Home.IsWinner != nil && *teams.Home.IsWinner {
		home.IsWinner, away.IsLoser = true, true
	}
}
