package espn

import (
	"fmt"
	"strings"

	"github.com/mirrormods/scores-data-service/internal/domain"
	"github.com/mirrormods/scores-data-service/internal/resolve"
)

const regulationPeriods = 4

func mapEvent(ev event, league domain.League) domain.Game {
	comp := firstCompetition(ev)
	status := eventStatusOf(ev, comp)

	game := domain.Game{
		ID:        resolve.FirstText(ev.ID, ev.UID),
		League:    league,
		StartTime: resolve.FirstText(ev.Date, compDate(comp)),
		Status:    mapEventStatus(status, league),
	}

	var possession string
	if comp != nil {
		if comp.Situation != nil {
			possession = strings.TrimSpace(comp.Situation.Possession)
		}
		for _, c := range comp.Competitors {
			line := mapCompetitor(c)
			if c.HomeAway == "home" {
				game.Home = line
			} else {
				game.Away = line
			}
		}
	}

	if possession != "" && game.Status.Phase == domain.PhaseLive {
		assignPossession(&game, comp.Competitors, possession)
	}
	markWinners(&game, comp)
	return game
}

func firstCompetition(ev event) *competition {
	if len(ev.Competitions) == 0 {
		return nil
	}
	return &ev.Competitions[0]
}

func compDate(comp *competition) string {
	if comp == nil {
		return ""
	}
	return comp.Date
}

// eventStatusOf prefers the event-level status but falls back to the
// competition's copy, which is the only one older payloads populate.
func eventStatusOf(ev event, comp *competition) *eventStatus {
	if ev.Status != nil {
		return ev.Status
	}
	if comp != nil {
		return comp.Status
	}
	return nil
}

func mapEventStatus(status *eventStatus, league domain.League) domain.GameStatus {
	if status == nil {
		return domain.GameStatus{Phase: domain.PhasePreview, Detail: "Scheduled"}
	}

	detail := strings.TrimSpace(status.Type.Detail)
	switch strings.ToLower(status.Type.State) {
	case "in":
		return domain.GameStatus{Phase: domain.PhaseLive, Detail: liveDetail(status, league)}
	case "post":
		if strings.Contains(detail, "Postponed") {
			return domain.GameStatus{Phase: domain.PhasePostponed, Detail: "Postponed"}
		}
		if strings.Contains(detail, "Canceled") || strings.Contains(detail, "Cancelled") {
			return domain.GameStatus{Phase: domain.PhaseCancelled, Detail: "Cancelled"}
		}
		return domain.GameStatus{Phase: domain.PhaseFinal, Detail: finalDetail(status.Period)}
	default:
		switch {
		case strings.Contains(detail, "Postponed"):
			return domain.GameStatus{Phase: domain.PhasePostponed, Detail: "Postponed"}
		case strings.Contains(detail, "Canceled") || strings.Contains(detail, "Cancelled"):
			return domain.GameStatus{Phase: domain.PhaseCancelled, Detail: "Cancelled"}
		default:
			return domain.GameStatus{Phase: domain.PhasePreview, Detail: "Scheduled"}
		}
	}
}

// liveDetail renders "2nd 7:45"-style text. The NFL feed carries special
// moments as text in the detail or clock fields; those pass through as-is.
func liveDetail(status *eventStatus, league domain.League) string {
	if league == domain.LeagueNFL {
		if override := nflTextOverride(status); override != "" {
			return override
		}
	}

	ord := periodOrdinal(status.Period)
	clock := strings.TrimSpace(status.DisplayClock)

	parts := make([]string, 0, 2)
	if ord != "" {
		parts = append(parts, ord)
	}
	if clock != "" {
		parts = append(parts, clock)
	}
	if len(parts) == 0 {
		return "Live"
	}
	return strings.Join(parts, " ")
}

func nflTextOverride(status *eventStatus) string {
	for _, candidate := range []string{status.Type.Detail, status.Type.ShortDetail, status.DisplayClock} {
		if strings.Contains(candidate, "Halftime") {
			return "Halftime"
		}
		if idx := strings.Index(candidate, "End of "); idx >= 0 {
			return strings.TrimSpace(candidate[idx:])
		}
	}
	return ""
}

func periodOrdinal(period int) string {
	switch {
	case period <= 0:
		return ""
	case period == 1:
		return "1st"
	case period == 2:
		return "2nd"
	case period == 3:
		return "3rd"
	case period == regulationPeriods:
		return "4th"
	case period == regulationPeriods+1:
		return "OT"
	default:
		return fmt.Sprintf("%dOT", period-regulationPeriods)
	}
}

func finalDetail(period int) string {
	switch {
	case period > regulationPeriods+1:
		return fmt.Sprintf("Final/%dOT", period-regulationPeriods)
	case period == regulationPeriods+1:
		return "Final/OT"
	default:
		return "Final"
	}
}

func mapCompetitor(c competitor) domain.TeamLine {
	line := domain.TeamLine{
		Team: domain.TeamRef{
			ID:           c.Team.ID,
			DisplayName:  resolve.FirstText(c.Team.DisplayName, c.Team.Name, c.Team.ShortDisplayName),
			Abbreviation: strings.ToUpper(resolve.FirstText(c.Team.Abbreviation, c.Team.ShortDisplayName)),
		},
		Score:      resolve.IntPtr(c.Score),
		Linescores: quarterScores(c.Linescores),
	}
	if line.Score == nil && len(line.Linescores) > 0 {
		total := 0
		for _, v := range line.Linescores {
			total += v
		}
		line.Score = &total
	}
	return line
}

// quarterScores indexes each linescore by its 1-based period so out-of-order
// or gapped entries land in the right quarter. Entries without a period fall
// back to their array position.
func quarterScores(scores []linescore) []int {
	if len(scores) == 0 {
		return nil
	}
	out := make([]int, 0, len(scores))
	for i, ls := range scores {
		idx := ls.Period - 1
		if ls.Period <= 0 {
			idx = i
		}
		for len(out) <= idx {
			out = append(out, 0)
		}
		out[idx] = int(ls.Value)
	}
	return out
}

// assignPossession resolves the situation token against both sides. An
// ID-exact match outranks a name-substring match; a tie at either level
// assigns possession to neither side.
func assignPossession(game *domain.Game, competitors []competitor, token string) {
	lower := strings.ToLower(token)

	type match struct{ id, name bool }
	matches := make(map[string]match, 2)

	for _, c := range competitors {
		m := match{
			id: token == c.ID || token == c.Team.ID,
		}
		for _, name := range []string{c.Team.Abbreviation, c.Team.Name, c.Team.DisplayName} {
			n := strings.ToLower(strings.TrimSpace(name))
			if n != "" && (strings.Contains(lower, n) || strings.Contains(n, lower)) {
				m.name = true
				break
			}
		}
		matches[c.HomeAway] = m
	}

	home, away := matches["home"], matches["away"]
	switch {
	case home.id != away.id:
		game.Home.HasPossession = home.id
		game.Away.HasPossession = away.id
	case home.id && away.id:
		// Both claim an ID match; do not guess.
	case home.name != away.name:
		game.Home.HasPossession = home.name
		game.Away.HasPossession = away.name
	}
}

func markWinners(game *domain.Game, comp *competition) {
	if game.Status.Phase != domain.PhaseFinal {
		return
	}
	away, home := &game.Away, &game.Home
	if away.Score != nil && home.Score != nil && *away.Score != *home.Score {
		if *away.Score > *home.Score {
			away.IsWinner, home.IsLoser = true, true
		} else {
			home.IsWinner, away.IsLoser = true, true
		}
		return
	}
	if comp == nil {
		return
	}
	for _, c := range comp.Competitors {
		if c.Winner == nil || !*c.Winner {
			continue
		}
		if c.HomeAway == "home" {
			home.IsWinner, away.IsLoser = true, true
		} else {
			away.IsWinner, home.IsLoser = true, true
		}
	}
}

func mapByeTeams(week *weekInfo) []domain.TeamRef {
	if week == nil || len(week.TeamsOnBye) == 0 {
		return nil
	}
	out := make([]domain.TeamRef, 0, len(week.TeamsOnBye))
	for _, t := range week.TeamsOnBye {
		out = append(out, domain.TeamRef{
			ID:           t.ID,
			DisplayName:  resolve.FirstText(t.DisplayName, t.Name, t.ShortDisplayName),
			Abbreviation: strings.ToUpper(resolve.FirstText(t.Abbreviation, t.ShortDisplayName)),
		})
	}
	return out
}
