package nhl

import (
	"testing"

	"github.com/mirrormods/scores-data-service/internal/domain"
)

func TestPeriodOrdinal(t *testing.T) {
	tests := []struct {
		name string
		pd   periodDescriptor
		want string
	}{
		{"first", periodDescriptor{Number: 1, HasNumber: true}, "1st"},
		{"second", periodDescriptor{Number: 2, HasNumber: true}, "2nd"},
		{"third", periodDescriptor{Number: 3, HasNumber: true}, "3rd"},
		{"first overtime", periodDescriptor{Number: 4, HasNumber: true, Type: "OT"}, "OT"},
		{"second overtime", periodDescriptor{Number: 5, HasNumber: true, Type: "OT"}, "2OT"},
		{"third overtime", periodDescriptor{Number: 6, HasNumber: true, Type: "OT"}, "3OT"},
		{"shootout", periodDescriptor{Number: 5, HasNumber: true, Type: "SO"}, "SO"},
		{"no number", periodDescriptor{}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := periodOrdinal(tc.pd); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFinalDetail(t *testing.T) {
	tests := []struct {
		name string
		pd   periodDescriptor
		want string
	}{
		{"regulation", periodDescriptor{Number: 3, HasNumber: true}, "Final"},
		{"overtime", periodDescriptor{Number: 4, HasNumber: true, Type: "OT"}, "Final/OT"},
		{"double overtime", periodDescriptor{Number: 5, HasNumber: true, Type: "OT"}, "Final/2OT"},
		{"shootout", periodDescriptor{Type: "SO"}, "Final/SO"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := finalDetail(tc.pd); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMapStateVocabulary(t *testing.T) {
	tests := []struct {
		name       string
		state      string
		schedule   string
		wantPhase  domain.GamePhase
		wantDetail string
	}{
		{"live with clock", "LIVE", "", domain.PhaseLive, "2nd 12:34"},
		{"crit counts as live", "CRIT", "", domain.PhaseLive, "2nd 12:34"},
		{"final", "FINAL", "", domain.PhaseFinal, "Final"},
		{"off is final", "OFF", "", domain.PhaseFinal, "Final"},
		{"future", "FUT", "", domain.PhasePreview, "Scheduled"},
		{"postponed via schedule state", "FUT", "PPD", domain.PhasePostponed, "Postponed"},
		{"suspended", "SUSP", "", domain.PhaseSuspended, "Suspended"},
		{"cancelled", "CNCL", "", domain.PhaseCancelled, "Cancelled"},
	}
	pd := periodDescriptor{Number: 2, HasNumber: true, TimeRemaining: "12:34"}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := mapState(tc.state, tc.schedule, pd)
			if got.Phase != tc.wantPhase || got.Detail != tc.wantDetail {
				t.Fatalf("got %s/%q, want %s/%q", got.Phase, got.Detail, tc.wantPhase, tc.wantDetail)
			}
		})
	}
}

func TestLiveDetailEndOfPeriod(t *testing.T) {
	pd := periodDescriptor{Number: 1, HasNumber: true, TimeRemaining: "END"}
	if got := liveDetail(pd); got != "1st End" {
		t.Fatalf("got %q, want 1st End", got)
	}
}

func TestClockText(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"plain string", "12:34", "12:34"},
		{"leading zero stripped", "05:19", "5:19"},
		{"clock object with text", map[string]any{"timeRemaining": "08:00"}, "8:00"},
		{"clock object seconds only", map[string]any{"secondsRemaining": float64(754)}, "12:34"},
		{"locale wrapped", map[string]any{"default": "03:21"}, "3:21"},
		{"empty", nil, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := clockText(tc.value); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMarkWinnersFinalOnly(t *testing.T) {
	three, four := 3, 4
	g := domain.Game{
		Status: domain.GameStatus{Phase: domain.PhaseLive},
		Away:   domain.TeamLine{Score: &four},
		Home:   domain.TeamLine{Score: &three},
	}
	markWinners(&g)
	if g.Away.IsWinner {
		t.Fatal("live game must not be marked")
	}

	g.Status.Phase = domain.PhaseFinal
	markWinners(&g)
	if !g.Away.IsWinner || !g.Home.IsLoser {
		t.Fatal("final game should mark winner and loser")
	}
}
