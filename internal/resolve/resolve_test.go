package resolve

import "testing"

func TestNumberCoercion(t *testing.T) {
	cases := []struct {
		name       string
		candidates []any
		want       float64
		ok         bool
	}{
		{name: "first numeric wins", candidates: []any{nil, "", 3.0, 7}, want: 3, ok: true},
		{name: "string number", candidates: []any{"42"}, want: 42, ok: true},
		{name: "leading int", candidates: []any{"12:34"}, want: 12, ok: true},
		{name: "int pointer", candidates: []any{intPtr(5)}, want: 5, ok: true},
		{name: "nil pointer skipped", candidates: []any{(*int)(nil), 9}, want: 9, ok: true},
		{name: "nothing coercible", candidates: []any{nil, "", "abc", map[string]any{}}, ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Number(tc.candidates...)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Number(%v) = %v, %v; want %v, %v", tc.candidates, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestTextLocaleUnwrap(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  string
	}{
		{name: "plain string trimmed", value: "  10:32  ", want: "10:32"},
		{name: "preferred locale key", value: map[string]any{"fr": "Marqueurs", "default": "Maple Leafs"}, want: "Maple Leafs"},
		{name: "nested locale", value: map[string]any{"name": map[string]any{"en": "Rangers"}}, want: "Rangers"},
		{name: "first truthy by traversal", value: map[string]any{"a": "", "b": "END"}, want: "END"},
		{name: "array picks first non-empty", value: []any{"", "OT"}, want: "OT"},
		{name: "number", value: 3.0, want: "3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Text(tc.value); got != tc.want {
				t.Fatalf("Text(%v) = %q, want %q", tc.value, got, tc.want)
			}
		})
	}
}

func TestTextSurvivesCyclicPayload(t *testing.T) {
	cyclic := map[string]any{}
	cyclic["self"] = cyclic
	cyclic["zz"] = "clock"

	if got := Text(cyclic); got != "clock" {
		t.Fatalf("Text(cyclic) = %q, want clock", got)
	}
}

func TestFindNumberSearchesContainers(t *testing.T) {
	payload := map[string]any{
		"linescore": map[string]any{
			"teamStats": map[string]any{
				"sog": "28",
			},
		},
	}
	n, ok := FindNumber(payload, []string{"shotsOnGoal", "sog"}, []string{"linescore", "teamStats"})
	if !ok || n != 28 {
		t.Fatalf("FindNumber = %v, %v; want 28, true", n, ok)
	}
}

func TestFindNumberShallowKeyWinsOverDeep(t *testing.T) {
	payload := map[string]any{
		"shots": 10,
		"stats": map[string]any{"shots": 99},
	}
	n, ok := FindNumber(payload, []string{"shots"}, []string{"stats"})
	if !ok || n != 10 {
		t.Fatalf("FindNumber = %v, %v; want the shallow value 10", n, ok)
	}
}

func TestFindNumberCyclicGraph(t *testing.T) {
	a := map[string]any{}
	b := map[string]any{"stats": a}
	a["stats"] = b

	if _, ok := FindNumber(a, []string{"missing"}, []string{"stats"}); ok {
		t.Fatal("expected no value from a cyclic graph without the key")
	}
}

func intPtr(v int) *int { return &v }
