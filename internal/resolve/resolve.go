// Package resolve extracts values from loosely-typed upstream payloads.
//
// The sports APIs this service polls rename fields between generations and
// occasionally wrap plain strings in locale maps ({"default": "...", "fr":
// "..."}). Rather than sprinkling ad hoc fallback chains through the
// adapters, each semantic field names an ordered list of candidates and this
// package evaluates it.
package resolve

import (
	"math"
	"reflect"
	"strconv"
	"strings"
)

// preferredTextKeys are tried first when unwrapping locale-style objects.
var preferredTextKeys = []string{"default", "en", "en_US", "en-us", "english", "text", "name"}

// Number returns the first candidate that coerces to a finite number.
func Number(candidates ...any) (float64, bool) {
	for _, c := range candidates {
		if n, ok := coerceNumber(c); ok {
			return n, true
		}
	}
	return 0, false
}

// Int is Number truncated to an int.
func Int(candidates ...any) (int, bool) {
	n, ok := Number(candidates...)
	if !ok {
		return 0, false
	}
	return int(n), true
}

// IntPtr is Int for callers that want a nullable score-style value.
func IntPtr(candidates ...any) *int {
	n, ok := Int(candidates...)
	if !ok {
		return nil
	}
	return &n
}

// Text unwraps a value into display text. Strings pass through trimmed;
// locale-style maps yield the first preferred key, then the first non-empty
// value found depth-first; arrays yield their first non-empty element.
// Cyclic payloads terminate via an identity-keyed visited set.
func Text(value any) string {
	return text(value, make(map[uintptr]struct{}))
}

// FirstText returns the first candidate with non-empty text.
func FirstText(candidates ...any) string {
	for _, c := range candidates {
		if s := Text(c); s != "" {
			return s
		}
	}
	return ""
}

// FindNumber searches root for the first of keys that coerces to a number,
// descending breadth-first into the named nested containers. Cycles are
// guarded the same way as Text.
func FindNumber(root any, keys []string, containers []string) (float64, bool) {
	seen := make(map[uintptr]struct{})
	queue := []any{root}

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		obj, ok := node.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := identity(node); ok {
			if _, visited := seen[id]; visited {
				continue
			}
			seen[id] = struct{}{}
		}

		for _, key := range keys {
			if v, present := obj[key]; present {
				if n, ok := coerceNumber(v); ok {
					return n, true
				}
			}
		}
		for _, container := range containers {
			if child, present := obj[container]; present {
				queue = append(queue, child)
			}
		}
	}
	return 0, false
}

func text(value any, seen map[uintptr]struct{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case []any:
		if !mark(v, seen) {
			return ""
		}
		for _, item := range v {
			if s := text(item, seen); s != "" {
				return s
			}
		}
		return ""
	case map[string]any:
		if !mark(v, seen) {
			return ""
		}
		for _, key := range preferredTextKeys {
			if nested, ok := v[key]; ok {
				if s := text(nested, seen); s != "" {
					return s
				}
			}
		}
		for _, key := range sortedKeys(v) {
			if s := text(v[key], seen); s != "" {
				return s
			}
		}
		return ""
	default:
		return ""
	}
}

// mark records a container in the visited set, returning false on a revisit.
func mark(v any, seen map[uintptr]struct{}) bool {
	id, ok := identity(v)
	if !ok {
		return true
	}
	if _, visited := seen[id]; visited {
		return false
	}
	seen[id] = struct{}{}
	return true
}

func identity(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}
		return rv.Pointer(), true
	}
	return 0, false
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Deterministic traversal keeps adapter output idempotent.
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	return keys
}

func coerceNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case nil:
		return 0, false
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case *int:
		if v == nil {
			return 0, false
		}
		return float64(*v), true
	case *float64:
		if v == nil {
			return 0, false
		}
		return coerceNumber(*v)
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return 0, false
		}
		if n, err := strconv.ParseFloat(s, 64); err == nil {
			return n, true
		}
		// "12:34"-style values still yield their leading integer.
		digits := leadingInt(s)
		if digits == "" {
			return 0, false
		}
		n, err := strconv.ParseFloat(digits, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func leadingInt(s string) string {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return ""
	}
	return s[:i]
}
