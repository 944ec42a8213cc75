// Package listfilter reúne los predicados que comparten todas las listas filtrables
// (pet list, vacunados hoy, reportes, logs). Todo es puro y en memoria: scan O(n).
package listfilter

import "strings"

// All es el valor de los selects que significa "sin restricción".
const All = "all"

// Predicate decide si un item entra en la vista filtrada.
type Predicate[T any] func(T) bool

// Apply combina predicados con AND y conserva el orden original.
// Nunca devuelve nil para que el JSON sea [] y no null.
func Apply[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if matchesAll(it, preds) {
			out = append(out, it)
		}
	}
	return out
}

// Count cuenta los items que cumplen todos los predicados.
func Count[T any](items []T, preds ...Predicate[T]) int {
	n := 0
	for _, it := range items {
		if matchesAll(it, preds) {
			n++
		}
	}
	return n
}

func matchesAll[T any](it T, preds []Predicate[T]) bool {
	for _, p := range preds {
		if p != nil && !p(it) {
			return false
		}
	}
	return true
}

// MatchText: substring case-insensitive en cualquiera de los campos. Query vacía = match.
func MatchText(query string, fields ...string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// IsAll indica si un valor de filtro categórico no restringe nada.
func IsAll(selected string) bool {
	s := strings.TrimSpace(selected)
	return s == "" || strings.EqualFold(s, All)
}

// MatchCategory: igualdad case-insensitive; "municipality-a" == "Municipality A".
func MatchCategory(selected, value string) bool {
	if IsAll(selected) {
		return true
	}
	return Normalize(selected) == Normalize(value)
}

// MatchContains: como MatchCategory pero por substring (ubicaciones, municipios).
func MatchContains(selected, value string) bool {
	if IsAll(selected) {
		return true
	}
	return strings.Contains(Normalize(value), Normalize(selected))
}

// Normalize baja a minúsculas, recorta y trata '-' y '_' como espacio.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("-", " ", "_", " ").Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
