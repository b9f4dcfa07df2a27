// Package ordering управляет порядком разделов резюме.
package ordering

import (
	"errors"
	"slices"

	"ResumeBuilder/internal/section"
)

// ErrIndexOutOfRange возвращается Reorder при индексе вне последовательности.
var ErrIndexOutOfRange = errors.New("section order index out of range")

// Reorder removes the key at from and reinserts it at to.
// The input slice is not modified.
func Reorder(order []string, from, to int) ([]string, error) {
	if from < 0 || from >= len(order) || to < 0 || to >= len(order) {
		return nil, ErrIndexOutOfRange
	}
	out := make([]string, 0, len(order))
	out = append(out, order[:from]...)
	out = append(out, order[from+1:]...)
	out = append(out[:to], append([]string{order[from]}, out[to:]...)...)
	return out, nil
}

// Effective returns the order actually used for editing and rendering:
// unknown keys are dropped, repeats collapse to their first occurrence
// and registry keys absent from order are appended in canonical order.
func Effective(order []string) []string {
	keys := section.Keys()
	seen := make(map[string]bool, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range order {
		if !section.Known(k) || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	for _, k := range keys {
		if !seen[k] {
			out = append(out, k)
		}
	}
	return out
}

// ReorderStored переставляет разделы по индексам эффективного порядка,
// но возвращает сохраняемый порядок: неизвестные ключи остаются на своих местах,
// а недостающие ключи дописываются, только если без них порядок изменится.
// Effective(result) всегда равен Reorder(Effective(order), from, to).
func ReorderStored(order []string, from, to int) ([]string, error) {
	next, err := Reorder(Effective(order), from, to)
	if err != nil {
		return nil, err
	}
	return splice(order, next), nil
}

// MoveKey перемещает раздел key на позицию to в эффективном порядке.
// Удобно для CLI и HTTP, где пользователь называет раздел, а не индекс.
func MoveKey(order []string, key string, to int) ([]string, error) {
	for i, k := range Effective(order) {
		if k == key {
			return ReorderStored(order, i, to)
		}
	}
	return nil, ErrUnknownSection
}

// splice раскладывает известные ключи из next по местам известных ключей в order.
// Повторы известных ключей выбрасываются.
func splice(order, next []string) []string {
	out := make([]string, 0, len(order)+len(next))
	seen := make(map[string]bool, len(next))
	slot := 0
	for _, k := range order {
		switch {
		case !section.Known(k):
			out = append(out, k)
		case seen[k]:
			// повтор
		default:
			seen[k] = true
			out = append(out, next[slot])
			slot++
		}
	}

	tail := next[slot:]
	placed := make(map[string]bool, slot)
	for _, k := range next[:slot] {
		placed[k] = true
	}
	implied := make([]string, 0, len(tail))
	for _, k := range section.Keys() {
		if !placed[k] {
			implied = append(implied, k)
		}
	}
	if !slices.Equal(tail, implied) {
		out = append(out, tail...)
	}
	return out
}

// ErrUnknownSection — ключ раздела не зарегистрирован.
var ErrUnknownSection = errors.New("unknown section")
