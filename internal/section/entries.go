package section

import "errors"

// ErrEntryIndex возвращается Move при индексе за пределами списка.
var ErrEntryIndex = errors.New("entry index out of range")

// Entry — любая запись раздела с непрозрачным идентификатором.
type Entry interface {
	EntryID() string
}

// Append returns a new list with e appended; list itself is not modified.
func Append[E any](list []E, e E) []E {
	out := make([]E, 0, len(list)+1)
	out = append(out, list...)
	return append(out, e)
}

// RemoveByID returns a new list without the entry with the given id.
// The second value reports whether such an entry existed.
func RemoveByID[E Entry](list []E, id string) ([]E, bool) {
	out := make([]E, 0, len(list))
	found := false
	for _, e := range list {
		if !found && e.EntryID() == id {
			found = true
			continue
		}
		out = append(out, e)
	}
	return out, found
}

// Move removes the element at from and reinserts it at to, returning a new list.
func Move[E any](list []E, from, to int) ([]E, error) {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return nil, ErrEntryIndex
	}
	out := make([]E, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	moved := list[from]
	out = append(out[:to], append([]E{moved}, out[to:]...)...)
	return out, nil
}
