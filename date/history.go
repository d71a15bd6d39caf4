package date

import (
	"iter"
	"slices"
)

// History stores a chronological series of values, each associated with a specific date.
// Dates are unique and the series is always sorted.
type History[T ~float64] struct {
	days   []Date
	values []T
}

// compare is the chronological order on dates.
func compare(a, b Date) int {
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// Len returns the number of items in the history.
func (h *History[T]) Len() int { return len(h.days) }

// Append records 'v' on 'on'. An existing value at that date is overwritten.
func (h *History[T]) Append(on Date, v T) *History[T] {
	i, found := slices.BinarySearchFunc(h.days, on, compare)
	if found {
		h.values[i] = v
		return h
	}
	h.days = slices.Insert(h.days, i, on)
	h.values = slices.Insert(h.values, i, v)
	return h
}

// Latest returns the latest date and value in the history, or zero values.
func (h *History[T]) Latest() (day Date, value T) {
	last := len(h.days) - 1
	if last < 0 {
		return Date{}, value
	}
	return h.days[last], h.values[last]
}

// ValueAsOf returns the value on a given day, or the most recent value before it.
// It returns false if there is no value on or before day.
func (h *History[T]) ValueAsOf(day Date) (on Date, value T, ok bool) {
	i, found := slices.BinarySearchFunc(h.days, day, compare)
	if found {
		return h.days[i], h.values[i], true
	}
	if i == 0 {
		return Date{}, value, false
	}
	return h.days[i-1], h.values[i-1], true
}

// Values returns an iterator over all date/value pairs in chronological order.
func (h *History[T]) Values() iter.Seq2[Date, T] {
	return func(yield func(Date, T) bool) {
		for i, on := range h.days {
			if !yield(on, h.values[i]) {
				return
			}
		}
	}
}
