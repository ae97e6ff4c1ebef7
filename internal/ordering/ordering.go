// Package ordering edits the ordered list of subjects handed to the
// scheduler. Both front ends, the terminal screen and the typed prompt,
// go through it.
package ordering

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidOrder is returned for a typed order that is not a valid
// selection of list positions.
var ErrInvalidOrder = errors.New("invalid order")

// List is an ordered list of subject names.
type List struct {
	items []string
}

// NewList copies names into a new List.
func NewList(names []string) *List {
	items := make([]string, len(names))
	copy(items, names)
	return &List{items: items}
}

// Items returns a copy of the current order.
func (l *List) Items() []string {
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// MoveUp swaps item i with the one above it and returns the item's new
// index. It is a no-op for the first item or an out-of-range index.
func (l *List) MoveUp(i int) int {
	if i <= 0 || i >= len(l.items) {
		return i
	}
	l.items[i-1], l.items[i] = l.items[i], l.items[i-1]
	return i - 1
}

// MoveDown swaps item i with the one below it and returns the item's new
// index. It is a no-op for the last item or an out-of-range index.
func (l *List) MoveDown(i int) int {
	if i < 0 || i >= len(l.items)-1 {
		return i
	}
	l.items[i+1], l.items[i] = l.items[i], l.items[i+1]
	return i + 1
}

// Remove deletes the items at the given indices. Out-of-range and repeated
// indices are ignored.
func (l *List) Remove(indices ...int) {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		if i >= 0 && i < len(l.items) {
			drop[i] = true
		}
	}
	if len(drop) == 0 {
		return
	}
	kept := l.items[:0]
	for i, it := range l.items {
		if !drop[i] {
			kept = append(kept, it)
		}
	}
	l.items = kept
}

// Apply reorders the list by a permutation of 0-based indices, as returned
// by Parse.
func (l *List) Apply(order []int) error {
	if len(order) != len(l.items) {
		return fmt.Errorf("%w: %d positions for %d items", ErrInvalidOrder, len(order), len(l.items))
	}
	seen := make([]bool, len(l.items))
	next := make([]string, len(l.items))
	for pos, i := range order {
		if i < 0 || i >= len(l.items) || seen[i] {
			return fmt.Errorf("%w: bad position %d", ErrInvalidOrder, i+1)
		}
		seen[i] = true
		next[pos] = l.items[i]
	}
	l.items = next
	return nil
}

// Parse reads a typed order such as "3, 1 2" over a list of n items, using
// 1-based positions. Items left out keep their relative order after the
// listed ones. The result is a full 0-based permutation. Empty text keeps
// the current order.
func Parse(text string, n int) ([]int, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})

	seen := make(map[int]bool, n)
	order := make([]int, 0, n)
	for _, f := range fields {
		pos, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrInvalidOrder, f)
		}
		if pos < 1 || pos > n {
			return nil, fmt.Errorf("%w: %d is out of range 1-%d", ErrInvalidOrder, pos, n)
		}
		if seen[pos-1] {
			return nil, fmt.Errorf("%w: %d listed twice", ErrInvalidOrder, pos)
		}
		seen[pos-1] = true
		order = append(order, pos-1)
	}

	var rest []int
	for i := 0; i < n; i++ {
		if !seen[i] {
			rest = append(rest, i)
		}
	}
	sort.Ints(rest)
	return append(order, rest...), nil
}
