// Package calories sums blank-line separated groups of item calories and
// finds the best-stocked groups.
package calories

import (
	"errors"
	"fmt"
	"math/bits"
	"sort"
	"strconv"
	"strings"
)

var (
	// ErrNoGroups is returned when the input holds no calorie lines at all.
	ErrNoGroups = errors.New("no calorie groups")

	// ErrOverflow is returned when a total does not fit in 64 bits.
	ErrOverflow = errors.New("calorie total overflows uint64")
)

// Group is one run of consecutive non-blank lines.
type Group struct {
	Index int // zero-based position in the input
	Items []uint64
	Total uint64
}

// ParseError reports a line that is not a calorie count.
type ParseError struct {
	Line    int
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Content, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse splits text into groups. Runs of blank lines count as a single
// separator and CRLF line endings are accepted.
func Parse(text string) ([]Group, error) {
	var groups []Group
	open := false

	for i, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			open = false
			continue
		}

		n, err := strconv.ParseUint(line, 10, 64)
		if err != nil {
			return nil, &ParseError{Line: i + 1, Content: line, Err: err}
		}

		if !open {
			groups = append(groups, Group{Index: len(groups)})
			open = true
		}
		cur := &groups[len(groups)-1]
		total, carry := bits.Add64(cur.Total, n, 0)
		if carry != 0 {
			return nil, &ParseError{Line: i + 1, Content: line, Err: ErrOverflow}
		}
		cur.Items = append(cur.Items, n)
		cur.Total = total
	}

	return groups, nil
}

// Largest returns the group with the highest total. On a tie the later group
// wins.
func Largest(groups []Group) (Group, error) {
	if len(groups) == 0 {
		return Group{}, ErrNoGroups
	}

	best := groups[0]
	for _, g := range groups[1:] {
		if g.Total >= best.Total {
			best = g
		}
	}
	return best, nil
}

// TopN returns up to n groups ordered by total, highest first. Groups with
// equal totals keep the later one first, consistent with Largest.
func TopN(groups []Group, n int) []Group {
	if n <= 0 || len(groups) == 0 {
		return nil
	}

	sorted := make([]Group, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Total != sorted[j].Total {
			return sorted[i].Total > sorted[j].Total
		}
		return sorted[i].Index > sorted[j].Index
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Sum adds up the totals of groups.
func Sum(groups []Group) (uint64, error) {
	var total, carry uint64
	for _, g := range groups {
		total, carry = bits.Add64(total, g.Total, 0)
		if carry != 0 {
			return 0, fmt.Errorf("sum of %d groups: %w", len(groups), ErrOverflow)
		}
	}
	return total, nil
}
