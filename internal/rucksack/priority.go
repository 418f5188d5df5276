// Package rucksack scores rucksack lines by the priority of the single item
// type found in both compartments.
package rucksack

import (
	"math/bits"
	"strconv"
	"strings"
)

// Priority is the rank of an item letter: a-z map to 1-26, A-Z to 27-52.
// It doubles as the bit index of the letter inside a SetMask.
type Priority uint8

const (
	lowerBase Priority = 1
	upperBase Priority = 27

	// MaxPriority is the highest priority of the 52-letter alphabet.
	MaxPriority Priority = 52
)

// SetMask must hold every priority as a bit index.
var _ = [64 - 1 - int(MaxPriority)]struct{}{}

// PriorityOf maps an ASCII letter to its priority.
func PriorityOf(c byte) (Priority, error) {
	switch {
	case c >= 'a' && c <= 'z':
		return Priority(c-'a') + lowerBase, nil
	case c >= 'A' && c <= 'Z':
		return Priority(c-'A') + upperBase, nil
	}
	return 0, &MalformedInputError{Reason: ReasonInvalidChar, Detail: quoteByte(c)}
}

// Letter returns the item letter for p, or 0 if p is out of range.
func (p Priority) Letter() byte {
	switch {
	case p >= lowerBase && p < upperBase:
		return 'a' + byte(p-lowerBase)
	case p >= upperBase && p <= MaxPriority:
		return 'A' + byte(p-upperBase)
	}
	return 0
}

// SetMask is the set of item letters present in a compartment, one bit per
// priority.
type SetMask uint64

// MaskOf folds the letters of s into a SetMask. Repeated letters are
// absorbed.
func MaskOf(s string) (SetMask, error) {
	var m SetMask
	for i := 0; i < len(s); i++ {
		p, err := PriorityOf(s[i])
		if err != nil {
			return 0, err
		}
		m |= 1 << p
	}
	return m, nil
}

// Intersect returns the letters present in both m and o.
func (m SetMask) Intersect(o SetMask) SetMask { return m & o }

// Has reports whether p is in the set.
func (m SetMask) Has(p Priority) bool { return m&(1<<p) != 0 }

// Count returns the number of distinct letters in the set.
func (m SetMask) Count() int { return bits.OnesCount64(uint64(m)) }

// Single returns the only priority in the set. ok is false when the set is
// empty or holds more than one letter.
func (m SetMask) Single() (p Priority, ok bool) {
	if m.Count() != 1 {
		return 0, false
	}
	return Priority(bits.TrailingZeros64(uint64(m))), true
}

// Letters decodes the set into its letters, lowercase first.
func (m SetMask) Letters() string {
	var sb strings.Builder
	for rest := uint64(m); rest != 0; rest &= rest - 1 {
		sb.WriteByte(Priority(bits.TrailingZeros64(rest)).Letter())
	}
	return sb.String()
}

func quoteByte(c byte) string {
	return strconv.QuoteRuneToASCII(rune(c))
}
