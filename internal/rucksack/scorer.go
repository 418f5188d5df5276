package rucksack

import (
	"errors"
	"fmt"
)

// Observer is called once per successfully scored line. lineNo is 1-based.
type Observer func(lineNo int, line string, p Priority)

// LinePriority splits line into two equal compartments and returns the
// priority of the one letter they share.
func LinePriority(line string) (Priority, error) {
	if len(line) == 0 {
		return 0, &MalformedInputError{Content: line, Reason: ReasonEmpty}
	}
	if len(line)%2 != 0 {
		return 0, &MalformedInputError{
			Content: line,
			Reason:  ReasonOddLength,
			Detail:  fmt.Sprintf("length %d", len(line)),
		}
	}

	half := len(line) / 2
	left, err := MaskOf(line[:half])
	if err != nil {
		return 0, withContent(err, line)
	}
	right, err := MaskOf(line[half:])
	if err != nil {
		return 0, withContent(err, line)
	}

	shared := left.Intersect(right)
	if p, ok := shared.Single(); ok {
		return p, nil
	}
	if shared == 0 {
		return 0, &MalformedInputError{Content: line, Reason: ReasonNoCommonItem}
	}
	return 0, &MalformedInputError{
		Content: line,
		Reason:  ReasonMultipleCommonItems,
		Detail:  "shared " + shared.Letters(),
	}
}

// TotalPriority sums LinePriority over lines. The first malformed line aborts
// the sum.
func TotalPriority(lines []string) (int, error) {
	return Sum(lines, nil)
}

// Sum is TotalPriority with a per-line observer. observe may be nil.
func Sum(lines []string, observe Observer) (int, error) {
	total := 0
	for i, line := range lines {
		p, err := LinePriority(line)
		if err != nil {
			var mErr *MalformedInputError
			if errors.As(err, &mErr) {
				mErr.Line = i + 1
			}
			return 0, err
		}
		if observe != nil {
			observe(i+1, line, p)
		}
		total += int(p)
	}
	return total, nil
}

func withContent(err error, line string) error {
	var mErr *MalformedInputError
	if errors.As(err, &mErr) {
		mErr.Content = line
	}
	return err
}
