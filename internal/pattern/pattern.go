// Package pattern parses Rust-style line range patterns such as
// "5", "5..", "5..=10", ".." and "..10" into ranges of 1-indexed
// line numbers.
package pattern

import (
	"math"
	"strconv"
	"strings"

	"fortio.org/safecast"
)

// Range selects a contiguous span of 1-indexed line numbers.
// A nil bound leaves the range open on that side; End is inclusive.
// Exclusive upper bounds are converted to inclusive form at parse time.
type Range struct {
	Start *int
	End   *int
}

// Includes reports whether the given 1-indexed line number falls
// inside the range.
func (r Range) Includes(line int) bool {
	if r.Start != nil && line < *r.Start {
		return false
	}
	if r.End != nil && line > *r.End {
		return false
	}
	return true
}

// CanMatchAfter reports whether the range could still include a line
// strictly greater than the given one.
func (r Range) CanMatchAfter(line int) bool {
	return r.End == nil || *r.End > line
}

func (r Range) String() string {
	var sb strings.Builder
	if r.Start != nil {
		sb.WriteString(strconv.Itoa(*r.Start))
	}
	sb.WriteString("..")
	if r.End != nil {
		sb.WriteString("=")
		sb.WriteString(strconv.Itoa(*r.End))
	}
	return sb.String()
}

// Parse converts a single pattern token into a Range.
//
// Grammar:
//
//	"N"      line N only
//	"A..B"   lines A through B-1 (end exclusive)
//	"A..=B"  lines A through B (end inclusive)
//	".."     every line; either bound of a range may be omitted
//
// All numbers are 1-indexed; zero and negative values are rejected.
func Parse(token string) (Range, error) {
	left, right, found := strings.Cut(token, "..")
	if !found {
		n, err := parseBound(token, token)
		if err != nil {
			return Range{}, err
		}
		return Range{Start: &n, End: &n}, nil
	}

	var rng Range
	if left != "" {
		n, err := parseBound(token, left)
		if err != nil {
			return Range{}, err
		}
		rng.Start = &n
	}
	if right != "" {
		if rest, inclusive := strings.CutPrefix(right, "="); inclusive {
			n, err := parseBound(token, rest)
			if err != nil {
				return Range{}, err
			}
			rng.End = &n
		} else {
			n, err := parseNumber(token, right)
			if err != nil {
				return Range{}, err
			}
			if n <= 1 {
				return Range{}, &Error{Kind: ErrExclusiveEnd, Token: token}
			}
			end := n - 1
			rng.End = &end
		}
	}
	if rng.Start != nil && rng.End != nil && *rng.Start > *rng.End {
		return Range{}, &Error{Kind: ErrReversed, Token: token}
	}
	return rng, nil
}

// List is an ordered sequence of ranges, one per comma-separated token.
type List []Range

// ParseList splits a comma-separated pattern expression, parses every
// token and validates that the ranges are given in ascending,
// non-overlapping order. Lines are consumed in a single forward pass,
// so a range may not start before the previous one ends.
func ParseList(expr string) (List, error) {
	tokens := strings.Split(expr, ",")
	ranges := make(List, 0, len(tokens))
	for _, tok := range tokens {
		rng, err := Parse(tok)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, rng)
	}

	prev := Range{}
	for i, this := range ranges {
		if prev.Start != nil || prev.End != nil {
			prevEnd := math.MaxInt
			if prev.End != nil {
				prevEnd = *prev.End
			}
			// An open start effectively begins at line 1.
			thisStart := 1
			if this.Start != nil {
				thisStart = *this.Start
			}
			if prevEnd > thisStart {
				return nil, &Error{Kind: ErrOrder, Token: tokens[i]}
			}
		}
		prev = this
	}
	return ranges, nil
}

// CanMatchAfter reports whether any range in the list could still
// include a line strictly greater than the given one. Once this
// returns false the caller may stop reading input.
func (l List) CanMatchAfter(line int) bool {
	for _, rng := range l {
		if rng.CanMatchAfter(line) {
			return true
		}
	}
	return false
}

func parseNumber(token, text string) (int, error) {
	u, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return 0, &Error{Kind: ErrSyntax, Token: token, Err: err}
	}
	n, err := safecast.Conv[int](u)
	if err != nil {
		return 0, &Error{Kind: ErrSyntax, Token: token, Err: err}
	}
	return n, nil
}

func parseBound(token, text string) (int, error) {
	n, err := parseNumber(token, text)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, &Error{Kind: ErrSyntax, Token: token}
	}
	return n, nil
}
