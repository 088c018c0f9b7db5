// Package selector streams lines from an input source, emitting only
// the lines whose 1-indexed positions match a range pattern expression.
package selector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"pluck/internal/pattern"
)

// DefaultSeparator sits between the line number and the text when
// numbering is enabled.
const DefaultSeparator = "\t"

// Options control how matched lines are written.
type Options struct {
	// ShowLineNumber prefixes every emitted line with its 1-indexed
	// position followed by Separator.
	ShowLineNumber bool
	// Separator overrides DefaultSeparator when non-empty.
	Separator string
}

// Select reads src line by line and writes every line whose position
// matches the pattern expression to dst. A line matched by several
// ranges is written once per matching range, in range order. The
// expression is parsed and validated before any input is consumed, and
// reading stops as soon as no range can match a later line, so
// unbounded sources are handled in bounded memory.
func Select(src io.Reader, dst io.Writer, expr string, opts Options) error {
	ranges, err := pattern.ParseList(expr)
	if err != nil {
		return fmt.Errorf("parse pattern list: %w", err)
	}

	sep := opts.Separator
	if sep == "" {
		sep = DefaultSeparator
	}

	reader := bufio.NewReader(src)
	for number := 1; ; number++ {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read input: %w", readErr)
		}
		if line == "" && readErr != nil {
			// EOF with no trailing unterminated line.
			return nil
		}
		text := strings.TrimSuffix(line, "\n")

		for _, rng := range ranges {
			if !rng.Includes(number) {
				continue
			}
			if opts.ShowLineNumber {
				if err := writeAll(dst, strconv.Itoa(number)+sep); err != nil {
					return err
				}
			}
			if err := writeAll(dst, text); err != nil {
				return err
			}
			if err := writeAll(dst, "\n"); err != nil {
				return err
			}
		}

		// Don't keep reading once no range can match a later line.
		if !ranges.CanMatchAfter(number) {
			return nil
		}
		if readErr != nil {
			return nil
		}
	}
}

func writeAll(dst io.Writer, s string) error {
	if _, err := io.WriteString(dst, s); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
