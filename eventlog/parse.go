package eventlog

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Parse reads a plain-text event log: one trace per line, activities
// separated by commas or whitespace. A '#' starts a comment running to the
// end of the line; blank lines (and lines that are all comment) are skipped.
//
//	a, b, c, d      # one case
//	a c b d
//
// Parse returns ErrEmptyLog when no trace survives, and wraps any underlying
// read error.
func Parse(r io.Reader) (Log, error) {
	var log Log

	// 1. Scan line by line; the default bufio line limit is ample for traces.
	sc := bufio.NewScanner(r)
	var line string
	var fields []string
	for sc.Scan() {
		line = sc.Text()

		// 2. Strip trailing comment, then surrounding space.
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// 3. Split on commas and/or whitespace; empty fields collapse.
		fields = strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) == 0 {
			continue
		}

		trace := make(Trace, len(fields))
		for i, f := range fields {
			trace[i] = Activity(f)
		}
		log = append(log, trace)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("eventlog: reading log: %w", err)
	}

	// 4. A file of only comments is as empty as an empty file.
	if len(log) == 0 {
		return nil, ErrEmptyLog
	}

	return log, nil
}
