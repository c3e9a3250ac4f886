// SPDX-License-Identifier: MIT
//
// File: edgelist.go
// Role: Line-oriented parser for "a-b" edge lists.

package converters

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// edgeSeparator joins the two labels of a record.
const edgeSeparator = "-"

// Reasons reported by MalformedInputError.
const (
	reasonSeparator  = "expected exactly one '-' separator"
	reasonEmptyLabel = "empty label"
)

// EdgeRecord is one parsed edge between two labels.
type EdgeRecord struct {
	// Line is the 1-based source line, 0 for records built in code.
	Line int

	// From and To are the two labels in the order they were written.
	From, To string
}

// String renders the record back into its textual form.
func (r EdgeRecord) String() string { return r.From + edgeSeparator + r.To }

// Validate checks both labels are non-empty.
func (r EdgeRecord) Validate() error {
	if r.From == "" || r.To == "" {
		return &MalformedInputError{Line: r.Line, Record: r.String(), Reason: reasonEmptyLabel}
	}

	return nil
}

// ParseEdgeList reads one edge record per line from r.
//
// Implementation:
//   - Stage 1: Scan lines, trimming surrounding whitespace.
//   - Stage 2: Skip blank lines; split the rest on '-'.
//   - Stage 3: Reject any record that is not exactly two non-empty labels.
//
// Errors:
//   - *MalformedInputError on the first bad record (parsing stops there).
//   - Wrapped read errors from r.
//
// Complexity:
//   - Time O(n), Space O(n) in the input size.
func ParseEdgeList(r io.Reader) ([]EdgeRecord, error) {
	var (
		out  []EdgeRecord
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		rec, err := parseRecord(line, text)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("converters: reading edge list: %w", err)
	}

	return out, nil
}

// ParseEdgeListString is ParseEdgeList over an in-memory string.
func ParseEdgeListString(s string) ([]EdgeRecord, error) {
	return ParseEdgeList(strings.NewReader(s))
}

func parseRecord(line int, text string) (EdgeRecord, error) {
	parts := strings.Split(text, edgeSeparator)
	if len(parts) != 2 {
		return EdgeRecord{}, &MalformedInputError{Line: line, Record: text, Reason: reasonSeparator}
	}
	rec := EdgeRecord{
		Line: line,
		From: strings.TrimSpace(parts[0]),
		To:   strings.TrimSpace(parts[1]),
	}
	if err := rec.Validate(); err != nil {
		return EdgeRecord{}, err
	}

	return rec, nil
}
