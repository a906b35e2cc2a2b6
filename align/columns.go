// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package align

import "strings"

// columnWidths tracks the widest field seen per column index. Widths only
// grow.
type columnWidths struct {
	limit  int // 0 = unbounded
	widths []int
}

func (c *columnWidths) observe(col, w int) {
	if c.limit > 0 && col >= c.limit {
		return
	}
	for len(c.widths) <= col {
		c.widths = append(c.widths, 0)
	}
	if w > c.widths[col] {
		c.widths[col] = w
	}
}

// width returns the tracked width of col, 0 for untracked columns.
func (c *columnWidths) width(col int) int {
	if col < len(c.widths) {
		return c.widths[col]
	}
	return 0
}

// tracked reports whether col is inside the width table.
func (c *columnWidths) tracked(col int) bool {
	return c.limit == 0 || col < c.limit
}

// splitFields splits line on every occurrence of delim. Tracked fields are
// trimmed: the first only loses trailing blanks so indentation survives, the
// others lose blanks on both ends. Untracked fields are kept verbatim.
func splitFields(line, delim string, table *columnWidths) []string {
	fields := strings.Split(line, delim)
	for i, f := range fields {
		switch {
		case !table.tracked(i):
			// verbatim
		case i == 0:
			fields[i] = TrimEnd(f)
		default:
			fields[i] = trim(f)
		}
	}
	return fields
}

// alignColumns is the multi-field strategy: every field of a qualifying line
// is padded to its column width except the last, which has nothing after it
// to align against. Fields are joined by the delimiter and one space; fields
// past the column limit are joined by the bare delimiter, as they were.
// Rebuilt lines lose trailing blanks, so an empty last field leaves the line
// ending in the delimiter.
func alignColumns(lines []string, delim string, limit int) ([]string, int) {
	table := &columnWidths{limit: limit}
	rows := make([][]string, len(lines))
	for i, ln := range lines {
		if !strings.Contains(ln, delim) {
			continue
		}
		fields := splitFields(ln, delim, table)
		for col, f := range fields {
			table.observe(col, width(f))
		}
		rows[i] = fields
	}

	out := make([]string, len(lines))
	rewritten := 0
	for i, fields := range rows {
		if fields == nil {
			out[i] = lines[i]
			continue
		}
		var b strings.Builder
		last := len(fields) - 1
		for col, f := range fields {
			if col == last {
				b.WriteString(f)
				break
			}
			if table.tracked(col) {
				f = pad(f, table.width(col))
			}
			b.WriteString(f)
			b.WriteString(delim)
			if table.tracked(col + 1) {
				b.WriteByte(' ')
			}
		}
		out[i] = TrimEnd(b.String()) + "\n"
		rewritten++
	}
	return out, rewritten
}
