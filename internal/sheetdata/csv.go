package sheetdata

import "strings"

// RawTable is the parsed form of one sheet export: ordered rows of text
// cells. Row and column positions are the layout contract; no header
// semantics are inferred. Rows are not padded to a common width.
type RawTable [][]string

// Cell returns the cell at (row, col), or "" when the coordinate falls
// outside the table.
func (t RawTable) Cell(row, col int) string {
	if row < 0 || row >= len(t) {
		return ""
	}
	r := t[row]
	if col < 0 || col >= len(r) {
		return ""
	}
	return r[col]
}

// CellOr is Cell with a fallback for blank or missing cells.
func (t RawTable) CellOr(row, col int, fallback string) string {
	if v := t.Cell(row, col); v != "" {
		return v
	}
	return fallback
}

// ParseCSV scans delimited text into a RawTable. The scanner is a single
// left-to-right pass with a quote flag:
//
//   - a double quote toggles quoted mode; a doubled quote inside quoted mode
//     emits one literal quote,
//   - a comma outside quotes ends the field,
//   - CR, LF or CRLF outside quotes ends the field and the row,
//   - everything else, including separators inside quotes, is literal.
//
// A pending field or row at end of input is flushed, so input without a
// trailing newline loses nothing. Empty input yields an empty table.
func ParseCSV(text string) RawTable {
	var (
		rows     RawTable
		row      []string
		field    strings.Builder
		inQuotes bool
	)

	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '"':
			if inQuotes && i+1 < len(text) && text[i+1] == '"' {
				field.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case c == ',' && !inQuotes:
			row = append(row, field.String())
			field.Reset()
		case (c == '\r' || c == '\n') && !inQuotes:
			if c == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			row = append(row, field.String())
			rows = append(rows, row)
			row = nil
			field.Reset()
		default:
			field.WriteByte(c)
		}
	}

	if field.Len() > 0 || len(row) > 0 {
		row = append(row, field.String())
		rows = append(rows, row)
	}
	return rows
}
