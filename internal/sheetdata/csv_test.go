package sheetdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want RawTable
	}{
		{
			name: "empty input yields empty table",
			in:   "",
			want: nil,
		},
		{
			name: "simple rows",
			in:   "a,b,c\nd,e,f",
			want: RawTable{{"a", "b", "c"}, {"d", "e", "f"}},
		},
		{
			name: "crlf terminators are one line break",
			in:   "a,b\r\nc,d\r\n",
			want: RawTable{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "bare cr terminates a row",
			in:   "a\rb",
			want: RawTable{{"a"}, {"b"}},
		},
		{
			name: "no trailing newline keeps the last row",
			in:   "a,b\nc,d",
			want: RawTable{{"a", "b"}, {"c", "d"}},
		},
		{
			name: "embedded comma inside quotes",
			in:   `"1,234",x`,
			want: RawTable{{"1,234", "x"}},
		},
		{
			name: "escaped quote inside quotes",
			in:   `"he said ""hi""",x`,
			want: RawTable{{`he said "hi"`, "x"}},
		},
		{
			name: "embedded newline inside quotes",
			in:   "\"line1\nline2\",x",
			want: RawTable{{"line1\nline2", "x"}},
		},
		{
			name: "heterogeneous column counts are not padded",
			in:   "a,b,c\nd\ne,f",
			want: RawTable{{"a", "b", "c"}, {"d"}, {"e", "f"}},
		},
		{
			name: "empty fields survive",
			in:   "a,,c\n,,",
			want: RawTable{{"a", "", "c"}, {"", "", ""}},
		},
		{
			name: "trailing empty field before newline",
			in:   "a,\nb,c",
			want: RawTable{{"a", ""}, {"b", "c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCSV(tt.in)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCSVRoundTrip(t *testing.T) {
	// Fields with every awkward shape the quoting rules must preserve.
	fields := [][]string{
		{"plain", "with,comma", `with"quote`, "with\nnewline"},
		{"", "  spaced  ", "tail"},
	}

	quote := func(f string) string {
		out := `"`
		for _, r := range f {
			if r == '"' {
				out += `""`
				continue
			}
			out += string(r)
		}
		return out + `"`
	}

	var text string
	for i, row := range fields {
		if i > 0 {
			text += "\r\n"
		}
		for j, f := range row {
			if j > 0 {
				text += ","
			}
			text += quote(f)
		}
	}

	got := ParseCSV(text)
	require.Len(t, got, len(fields))
	for i, row := range fields {
		assert.Equal(t, row, got[i], "row %d", i)
	}
}

func TestRawTableCell(t *testing.T) {
	table := RawTable{{"a", "b"}, {"c"}}

	assert.Equal(t, "b", table.Cell(0, 1))
	assert.Equal(t, "", table.Cell(0, 5), "column out of range")
	assert.Equal(t, "", table.Cell(9, 0), "row out of range")
	assert.Equal(t, "", table.Cell(-1, 0))
	assert.Equal(t, "fallback", table.CellOr(9, 0, "fallback"))
	assert.Equal(t, "c", table.CellOr(1, 0, "fallback"))
}
