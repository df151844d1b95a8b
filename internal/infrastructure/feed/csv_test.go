package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCSV_Basic(t *testing.T) {
	rows := ParseCSV("a,b,c\n1,2,3\n")

	assert.Equal(t, [][]string{
		{"a", "b", "c"},
		{"1", "2", "3"},
	}, rows)
}

func TestParseCSV_QuotedFields(t *testing.T) {
	rows := ParseCSV("name,desc\n\"Air Force 1\",\"white, low top\"\n")

	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"Air Force 1", "white, low top"}, rows[1])
}

func TestParseCSV_EscapedQuote(t *testing.T) {
	rows := ParseCSV("\"say \"\"hi\"\"\",x\n")

	assert.Equal(t, [][]string{{`say "hi"`, "x"}}, rows)
}

func TestParseCSV_QuotedNewline(t *testing.T) {
	rows := ParseCSV("a,\"line1\nline2\",c\n")

	assert.Len(t, rows, 1)
	assert.Equal(t, "line1\nline2", rows[0][1])
}

func TestParseCSV_RowTerminators(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unix", "a,b\nc,d\n"},
		{"windows", "a,b\r\nc,d\r\n"},
		{"classic mac", "a,b\rc,d\r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := ParseCSV(tt.input)
			assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}}, rows)
		})
	}
}

func TestParseCSV_TrailingRowWithoutTerminator(t *testing.T) {
	rows := ParseCSV("a,b\nc,d")

	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestParseCSV_StripsBOM(t *testing.T) {
	rows := ParseCSV("\ufeffname,price\nshoe,10\n")

	assert.Equal(t, "name", rows[0][0])
}

func TestParseCSV_RaggedRows(t *testing.T) {
	rows := ParseCSV("a,b,c\n1,2\n")

	// Ragged rows pass through; the mapper handles short rows.
	assert.Len(t, rows[0], 3)
	assert.Len(t, rows[1], 2)
}

func TestParseCSV_Empty(t *testing.T) {
	assert.Empty(t, ParseCSV(""))
}
