package feed

import "strings"

// ParseCSV converts raw delimited text into rows of string cells.
//
// The published-CSV export this service consumes is not strict RFC 4180: rows
// may be ragged, quoting is lazy, and depending on the exporting client the
// row terminator is "\n", "\r" or "\r\n". encoding/csv rejects a lone "\r"
// terminator and errors on ragged rows, so a small state machine is used
// instead. Double-quoted fields may contain delimiters and line breaks; two
// consecutive quotes inside a quoted field denote a literal quote. A leading
// byte-order-mark is stripped from the first cell. A trailing row without a
// terminator is still emitted.
func ParseCSV(text string) [][]string {
	var rows [][]string
	var row []string
	var field strings.Builder
	inQuotes := false

	pushField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	pushRow := func() {
		rows = append(rows, row)
		row = nil
	}

	for i := 0; i < len(text); {
		ch := text[i]
		if inQuotes {
			if ch == '"' {
				if i+1 < len(text) && text[i+1] == '"' {
					field.WriteByte('"')
					i += 2
					continue
				}
				inQuotes = false
				i++
				continue
			}
			field.WriteByte(ch)
			i++
			continue
		}
		switch ch {
		case '"':
			inQuotes = true
			i++
		case ',':
			pushField()
			i++
		case '\n', '\r':
			pushField()
			pushRow()
			if ch == '\r' && i+1 < len(text) && text[i+1] == '\n' {
				i += 2
			} else {
				i++
			}
		default:
			field.WriteByte(ch)
			i++
		}
	}
	if field.Len() > 0 || len(row) > 0 {
		pushField()
		pushRow()
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}
	return rows
}
