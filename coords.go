package numed

import "strings"

// TabStop is the tab stride in render columns.
const TabStop = 4

// GutterWidth returns the width of the line number column for a document
// with rowCount rows. It is never less than 2.
func GutterWidth(rowCount int) int {
	digits := 0
	for n := rowCount; n > 0; n /= 10 {
		digits++
	}
	return max(digits, 2)
}

// ExpandTabs replaces every tab in s with spaces, up to the next multiple of TabStop.
func ExpandTabs(s string) string {
	if strings.IndexByte(s, '\t') < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + TabStop)
	for i := 0; i < len(s); i++ {
		if s[i] == '\t' {
			sb.WriteByte(' ')
			for sb.Len()%TabStop != 0 {
				sb.WriteByte(' ')
			}
			continue
		}
		sb.WriteByte(s[i])
	}
	return sb.String()
}

// RenderColumn maps the buffer column col of the raw line chars to a render
// column. Both columns include the gutter offset of gutter+1.
func RenderColumn(chars string, col, gutter int) int {
	n := min(col-(gutter+1), len(chars))
	rx := 0
	for i := 0; i < n; i++ {
		if chars[i] == '\t' {
			rx += (TabStop - 1) - (rx % TabStop)
		}
		rx++
	}
	return rx + gutter + 1
}
