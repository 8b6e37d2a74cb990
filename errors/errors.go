// Package errors formats Plorth runtime errors for the command-line
// driver: a source line, a caret pointing at the offending column, and
// the error's code/message, mirroring the core compiler's own error
// report style.
package errors

import (
	"fmt"
	"strings"

	"golang.org/x/text/width"

	"github.com/plorth-go/plorth/internal/value"
)

// Format renders err as a multi-line report against source (the full
// program text err's position was taken from). If err carries no
// position, or source is empty, the line/caret block is omitted.
func Format(err *value.Error, source string) string {
	var sb strings.Builder

	if err.HasPos {
		if err.Pos.Filename != "" {
			sb.WriteString(fmt.Sprintf("Error in %s:%d:%d\n", err.Pos.Filename, err.Pos.Line, err.Pos.Column))
		} else {
			sb.WriteString(fmt.Sprintf("Error at line %d:%d\n", err.Pos.Line, err.Pos.Column))
		}

		if line := sourceLine(source, err.Pos.Line); line != "" {
			lineNumStr := fmt.Sprintf("%4d | ", err.Pos.Line)
			sb.WriteString(lineNumStr)
			sb.WriteString(line)
			sb.WriteByte('\n')
			sb.WriteString(strings.Repeat(" ", len(lineNumStr)))
			sb.WriteString(caretPadding(line, err.Pos.Column))
			sb.WriteString("^\n")
		}
	}

	sb.WriteString(string(err.Code))
	sb.WriteString(" - ")
	sb.WriteString(err.Message)
	return sb.String()
}

// Flat renders the single-line "Error: [<filename>:<line>:<col>:]<code>
// - <message>" form the CLI driver prints to stderr before exiting.
func Flat(err *value.Error) string {
	if !err.HasPos {
		return fmt.Sprintf("Error: %s - %s", err.Code, err.Message)
	}
	if err.Pos.Filename != "" {
		return fmt.Sprintf("Error: %s:%d:%d:%s - %s", err.Pos.Filename, err.Pos.Line, err.Pos.Column, err.Code, err.Message)
	}
	return fmt.Sprintf("Error: %d:%d:%s - %s", err.Pos.Line, err.Pos.Column, err.Code, err.Message)
}

func sourceLine(source string, lineNum int) string {
	if source == "" || lineNum < 1 {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// caretPadding returns the spaces needed to align a caret under column
// (1-origin) of line, accounting for double-width runes (CJK, etc.) that
// precede it so the caret lands under the right terminal cell rather
// than the right byte offset.
func caretPadding(line string, column int) string {
	runes := []rune(line)
	limit := column - 1
	if limit > len(runes) {
		limit = len(runes)
	}
	cells := 0
	for _, r := range runes[:limit] {
		if width.LookupRune(r).Kind() == width.EastAsianWide || width.LookupRune(r).Kind() == width.EastAsianFullwidth {
			cells += 2
		} else {
			cells++
		}
	}
	return strings.Repeat(" ", cells)
}
