// Package editor implements the multi-line buffer used for request body
// authoring. Content is addressed by (line, column) in characters, never
// byte offsets, so multi-byte input cannot split a rune.
package editor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Editor holds the body text being edited plus a character cursor.
type Editor struct {
	lines [][]rune
	row   int
	col   int
	dirty bool
}

// New creates an empty editor with the cursor at the origin.
func New() *Editor {
	return &Editor{lines: [][]rune{{}}}
}

// Content returns the full buffer joined with newlines.
func (e *Editor) Content() string {
	parts := make([]string, len(e.lines))
	for i, line := range e.lines {
		parts[i] = string(line)
	}
	return strings.Join(parts, "\n")
}

// Lines returns a copy of the buffer as strings, one per line.
func (e *Editor) Lines() []string {
	out := make([]string, len(e.lines))
	for i, line := range e.lines {
		out[i] = string(line)
	}
	return out
}

// Cursor returns the current (row, col) character position.
func (e *Editor) Cursor() (int, int) {
	return e.row, e.col
}

// IsDirty reports whether the buffer changed since the last MarkSaved.
func (e *Editor) IsDirty() bool {
	return e.dirty
}

// MarkSaved clears the dirty flag.
func (e *Editor) MarkSaved() {
	e.dirty = false
}

// Clear resets the buffer to a single empty line.
func (e *Editor) Clear() {
	e.lines = [][]rune{{}}
	e.row = 0
	e.col = 0
	e.dirty = true
}

// SetContent replaces the buffer and places the cursor at the end.
func (e *Editor) SetContent(s string) {
	raw := strings.Split(s, "\n")
	e.lines = make([][]rune, len(raw))
	for i, line := range raw {
		e.lines[i] = []rune(line)
	}
	e.row = len(e.lines) - 1
	e.col = len(e.lines[e.row])
	e.dirty = true
}

// NormalizeQuotes maps typographic quotes to their ASCII equivalents.
// Terminal paste often introduces them and they break JSON.
func NormalizeQuotes(s string) string {
	r := strings.NewReplacer(
		"“", `"`,
		"”", `"`,
		"‘", "'",
		"’", "'",
	)
	return r.Replace(s)
}

// Insert places s at the cursor and advances past it. A multi-line string
// splits the current line at the cursor and creates new lines.
func (e *Editor) Insert(s string) {
	if s == "" {
		return
	}

	segments := strings.Split(s, "\n")
	line := e.lines[e.row]
	head := append([]rune{}, line[:e.col]...)
	tail := append([]rune{}, line[e.col:]...)

	if len(segments) == 1 {
		e.lines[e.row] = append(append(head, []rune(segments[0])...), tail...)
		e.col += len([]rune(segments[0]))
		e.dirty = true
		return
	}

	// First segment extends the current line, the rest become new lines,
	// with the old tail attached to the last one.
	inserted := make([][]rune, len(segments))
	inserted[0] = append(head, []rune(segments[0])...)
	for i := 1; i < len(segments); i++ {
		inserted[i] = []rune(segments[i])
	}
	lastLen := len(inserted[len(inserted)-1])
	inserted[len(inserted)-1] = append(inserted[len(inserted)-1], tail...)

	rebuilt := make([][]rune, 0, len(e.lines)+len(segments)-1)
	rebuilt = append(rebuilt, e.lines[:e.row]...)
	rebuilt = append(rebuilt, inserted...)
	rebuilt = append(rebuilt, e.lines[e.row+1:]...)
	e.lines = rebuilt

	e.row += len(segments) - 1
	e.col = lastLen
	e.dirty = true
}

// InsertNormalized inserts s after smart-quote normalization.
func (e *Editor) InsertNormalized(s string) {
	e.Insert(NormalizeQuotes(s))
}

// InsertNewline splits the current line at the cursor. The cursor moves to
// column 0 of the new line.
func (e *Editor) InsertNewline() {
	e.Insert("\n")
}

// DeleteBefore removes the character before the cursor. At column 0 it joins
// the current line onto the previous one, placing the cursor at the join
// point. Returns false at the start of the document.
func (e *Editor) DeleteBefore() bool {
	if e.col > 0 {
		line := e.lines[e.row]
		e.lines[e.row] = append(line[:e.col-1:e.col-1], line[e.col:]...)
		e.col--
		e.dirty = true
		return true
	}
	if e.row == 0 {
		return false
	}

	prev := e.lines[e.row-1]
	joinCol := len(prev)
	e.lines[e.row-1] = append(prev, e.lines[e.row]...)
	e.lines = append(e.lines[:e.row], e.lines[e.row+1:]...)
	e.row--
	e.col = joinCol
	e.dirty = true
	return true
}

// DeleteAfter removes the character under the cursor. At the end of a line
// it joins the next line onto the current one. Returns false at the end of
// the document.
func (e *Editor) DeleteAfter() bool {
	line := e.lines[e.row]
	if e.col < len(line) {
		e.lines[e.row] = append(line[:e.col:e.col], line[e.col+1:]...)
		e.dirty = true
		return true
	}
	if e.row == len(e.lines)-1 {
		return false
	}

	e.lines[e.row] = append(line, e.lines[e.row+1]...)
	e.lines = append(e.lines[:e.row+1], e.lines[e.row+2:]...)
	e.dirty = true
	return true
}

// MoveLeft moves the cursor one character left, wrapping to the end of the
// previous line. Returns false at the start of the document.
func (e *Editor) MoveLeft() bool {
	if e.col > 0 {
		e.col--
		return true
	}
	if e.row == 0 {
		return false
	}
	e.row--
	e.col = len(e.lines[e.row])
	return true
}

// MoveRight moves the cursor one character right, wrapping to the start of
// the next line. Returns false at the end of the document.
func (e *Editor) MoveRight() bool {
	if e.col < len(e.lines[e.row]) {
		e.col++
		return true
	}
	if e.row == len(e.lines)-1 {
		return false
	}
	e.row++
	e.col = 0
	return true
}

// MoveUp moves the cursor one row up, clamping the column to the target
// line's length. Returns false on the first row.
func (e *Editor) MoveUp() bool {
	if e.row == 0 {
		return false
	}
	e.row--
	if e.col > len(e.lines[e.row]) {
		e.col = len(e.lines[e.row])
	}
	return true
}

// MoveDown moves the cursor one row down, clamping the column to the target
// line's length. Returns false on the last row.
func (e *Editor) MoveDown() bool {
	if e.row == len(e.lines)-1 {
		return false
	}
	e.row++
	if e.col > len(e.lines[e.row]) {
		e.col = len(e.lines[e.row])
	}
	return true
}

// MoveToStart places the cursor at the beginning of the document.
func (e *Editor) MoveToStart() {
	e.row = 0
	e.col = 0
}

// MoveToEnd places the cursor at the end of the document.
func (e *Editor) MoveToEnd() {
	e.row = len(e.lines) - 1
	e.col = len(e.lines[e.row])
}

// ValidateJSON checks that the buffer parses as JSON without mutating it.
func (e *Editor) ValidateJSON() error {
	var v any
	if err := json.Unmarshal([]byte(e.Content()), &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return nil
}

// FormatJSON pretty-prints the buffer in place and moves the cursor to the
// end. On a parse error the buffer is left untouched. Idempotent: formatting
// already-pretty content yields identical output.
func (e *Editor) FormatJSON() error {
	content := e.Content()
	if err := e.ValidateJSON(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(content), "", "  "); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	e.SetContent(buf.String())
	return nil
}
