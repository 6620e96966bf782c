package model

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

const clearScreen = "\x1B[2J\x1B[1;1H"

// FormatRows breaks a flat rendering into lines of width glyphs
func FormatRows(flat string, width uint32) string {
	if width == 0 || flat == "" {
		return flat
	}

	var sb strings.Builder
	sb.Grow(len(flat) + utf8.RuneCountInString(flat)/int(width))
	col := uint32(0)
	for _, r := range flat {
		if col == width {
			sb.WriteByte('\n')
			col = 0
		}
		sb.WriteRune(r)
		col++
	}
	return sb.String()
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the board to the terminal, one row per line
func (r *TerminalRenderer) Display(b *Board) error {
	return r.DisplayFrame(FormatRows(b.Render(), b.Width()))
}

// DisplayFrame writes an already formatted frame
func (r *TerminalRenderer) DisplayFrame(frame string) error {
	_, err := fmt.Fprintln(r.out(), frame)
	return err
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() error {
	_, err := io.WriteString(r.out(), clearScreen)
	return err
}
