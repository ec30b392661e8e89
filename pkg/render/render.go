// Package render provides the visitor-facing output surface for decoded
// CMDUs and TLV lists, plus the masked-byte comparator used by test
// vectors.
package render

import (
	"fmt"
	"io"
	"strings"
)

// Printer is implemented by anything that can receive one formatted
// field at a time. A TLV's Definition.Print writes through a Printer
// instead of building its own strings, so the same visitor works for
// plain text, colorized terminal output, or a TUI pane.
type Printer interface {
	Printf(format string, args ...any)
}

// Writer adapts an io.Writer into a Printer, appending a newline after
// every call.
type Writer struct {
	W io.Writer
}

// Printf implements Printer.
func (p Writer) Printf(format string, args ...any) {
	fmt.Fprintf(p.W, format+"\n", args...)
}

// Builder accumulates printed lines into a single string, for callers
// that want the rendered text rather than a stream (the TUI's viewport,
// tests asserting on output).
type Builder struct {
	lines []string
}

// Printf implements Printer.
func (b *Builder) Printf(format string, args ...any) {
	b.lines = append(b.lines, fmt.Sprintf(format, args...))
}

// String joins the accumulated lines with newlines.
func (b *Builder) String() string {
	return strings.Join(b.lines, "\n")
}

// HexDump renders b as space-separated hex bytes, wrapped at most
// bytesPerLine bytes per line, eliding anything past maxBytes with "...".
func HexDump(b []byte, bytesPerLine, maxBytes int) string {
	if bytesPerLine <= 0 {
		bytesPerLine = 16
	}
	truncated := false
	if maxBytes > 0 && len(b) > maxBytes {
		b = b[:maxBytes]
		truncated = true
	}

	var sb strings.Builder
	for i := 0; i < len(b); i += bytesPerLine {
		end := i + bytesPerLine
		if end > len(b) {
			end = len(b)
		}
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := i; j < end; j++ {
			if j > i {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%02x", b[j])
		}
	}
	if truncated {
		sb.WriteString(" ...")
	}
	return sb.String()
}

// MaskedByte is one element of a masked comparison vector: the
// reference byte Want is compared against the actual byte only where
// Mask has a 1 bit, exactly as the test-vector format in the original
// 1905 conformance suite expresses "don't care" positions.
type MaskedByte struct {
	Want uint8
	Mask uint8
}

// CompareMasked reports whether got matches a sequence of masked
// reference bytes: for every position in want,
// got[i]&want[i].Mask == want[i].Want&want[i].Mask, and got may not be
// shorter than want. got may be longer than want, but only if every
// trailing byte past len(want) is zero.
func CompareMasked(got []byte, want []MaskedByte) bool {
	if len(got) < len(want) {
		return false
	}
	for i, w := range want {
		if got[i]&w.Mask != w.Want&w.Mask {
			return false
		}
	}
	for _, b := range got[len(want):] {
		if b != 0 {
			return false
		}
	}
	return true
}

// DiffMasked is like CompareMasked but returns the indexes that differ,
// for diagnostic output instead of a bare boolean. A got shorter than
// want reports a single marker at the first missing index; a got
// longer than want reports every non-zero trailing byte.
func DiffMasked(got []byte, want []MaskedByte) []int {
	var diffs []int
	n := len(want)
	if len(got) < n {
		n = len(got)
	}
	for i := 0; i < n; i++ {
		if got[i]&want[i].Mask != want[i].Want&want[i].Mask {
			diffs = append(diffs, i)
		}
	}
	if len(got) < len(want) {
		diffs = append(diffs, n)
		return diffs
	}
	for i := len(want); i < len(got); i++ {
		if got[i] != 0 {
			diffs = append(diffs, i)
		}
	}
	return diffs
}
