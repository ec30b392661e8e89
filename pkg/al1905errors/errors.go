// Package al1905errors defines the CMDU/TLV engine's error taxonomy.
//
// Every failure a caller needs to branch on is a sentinel that can be
// matched with errors.Is; contextual detail is layered on with
// fmt.Errorf("%w: ...") at the call site.
package al1905errors

import "errors"

var (
	// ErrTruncated indicates a length field or cursor read exceeded the
	// remaining input.
	ErrTruncated = errors.New("al1905: truncated")

	// ErrBadEther indicates an Ethernet frame's EtherType was not 0x893A.
	ErrBadEther = errors.New("al1905: unexpected ethertype")

	// ErrBadTLV indicates a concrete TLV parser rejected its bytes.
	ErrBadTLV = errors.New("al1905: malformed TLV")

	// ErrMissingMandatory indicates an LLDP payload lacked (or duplicated)
	// one of its three mandatory TLVs.
	ErrMissingMandatory = errors.New("al1905: missing mandatory TLV")

	// ErrDuplicate indicates a non-aggregatable TLV type appeared twice.
	ErrDuplicate = errors.New("al1905: duplicate TLV")

	// ErrOverflow indicates a forge needed more room than the segment
	// size allowed and could not be split further.
	ErrOverflow = errors.New("al1905: segment overflow")

	// ErrBug indicates a TLV definition-table inconsistency: forge set
	// without length, or a length that underreports bytes written. This
	// is a programming error, never a wire-input error.
	ErrBug = errors.New("al1905: definition table inconsistency")
)

// List accumulates multiple errors encountered while parsing a batch (an
// LLDP payload, a TLV list) so a caller can report everything wrong at
// once instead of stopping at the first failure.
type List struct {
	Errors []error
}

// Add appends err to the list if non-nil.
func (l *List) Add(err error) {
	if err != nil {
		l.Errors = append(l.Errors, err)
	}
}

// HasErrors reports whether any error was recorded.
func (l *List) HasErrors() bool {
	return len(l.Errors) > 0
}

// Error implements the error interface, summarizing the batch.
func (l *List) Error() string {
	switch len(l.Errors) {
	case 0:
		return "al1905: no errors"
	case 1:
		return l.Errors[0].Error()
	default:
		msg := l.Errors[0].Error()
		for _, e := range l.Errors[1:] {
			msg += "; " + e.Error()
		}
		return msg
	}
}
