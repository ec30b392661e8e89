// Package tlv implements the generic, type-agnostic Type-Length-Value
// engine shared by the 1905 TLV catalog and the LLDP payload codec.
//
// The engine never interprets TLV values itself; it dispatches through a
// per-type Definition table (the reference implementation's tlv_defs_t),
// so concrete byte layouts live entirely in the catalog packages built on
// top of this one.
package tlv

import (
	"fmt"

	"github.com/netlayer/ieee1905al/pkg/al1905errors"
	"github.com/netlayer/ieee1905al/pkg/render"
)

// TLV is implemented by every concrete TLV type. The generic engine only
// ever looks at Type(); everything else is reached through the
// Definition for that type.
type TLV interface {
	Type() uint8
}

// Unknown carries the raw (type, value) of any TLV whose type has no
// Definition entry, so parsing is lossless and round-trips byte for byte.
type Unknown struct {
	TLVType uint8
	Value   []byte
}

// Type implements TLV.
func (u *Unknown) Type() uint8 { return u.TLVType }

// Definition is the per-type record of virtual operations. A missing
// operation means the TLV is either zero-length or uninteresting for
// that operation. For every defined type, either both Length and Forge
// are set, or the TLV must be zero-length (Invariant, spec §3).
type Definition struct {
	// Name identifies the type; empty denotes an unknown/reserved type.
	Name string

	// Parse builds a TLV from the value bytes (header already stripped).
	// May be nil for a zero-length TLV.
	Parse func(value []byte) (TLV, error)

	// Length returns the encoded value length (without the 3-byte
	// header). May be nil, defaulting to 0.
	Length func(t TLV) uint16

	// Forge writes the TLV value into w. May be nil for 0-length TLVs.
	Forge func(t TLV, w WriterView) error

	// Print renders t through p, one field per call, prefixed with prefix.
	Print func(t TLV, p render.Printer, prefix string)

	// Compare reports whether two TLVs of this type are equal.
	Compare func(a, b TLV) bool

	// Aggregate merges a newly parsed TLV of this type into an existing
	// one of the same type, returning the merged TLV. Nil means
	// duplicates of this type are rejected by List.Add.
	Aggregate func(existing, next TLV) (TLV, error)

	// Release is a no-op-compatible hook standing in for the reference
	// implementation's free() virtual. The Go TLV types need no manual
	// release — the garbage collector owns them — but a caller that
	// pools the backing buffers of a Value/MediaSpecificInfo-style
	// field can set this to reclaim them when a TLV is done with.
	Release func(t TLV)
}

// Table is a fixed-size array of Definitions indexed by the 8-bit TLV
// type, mirroring the reference tlv_defs_t[0x100].
type Table [256]Definition

// WriterView is the subset of wire.Writer the forge closures need; kept
// as a local interface so pkg/tlv does not import pkg/wire (ForgeList
// passes its own small writer).
type WriterView = interface {
	WriteU8(uint8)
	WriteU16(uint16)
	WriteU32(uint32)
	WriteBytes([]byte)
}

// EndOfMessageType is the 1905 terminator TLV type (0x00). The LLDP
// catalog defines its own End-Of-LLDPDU type in its own table.
const EndOfMessageType = 0x00

// List is an ordered collection of TLVs; order is observable on the wire
// and is preserved end-to-end.
type List struct {
	Items []TLV
}

// Add appends tlv to the list, or aggregates it into an existing TLV of
// the same type via Definition.Aggregate. A type with no duplicate
// already in the list is always appended. A second TLV of a type that
// has no Aggregate defined fails with ErrDuplicate.
func (l *List) Add(defs Table, t TLV) error {
	def := defs[t.Type()]
	for i, existing := range l.Items {
		if existing.Type() != t.Type() {
			continue
		}
		if def.Aggregate == nil {
			return fmt.Errorf("%w: type 0x%02x already present", al1905errors.ErrDuplicate, t.Type())
		}
		merged, err := def.Aggregate(existing, t)
		if err != nil {
			return fmt.Errorf("%w: aggregate type 0x%02x: %v", al1905errors.ErrDuplicate, t.Type(), err)
		}
		l.Items[i] = merged
		return nil
	}
	l.Items = append(l.Items, t)
	return nil
}

// Release calls each item's Definition.Release hook, for callers that
// pool TLV-backing buffers and want them reclaimed once the list is
// done with. Types with no Release hook are skipped; this is a no-op
// for every type in this engine's own catalog.
func (l *List) Release(defs Table) {
	for _, t := range l.Items {
		if rel := defs[t.Type()].Release; rel != nil {
			rel(t)
		}
	}
}

// rawHeaderLen is the 1905 TLV header size: 1-byte type + 2-byte length.
const rawHeaderLen = 3

// ParseList reads successive TLVs from buf until either buf is exhausted
// or an End-Of-Message TLV (type 0) is consumed. Each TLV is dispatched
// through defs[type].Parse; if the type is defined but Parse is nil, a
// zero-length TLV is synthesized. Unknown types become *Unknown. Fails if
// any declared length exceeds the remaining buffer, or if a defined
// Parse returns an error.
func ParseList(defs Table, buf []byte) (List, error) {
	var list List
	off := 0

	for {
		if off >= len(buf) {
			return list, nil
		}
		if off+rawHeaderLen > len(buf) {
			return List{}, fmt.Errorf("%w: TLV header at offset %d", al1905errors.ErrTruncated, off)
		}

		typ := buf[off]
		length := int(buf[off+1])<<8 | int(buf[off+2])
		valueStart := off + rawHeaderLen

		if typ == EndOfMessageType {
			return list, nil
		}

		if valueStart+length > len(buf) {
			return List{}, fmt.Errorf("%w: TLV type 0x%02x declares length %d beyond buffer", al1905errors.ErrTruncated, typ, length)
		}
		value := buf[valueStart : valueStart+length]

		def := defs[typ]
		var t TLV
		var err error
		switch {
		case def.Parse != nil:
			t, err = def.Parse(value)
			if err != nil {
				return List{}, fmt.Errorf("%w: type 0x%02x: %v", al1905errors.ErrBadTLV, typ, err)
			}
		case def.Name != "":
			t = &zeroLengthTLV{typ: typ}
		default:
			raw := make([]byte, len(value))
			copy(raw, value)
			t = &Unknown{TLVType: typ, Value: raw}
		}

		if t.Type() != typ {
			return List{}, al1905errors.Bug(fmt.Errorf("%w: parse for type 0x%02x returned type 0x%02x", al1905errors.ErrBug, typ, t.Type()))
		}

		if err := list.Add(defs, t); err != nil {
			return List{}, err
		}

		off = valueStart + length
	}
}

// zeroLengthTLV backs any defined-but-Parse-nil type.
type zeroLengthTLV struct{ typ uint8 }

func (z *zeroLengthTLV) Type() uint8 { return z.typ }

// ForgeList writes each TLV's 3-byte header plus value into segments no
// larger than maxSegmentSize, plus a trailing 3-byte End-Of-Message
// terminator on the final segment. Within this primitive every segment
// carries whole TLVs only; splitting one oversized TLV across segments
// is not supported (ErrOverflow).
func ForgeList(defs Table, list List, maxSegmentSize int) ([][]byte, error) {
	type encoded struct {
		typ  uint8
		body []byte
	}
	encodedTLVs := make([]encoded, 0, len(list.Items))

	for _, t := range list.Items {
		def := defs[t.Type()]
		w := &rawWriter{}

		if u, ok := t.(*Unknown); ok {
			w.WriteBytes(u.Value)
		} else if def.Forge != nil {
			if def.Length == nil {
				return nil, al1905errors.Bug(fmt.Errorf("%w: type 0x%02x has Forge but no Length", al1905errors.ErrBug, t.Type()))
			}
			if err := def.Forge(t, w); err != nil {
				return nil, fmt.Errorf("%w: type 0x%02x: %v", al1905errors.ErrBadTLV, t.Type(), err)
			}
			if int(def.Length(t)) != len(w.buf) {
				return nil, al1905errors.Bug(fmt.Errorf("%w: type 0x%02x Length()=%d but Forge wrote %d bytes", al1905errors.ErrBug, t.Type(), def.Length(t), len(w.buf)))
			}
		}
		if len(w.buf) > 0xFFFF {
			return nil, fmt.Errorf("%w: type 0x%02x value exceeds 65535 bytes", al1905errors.ErrOverflow, t.Type())
		}

		encodedTLVs = append(encodedTLVs, encoded{typ: t.Type(), body: w.buf})
	}

	const terminatorLen = rawHeaderLen
	var segments [][]byte
	cur := make([]byte, 0, maxSegmentSize)

	flush := func(last bool) error {
		if last {
			cur = append(cur, 0x00, 0x00, 0x00)
		}
		segments = append(segments, cur)
		return nil
	}

	for _, e := range encodedTLVs {
		need := rawHeaderLen + len(e.body)
		if need+terminatorLen > maxSegmentSize && len(cur) == 0 {
			return nil, fmt.Errorf("%w: TLV type 0x%02x (%d bytes) does not fit in a %d-byte segment", al1905errors.ErrOverflow, e.typ, need, maxSegmentSize)
		}
		if len(cur)+need+terminatorLen > maxSegmentSize {
			if err := flush(false); err != nil {
				return nil, err
			}
			cur = make([]byte, 0, maxSegmentSize)
		}
		cur = append(cur, e.typ, byte(len(e.body)>>8), byte(len(e.body)))
		cur = append(cur, e.body...)
	}

	if err := flush(true); err != nil {
		return nil, err
	}
	return segments, nil
}

// rawWriter is the minimal WriterView implementation ForgeList uses to
// capture a TLV's encoded value bytes before framing them with a header.
type rawWriter struct{ buf []byte }

func (w *rawWriter) WriteU8(v uint8)    { w.buf = append(w.buf, v) }
func (w *rawWriter) WriteU16(v uint16)  { w.buf = append(w.buf, byte(v>>8), byte(v)) }
func (w *rawWriter) WriteU32(v uint32) {
	w.buf = append(w.buf, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}
func (w *rawWriter) WriteBytes(b []byte) { w.buf = append(w.buf, b...) }

// CompareList reports whether two TLV lists are equal: same length,
// pairwise same type, pairwise equal per Definition.Compare (or trivially
// equal for types without a Compare, e.g. zero-length TLVs).
func CompareList(defs Table, a, b List) bool {
	if len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		ta, tb := a.Items[i], b.Items[i]
		if ta.Type() != tb.Type() {
			return false
		}
		if ua, ok := ta.(*Unknown); ok {
			ub, ok := tb.(*Unknown)
			if !ok || !bytesEqual(ua.Value, ub.Value) {
				return false
			}
			continue
		}
		def := defs[ta.Type()]
		if def.Compare == nil {
			continue
		}
		if !def.Compare(ta, tb) {
			return false
		}
	}
	return true
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// PrintList dispatches each TLV in list to its Definition's Print, using
// a generic "Unknown(0xNN)" rendering for unknown types.
func PrintList(defs Table, list List, p render.Printer, prefix string) {
	for _, t := range list.Items {
		if u, ok := t.(*Unknown); ok {
			p.Printf("%sTLV(Unknown 0x%02x): %d bytes", prefix, u.TLVType, len(u.Value))
			continue
		}
		def := defs[t.Type()]
		name := def.Name
		if name == "" {
			name = fmt.Sprintf("0x%02x", t.Type())
		}
		if def.Print != nil {
			def.Print(t, p, fmt.Sprintf("%sTLV(%s) ", prefix, name))
		} else {
			p.Printf("%sTLV(%s)", prefix, name)
		}
	}
}
