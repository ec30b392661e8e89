package tlv

import (
	"errors"
	"testing"

	"github.com/netlayer/ieee1905al/pkg/al1905errors"
)

// byteVal is a minimal test TLV: a single opaque value byte.
type byteVal struct {
	typ uint8
	val uint8
}

func (b *byteVal) Type() uint8 { return b.typ }

func testTable() Table {
	var t Table
	t[0x01] = Definition{
		Name: "byte value",
		Parse: func(v []byte) (TLV, error) {
			if len(v) != 1 {
				return nil, al1905errors.ErrBadTLV
			}
			return &byteVal{typ: 0x01, val: v[0]}, nil
		},
		Length: func(t TLV) uint16 { return 1 },
		Forge: func(t TLV, w WriterView) error {
			w.WriteU8(t.(*byteVal).val)
			return nil
		},
		Compare: func(a, b TLV) bool { return a.(*byteVal).val == b.(*byteVal).val },
	}
	return t
}

func aggregatingTable() Table {
	t := testTable()
	def := t[0x01]
	def.Aggregate = func(existing, next TLV) (TLV, error) {
		return &byteVal{typ: 0x01, val: existing.(*byteVal).val + next.(*byteVal).val}, nil
	}
	t[0x01] = def
	return t
}

func TestParseForgeRoundTrip(t *testing.T) {
	defs := testTable()
	list := List{}
	if err := list.Add(defs, &byteVal{typ: 0x01, val: 42}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	segments, err := ForgeList(defs, list, 1500)
	if err != nil {
		t.Fatalf("ForgeList() error = %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("ForgeList() segments = %d, want 1", len(segments))
	}

	parsed, err := ParseList(defs, segments[0])
	if err != nil {
		t.Fatalf("ParseList() error = %v", err)
	}
	if !CompareList(defs, list, parsed) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", parsed.Items, list.Items)
	}
}

func TestParseListPreservesUnknownTLVs(t *testing.T) {
	defs := testTable()
	// type 0x7F is not in the table: type(1) length(2)=2 value(2 bytes)
	buf := []byte{0x7F, 0x00, 0x02, 0xAA, 0xBB, 0x00, 0x00, 0x00}

	list, err := ParseList(defs, buf)
	if err != nil {
		t.Fatalf("ParseList() error = %v", err)
	}
	if len(list.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1", len(list.Items))
	}
	u, ok := list.Items[0].(*Unknown)
	if !ok {
		t.Fatalf("Items[0] = %T, want *Unknown", list.Items[0])
	}
	if u.TLVType != 0x7F || len(u.Value) != 2 || u.Value[0] != 0xAA || u.Value[1] != 0xBB {
		t.Fatalf("Unknown TLV = %+v, want type 0x7f value [aa bb]", u)
	}
}

func TestListAddRejectsDuplicateWithoutAggregate(t *testing.T) {
	defs := testTable()
	list := List{}
	if err := list.Add(defs, &byteVal{typ: 0x01, val: 1}); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	err := list.Add(defs, &byteVal{typ: 0x01, val: 2})
	if err == nil {
		t.Fatal("second Add() of non-aggregatable type should fail")
	}
	if !errors.Is(err, al1905errors.ErrDuplicate) {
		t.Fatalf("Add() error = %v, want ErrDuplicate", err)
	}
}

func TestListAddAggregatesWhenDefined(t *testing.T) {
	defs := aggregatingTable()
	list := List{}
	if err := list.Add(defs, &byteVal{typ: 0x01, val: 10}); err != nil {
		t.Fatalf("first Add() error = %v", err)
	}
	if err := list.Add(defs, &byteVal{typ: 0x01, val: 5}); err != nil {
		t.Fatalf("second Add() error = %v", err)
	}
	if len(list.Items) != 1 {
		t.Fatalf("len(Items) = %d, want 1 (aggregated)", len(list.Items))
	}
	if got := list.Items[0].(*byteVal).val; got != 15 {
		t.Fatalf("aggregated val = %d, want 15", got)
	}
}

func TestForgeListSplitsAcrossSegmentsAtMaxSize(t *testing.T) {
	defs := testTable()
	list := List{}
	for i := 0; i < 10; i++ {
		if err := list.Add(defs, &byteVal{typ: 0x01, val: uint8(i)}); err != nil {
			// duplicates rejected without Aggregate: use distinct types instead
			t.Fatalf("Add() error = %v", err)
		}
		break // only one item fits the non-aggregating table; exercised via synthetic buffer below
	}

	// Build a list of many Unknown TLVs instead, since byteVal type 0x01
	// rejects duplicates: each Unknown entry is independent.
	list = List{}
	for i := 0; i < 50; i++ {
		list.Items = append(list.Items, &Unknown{TLVType: 0x02, Value: []byte{byte(i)}})
	}

	segments, err := ForgeList(defs, list, 32)
	if err != nil {
		t.Fatalf("ForgeList() error = %v", err)
	}
	if len(segments) < 2 {
		t.Fatalf("ForgeList() segments = %d, want >1 for oversized list at small max size", len(segments))
	}
	for _, seg := range segments {
		if len(seg) > 32 {
			t.Fatalf("segment length %d exceeds max size 32", len(seg))
		}
	}
}

func TestListReleaseCallsHookForEachItem(t *testing.T) {
	defs := testTable()
	def := defs[0x01]
	var released []uint8
	def.Release = func(t TLV) { released = append(released, t.(*byteVal).val) }
	defs[0x01] = def

	list := List{}
	list.Items = append(list.Items, &byteVal{typ: 0x01, val: 1})

	list.Release(defs)
	if len(released) != 1 || released[0] != 1 {
		t.Fatalf("released = %v, want [1]", released)
	}
}

func TestListReleaseSkipsTypesWithoutHook(t *testing.T) {
	defs := testTable() // no Release set
	list := List{Items: []TLV{&byteVal{typ: 0x01, val: 9}}}
	list.Release(defs) // must not panic
}

func TestForgeListRejectsOversizedSingleTLV(t *testing.T) {
	defs := testTable()
	list := List{Items: []TLV{&Unknown{TLVType: 0x03, Value: make([]byte, 100)}}}

	_, err := ForgeList(defs, list, 10)
	if err == nil {
		t.Fatal("ForgeList() with a TLV larger than max segment size should fail")
	}
	if !errors.Is(err, al1905errors.ErrOverflow) {
		t.Fatalf("ForgeList() error = %v, want ErrOverflow", err)
	}
}
