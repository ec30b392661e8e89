package reassembly

import (
	"testing"
	"time"
)

func testSrc() [6]byte {
	return [6]byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
}

func TestAddFragmentSingleFragmentCompletesImmediately(t *testing.T) {
	r, err := New(0, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	complete, frags, err := r.AddFragment(testSrc(), 1, 0, true, []byte("hello"))
	if err != nil {
		t.Fatalf("AddFragment() error = %v", err)
	}
	if !complete {
		t.Fatal("single last fragment should complete immediately")
	}
	if len(frags) != 1 || string(frags[0]) != "hello" {
		t.Fatalf("fragments = %v, want [hello]", frags)
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after completion", r.Len())
	}
}

func TestAddFragmentMultiFragmentOrdering(t *testing.T) {
	r, err := New(0, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	src := testSrc()

	complete, _, err := r.AddFragment(src, 5, 0, false, []byte("a"))
	if err != nil || complete {
		t.Fatalf("fragment 0: complete=%v, err=%v, want false, nil", complete, err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 partial context", r.Len())
	}

	complete, _, err = r.AddFragment(src, 5, 1, false, []byte("b"))
	if err != nil || complete {
		t.Fatalf("fragment 1: complete=%v, err=%v, want false, nil", complete, err)
	}

	complete, frags, err := r.AddFragment(src, 5, 2, true, []byte("c"))
	if err != nil {
		t.Fatalf("fragment 2: error = %v", err)
	}
	if !complete {
		t.Fatal("final fragment should complete the message")
	}
	if len(frags) != 3 || string(frags[0]) != "a" || string(frags[1]) != "b" || string(frags[2]) != "c" {
		t.Fatalf("fragments = %v, want [a b c]", frags)
	}
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after completion", r.Len())
	}
}

func TestAddFragmentOutOfOrderIsDropped(t *testing.T) {
	r, err := New(0, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	src := testSrc()

	if complete, _, err := r.AddFragment(src, 9, 0, false, []byte("a")); err != nil || complete {
		t.Fatalf("fragment 0: complete=%v, err=%v", complete, err)
	}

	// skip fragment 1, jump straight to 2.
	complete, frags, err := r.AddFragment(src, 9, 2, true, []byte("c"))
	if err != nil {
		t.Fatalf("out-of-order AddFragment() error = %v", err)
	}
	if complete || frags != nil {
		t.Fatalf("out-of-order fragment should be silently dropped, got complete=%v frags=%v", complete, frags)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (context preserved, fragment dropped)", r.Len())
	}
}

func TestAddFragmentDuplicateIsIdempotent(t *testing.T) {
	r, err := New(0, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	src := testSrc()

	if complete, _, err := r.AddFragment(src, 3, 0, false, []byte("a")); err != nil || complete {
		t.Fatalf("fragment 0: complete=%v, err=%v", complete, err)
	}
	if complete, _, err := r.AddFragment(src, 3, 1, false, []byte("b")); err != nil || complete {
		t.Fatalf("fragment 1: complete=%v, err=%v", complete, err)
	}
	// Re-send fragment 1, a duplicate of the one just appended.
	complete, frags, err := r.AddFragment(src, 3, 1, false, []byte("b"))
	if err != nil {
		t.Fatalf("duplicate AddFragment() error = %v", err)
	}
	if complete || frags != nil {
		t.Fatalf("duplicate fragment should be a no-op, got complete=%v frags=%v", complete, frags)
	}
}

func TestAddFragmentTimeoutExpiresContext(t *testing.T) {
	r, err := New(0, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	src := testSrc()

	if complete, _, err := r.AddFragment(src, 4, 0, false, []byte("a")); err != nil || complete {
		t.Fatalf("fragment 0: complete=%v, err=%v", complete, err)
	}
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 before expiry", r.Len())
	}

	time.Sleep(100 * time.Millisecond)
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after timeout", r.Len())
	}

	// A later fragment with the same key starts fresh at fid=0.
	complete, frags, err := r.AddFragment(src, 4, 0, true, []byte("restart"))
	if err != nil {
		t.Fatalf("restart AddFragment() error = %v", err)
	}
	if !complete || len(frags) != 1 || string(frags[0]) != "restart" {
		t.Fatalf("restart fragment should complete fresh, got complete=%v frags=%v", complete, frags)
	}
}

func TestDropRemovesPartialContext(t *testing.T) {
	r, err := New(0, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	src := testSrc()

	if complete, _, err := r.AddFragment(src, 2, 0, false, []byte("a")); err != nil || complete {
		t.Fatalf("fragment 0: complete=%v, err=%v", complete, err)
	}
	r.Drop(src, 2)
	if r.Len() != 0 {
		t.Fatalf("Len() = %d, want 0 after Drop", r.Len())
	}
}

func TestRegistryEvictsOldestContextAtCapacity(t *testing.T) {
	r, err := New(2, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	src := testSrc()

	for id := uint16(0); id < 3; id++ {
		if complete, _, err := r.AddFragment(src, id, 0, false, []byte("a")); err != nil || complete {
			t.Fatalf("message %d fragment 0: complete=%v, err=%v", id, complete, err)
		}
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (bounded by capacity)", r.Len())
	}
}
