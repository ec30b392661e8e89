// Package reassembly implements the CMDU fragment reassembly registry:
// a (source MAC, message ID)-keyed state machine that buffers out-of-
// order-free, ordered fragment runs until the one carrying
// last_fragment_indicator arrives, a timeout elapses, or the registry's
// bounded capacity evicts the oldest partial context.
//
// Grounded in structure on the teacher's neighborTable (mutex-guarded
// map, TTL expiry, periodic cleanup), generalized to a capacity-bounded
// LRU instead of an unbounded map so a fragment flood cannot grow the
// registry without limit.
package reassembly

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru"
)

// DefaultTimeout is the recommended reassembly deadline (spec §4.4): a
// partial context older than this is dropped silently.
const DefaultTimeout = 10 * time.Second

// DefaultCapacity bounds the number of concurrently partial contexts.
const DefaultCapacity = 256

// Key identifies a reassembly context.
type Key struct {
	SrcMAC    [6]byte
	MessageID uint16
}

func (k Key) String() string {
	return fmt.Sprintf("%x/%04x", k.SrcMAC, k.MessageID)
}

type context struct {
	fragments   [][]byte
	expectedFID uint8
	timer       *time.Timer
}

// Registry is the single process-wide mutable gate over reassembly
// state; callers construct one per AL node (or one per test, since it
// is never a true global — DESIGN NOTES §9 "Global registry state").
type Registry struct {
	mu      sync.Mutex
	cache   *lru.Cache
	timeout time.Duration
}

// New constructs a Registry bounded to capacity concurrently partial
// contexts, expiring any context idle longer than timeout. capacity<=0
// and timeout<=0 fall back to DefaultCapacity/DefaultTimeout.
func New(capacity int, timeout time.Duration) (*Registry, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	r := &Registry{timeout: timeout}
	cache, err := lru.NewWithEvict(capacity, r.onEvict)
	if err != nil {
		return nil, fmt.Errorf("reassembly: building registry: %w", err)
	}
	r.cache = cache
	return r, nil
}

// onEvict stops a context's timer when the LRU evicts it to make room
// for a newer one, so it doesn't fire against an already-gone context.
func (r *Registry) onEvict(_ interface{}, value interface{}) {
	if ctx, ok := value.(*context); ok && ctx.timer != nil {
		ctx.timer.Stop()
	}
}

// AddFragment feeds one fragment's TLV-stream payload into the registry
// per the state table in spec §4.4. complete reports whether this
// fragment completed a message; when true, fragments holds the ordered
// payloads of the whole message and the context has been dropped.
func (r *Registry) AddFragment(src [6]byte, messageID uint16, fragmentID uint8, last bool, payload []byte) (complete bool, fragments [][]byte, err error) {
	key := Key{SrcMAC: src, MessageID: messageID}

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.cache.Get(key)
	if !ok {
		// Empty state.
		if fragmentID != 0 {
			return false, nil, nil // mismatched fid on an empty context: drop
		}
		frags := [][]byte{cloneBytes(payload)}
		if last {
			return true, frags, nil
		}
		ctx := &context{fragments: frags, expectedFID: 1}
		ctx.timer = time.AfterFunc(r.timeout, func() { r.expire(key) })
		r.cache.Add(key, ctx)
		return false, nil, nil
	}

	ctx := v.(*context)

	if fragmentID == ctx.expectedFID-1 {
		// Duplicate of the fragment just appended: idempotent no-op.
		return false, nil, nil
	}
	if fragmentID != ctx.expectedFID {
		return false, nil, nil // mismatched fid: drop this fragment, keep context
	}

	ctx.fragments = append(ctx.fragments, cloneBytes(payload))
	ctx.expectedFID++
	ctx.timer.Reset(r.timeout)

	if last {
		r.cache.Remove(key)
		return true, ctx.fragments, nil
	}
	return false, nil, nil
}

// expire drops a context whose timer fired without completion. A
// subsequent fragment with the same key begins a fresh context at
// fid=0, per spec §5's cancellation discipline.
func (r *Registry) expire(key Key) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Remove(key)
}

// Len reports the number of currently partial contexts, for diagnostics
// and tests.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Len()
}

// Drop removes any context for (src, messageID), releasing its timer.
// Exposed so the transport layer can discard state on a detected error
// without waiting out the full timeout.
func (r *Registry) Drop(src [6]byte, messageID uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Remove(Key{SrcMAC: src, MessageID: messageID})
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
