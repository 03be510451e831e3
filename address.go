package navi

import (
	"net/url"
	"strings"
	"sync"
)

// AddressMode selects where the active path is recorded.
type AddressMode int

const (
	// ModeNone keeps no address; Navigate only activates.
	ModeNone AddressMode = iota
	// ModeHistory records the path as a history-style location path.
	ModeHistory
	// ModeHash records the path in the hash fragment ("#/settings").
	ModeHash
)

func (m AddressMode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeHistory:
		return "history"
	case ModeHash:
		return "hash"
	default:
		return "unknown"
	}
}

// AddressSource is an external place where the active path lives.
//
// Current returns the raw path as seen by the source, already decoded
// (for hash sources, without the leading "#"). Push records a normalized
// path in the source's own format without notifying listeners. Listen registers a callback that
// is invoked with the raw path whenever the address changes from the
// outside, such as back/forward navigation or a manual hash edit.
type AddressSource interface {
	Current() string
	Push(path string)
	Listen(func(path string))
}

// LocationPath returns the history-style location for a normalized path.
func LocationPath(normalized string) string {
	if normalized == "/" {
		return "/"
	}
	return "/" + normalized
}

// HashFragment returns the fragment, including the leading "#", that
// represents a normalized path. Segments are escaped so that
// PathFromFragment returns the path unchanged.
func HashFragment(normalized string) string {
	if normalized == "/" {
		return "#/"
	}
	segments := strings.Split(normalized, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return "#/" + strings.Join(segments, "/")
}

// PathFromFragment decodes a fragment (with or without the leading "#")
// into a raw path. Undecodable fragments are returned as-is.
func PathFromFragment(fragment string) string {
	fragment = strings.TrimPrefix(fragment, "#")
	if decoded, err := url.PathUnescape(fragment); err == nil {
		return decoded
	}
	return fragment
}

type listeners struct {
	fns []func(string)
}

func (l *listeners) add(fn func(string)) {
	l.fns = append(l.fns, fn)
}

func (l *listeners) snapshot() []func(string) {
	fns := make([]func(string), len(l.fns))
	copy(fns, l.fns)
	return fns
}

func notify(fns []func(string), path string) {
	for _, fn := range fns {
		fn(path)
	}
}

// MemoryHistory is an in-memory history-style AddressSource. Back and
// Forward behave like the browser buttons and notify listeners.
type MemoryHistory struct {
	mu        sync.Mutex
	entries   []string
	pos       int
	listeners listeners
}

// NewMemoryHistory creates a history whose single entry is initial.
func NewMemoryHistory(initial string) *MemoryHistory {
	if initial == "" {
		initial = "/"
	}
	return &MemoryHistory{entries: []string{initial}}
}

func (h *MemoryHistory) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.pos]
}

// Push adds an entry after the current one, discarding any forward
// entries.
func (h *MemoryHistory) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.pos+1], LocationPath(Normalize(path)))
	h.pos = len(h.entries) - 1
}

func (h *MemoryHistory) Listen(fn func(string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners.add(fn)
}

// Len returns the number of history entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}

// Back moves one entry back. It reports false if there is nothing to
// go back to.
func (h *MemoryHistory) Back() bool {
	return h.move(-1)
}

// Forward moves one entry forward. It reports false if there is
// nothing to go forward to.
func (h *MemoryHistory) Forward() bool {
	return h.move(1)
}

func (h *MemoryHistory) move(delta int) bool {
	h.mu.Lock()
	next := h.pos + delta
	if next < 0 || next >= len(h.entries) {
		h.mu.Unlock()
		return false
	}
	h.pos = next
	path := h.entries[next]
	fns := h.listeners.snapshot()
	h.mu.Unlock()

	// listeners run unlocked; they typically read Current
	notify(fns, path)
	return true
}

// MemoryHash is an in-memory hash-fragment AddressSource.
type MemoryHash struct {
	mu        sync.Mutex
	fragment  string
	listeners listeners
}

// NewMemoryHash creates a hash source holding fragment, e.g. "#/settings".
func NewMemoryHash(fragment string) *MemoryHash {
	return &MemoryHash{fragment: fragment}
}

// Fragment returns the raw fragment including the leading "#", or the
// empty string if none is set.
func (h *MemoryHash) Fragment() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fragment
}

func (h *MemoryHash) Current() string {
	return PathFromFragment(h.Fragment())
}

// Push stores the fragment for the given path.
func (h *MemoryHash) Push(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fragment = HashFragment(Normalize(path))
}

func (h *MemoryHash) Listen(fn func(string)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners.add(fn)
}

// SetFragment replaces the fragment as if it were edited outside the
// engine, and notifies listeners.
func (h *MemoryHash) SetFragment(fragment string) {
	h.mu.Lock()
	if fragment != "" && !strings.HasPrefix(fragment, "#") {
		fragment = "#" + fragment
	}
	h.fragment = fragment
	fns := h.listeners.snapshot()
	h.mu.Unlock()

	notify(fns, PathFromFragment(fragment))
}
