package shell

import "sync"

// A History is the address mechanism of the host environment,
// e.g. a browser's location bar and session history.
type History interface {
	// Location is the address of the current entry.
	Location() string

	// Push adds an entry after the current one, discarding any forward entries.
	Push(location string)

	// Replace overwrites the current entry.
	Replace(location string)

	// Peek returns the address delta entries away from the current one
	// without moving to it.
	Peek(delta int) (string, bool)

	// Go moves delta entries away from the current one.
	Go(delta int) bool
}

// MemoryHistory is a History kept in memory.
// It is safe for concurrent use.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []string
	index   int
}

// NewMemoryHistory constructs a MemoryHistory whose only entry is initial.
func NewMemoryHistory(initial string) *MemoryHistory {
	return &MemoryHistory{entries: []string{initial}}
}

func (h *MemoryHistory) Location() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.entries[h.index]
}

func (h *MemoryHistory) Push(location string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries = append(h.entries[:h.index+1], location)
	h.index++
}

func (h *MemoryHistory) Replace(location string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.entries[h.index] = location
}

func (h *MemoryHistory) Peek(delta int) (string, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index + delta
	if i < 0 || i >= len(h.entries) {
		return "", false
	}

	return h.entries[i], true
}

func (h *MemoryHistory) Go(delta int) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	i := h.index + delta
	if i < 0 || i >= len(h.entries) {
		return false
	}

	h.index = i
	return true
}

// Entries returns a copy of every entry and the index of the current one.
func (h *MemoryHistory) Entries() ([]string, int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entries := make([]string, len(h.entries))
	copy(entries, h.entries)
	return entries, h.index
}
