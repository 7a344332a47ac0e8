package clipboard

import (
	"slices"
	"sync"
)

// Memory is an in-process Board. Like the system clipboard it holds one
// value: writing any format clears the others.
type Memory struct {
	mu      sync.Mutex
	data    map[Format][]byte
	changed chan struct{}
	writes  int
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{data: make(map[Format][]byte)}
}

// Read returns a copy of the bytes stored for f, or nil.
func (m *Memory) Read(f Format) []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.data[f])
}

// Write replaces the clipboard contents and signals the previous owner.
func (m *Memory) Write(f Format, data []byte) <-chan struct{} {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.changed != nil {
		close(m.changed)
	}
	m.data = map[Format][]byte{f: slices.Clone(data)}
	m.changed = make(chan struct{})
	m.writes++
	return m.changed
}

// Writes returns how many times the clipboard was written.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
