package storage

// Memory is a Backend that lives for the process only
type Memory struct {
	data map[string][]byte
}

// NewMemory creates an empty in-memory backend
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Read returns a copy of the bytes stored under key
func (m *Memory) Read(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Write stores copies of every entry
func (m *Memory) Write(entries map[string][]byte) error {
	for k, v := range entries {
		m.data[k] = append([]byte(nil), v...)
	}
	return nil
}

// Delete removes key
func (m *Memory) Delete(key string) error {
	delete(m.data, key)
	return nil
}
