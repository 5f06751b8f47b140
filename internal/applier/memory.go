package applier

// MemorySink is an in-memory StyleSink. It remembers first-set order so
// callers can render the properties deterministically.
type MemorySink struct {
	values map[string]string
	order  []string
}

// NewMemorySink returns an empty MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{values: make(map[string]string)}
}

// SetProperty stores the property, keeping first-set order.
func (m *MemorySink) SetProperty(name, value string) error {
	if _, exists := m.values[name]; !exists {
		m.order = append(m.order, name)
	}
	m.values[name] = value
	return nil
}

// Get returns a property value and whether it has been set.
func (m *MemorySink) Get(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Names returns the property names in first-set order.
func (m *MemorySink) Names() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of distinct properties set.
func (m *MemorySink) Len() int {
	return len(m.values)
}

var _ StyleSink = (*MemorySink)(nil)
