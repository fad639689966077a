package playground

// DefaultHistorySize is how many statements a History keeps unless told
// otherwise.
const DefaultHistorySize = 10

// History holds previously run statements, most recent first.
type History struct {
	max     int
	entries []string
}

// NewHistory returns a history keeping at most max entries. A max below one
// selects DefaultHistorySize.
func NewHistory(max int) *History {
	if max < 1 {
		max = DefaultHistorySize
	}
	return &History{max: max}
}

// Add records query as the most recent entry, dropping the oldest entry when
// the history is full.
func (h *History) Add(query string) {
	h.entries = append([]string{query}, h.entries...)
	if len(h.entries) > h.max {
		h.entries = h.entries[:h.max]
	}
}

// Entries returns the recorded statements, most recent first.
func (h *History) Entries() []string {
	return append([]string(nil), h.entries...)
}

// Len returns the number of recorded statements.
func (h *History) Len() int { return len(h.entries) }
