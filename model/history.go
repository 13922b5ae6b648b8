package model

const defaultHistorySize = 5

// History stores recent board hashes for cycle detection.
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps the last size hashes (5 when size <= 0).
func NewHistory(size int) *History {
	if size <= 0 {
		size = defaultHistorySize
	}
	return &History{size: size}
}

// Record adds a hash and drops the oldest entries beyond the history size.
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[len(h.hashes)-h.size:]
	}
}

// Stagnant reports whether hash matches one of the last three recorded states,
// which catches still lifes and oscillators of period 1 to 3.
// Call it before recording the current state.
func (h *History) Stagnant(hash string) bool {
	for i := len(h.hashes) - 1; i >= 0 && i >= len(h.hashes)-3; i-- {
		if h.hashes[i] == hash {
			return true
		}
	}
	return false
}

// Len returns the number of recorded hashes.
func (h *History) Len() int {
	return len(h.hashes)
}

// Reset forgets every recorded hash.
func (h *History) Reset() {
	h.hashes = nil
}
