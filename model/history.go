package model

import (
	"crypto/md5"
	"fmt"
)

const defaultHistorySize = 5

// Hash returns an MD5 hash of the current cell states
func (b *Board) Hash() string {
	h := md5.New()
	buf := make([]byte, len(b.cells))
	for i, c := range b.cells {
		buf[i] = byte(c)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// History keeps recent board hashes for cycle detection
type History struct {
	hashes []string
	limit  int
}

func NewHistory(limit int) *History {
	if limit < 1 {
		limit = defaultHistorySize
	}
	return &History{limit: limit}
}

// Record adds a hash and drops the oldest once the limit is reached
func (h *History) Record(hash string) {
	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.limit {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets every recorded hash
func (h *History) Reset() {
	h.hashes = nil
}

func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant reports whether hash repeats one of the last three recorded states,
// which catches still lifes and oscillators of period 2 and 3
func (h *History) IsStagnant(hash string) bool {
	for i := 1; i <= 3 && i <= len(h.hashes); i++ {
		if h.hashes[len(h.hashes)-i] == hash {
			return true
		}
	}
	return false
}
