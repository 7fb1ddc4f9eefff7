package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// historySize is how many recent generations are kept for cycle detection.
const historySize = 5

// History remembers hashes of recent generations to detect static boards and
// short cycles.
type History struct {
	hashes []string
	buf    []byte
}

// GridHash returns an MD5 hash of the packed cells and the grid shape.
func (h *History) GridHash(g *Grid) string {
	words := g.Cells()
	if need := 16 + 8*len(words); cap(h.buf) < need {
		h.buf = make([]byte, need)
	}
	buf := h.buf[:16+8*len(words)]
	binary.LittleEndian.PutUint64(buf[0:], uint64(g.width))
	binary.LittleEndian.PutUint64(buf[8:], uint64(g.height))
	for i, w := range words {
		binary.LittleEndian.PutUint64(buf[16+8*i:], w)
	}
	return fmt.Sprintf("%x", md5.Sum(buf))
}

// Update records the current generation and trims the history.
func (h *History) Update(g *Grid) {
	h.hashes = append(h.hashes, h.GridHash(g))
	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// IsStagnant reports whether the current generation repeats one of the last
// three recorded generations. It needs at least three entries to decide.
func (h *History) IsStagnant(g *Grid) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := h.GridHash(g)
	for i := 1; i <= 3; i++ {
		if h.hashes[len(h.hashes)-i] == current {
			return true
		}
	}
	return false
}

// Forget drops every recorded generation.
func (h *History) Forget() {
	h.hashes = nil
}
