package window

import "image/color"

// fillRGBA expands the first n packed cells into RGBA pixels in buf.
func fillRGBA(buf []byte, words []uint64, n int, on, off color.RGBA) {
	for i := range n {
		col := off
		if words[i>>6]&(1<<uint(i&63)) != 0 {
			col = on
		}
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}
