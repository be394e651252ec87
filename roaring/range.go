package roaring

import "math/bits"

// Range calls fn for every value in the bitmap in strictly ascending
// order. If fn returns false, iteration stops early.
func (rb *Bitmap) Range(fn func(x uint32) bool) {
	for i := range rb.containers {
		c := &rb.containers[i]
		base := uint32(rb.index[i]) << 16

		switch c.Type {
		case typeArray:
			for _, v := range c.Data {
				if !fn(base | uint32(v)) {
					return
				}
			}
		case typeBitmap:
			stopped := false
			c.Bits.Range(func(v uint32) {
				if stopped {
					return
				}
				if !fn(base | v) {
					stopped = true
				}
			})
			if stopped {
				return
			}
		case typeRun:
			for i := 0; i+1 < len(c.Data); i += 2 {
				start, lengthMinus1 := uint32(c.Data[i]), uint32(c.Data[i+1])
				for v := start; v <= start+lengthMinus1; v++ {
					if !fn(base | v) {
						return
					}
					if v == 0xFFFF {
						break
					}
				}
			}
		}
	}
}

// Iterator is a stateful, single-pass, ascending producer over a
// bitmap's values. It is not restartable: once exhausted, construct a
// fresh one with Bitmap.Iterator to traverse again.
//
// Internally it walks containers in order and, within a BitmapContainer,
// walks word by word - the same shape the callback-based Range uses,
// exposed here as a pull-based cursor instead.
type Iterator struct {
	rb       *Bitmap
	ctrIndex int

	arrPos int // typeArray: next index into Data

	bmpWord int    // typeBitmap: word currently being drained
	bmpBits uint64 // typeBitmap: remaining set bits in bmpWord, already shifted into place

	runIdx    int  // typeRun: index of the current run, in run units
	runCursor uint32
	runEnd    uint32
	runLoaded bool
}

// Iterator returns a fresh iterator positioned before the first value.
func (rb *Bitmap) Iterator() *Iterator {
	return &Iterator{rb: rb}
}

// Next advances the iterator and returns the next ascending value, or
// ok=false once the bitmap is exhausted.
func (it *Iterator) Next() (value uint32, ok bool) {
	for it.ctrIndex < len(it.rb.containers) {
		c := &it.rb.containers[it.ctrIndex]
		base := uint32(it.rb.index[it.ctrIndex]) << 16

		switch c.Type {
		case typeArray:
			if it.arrPos < len(c.Data) {
				v := base | uint32(c.Data[it.arrPos])
				it.arrPos++
				return v, true
			}

		case typeBitmap:
			for it.bmpBits == 0 && it.bmpWord < len(c.Bits) {
				it.bmpBits = c.Bits[it.bmpWord]
				if it.bmpBits == 0 {
					it.bmpWord++
				}
			}
			if it.bmpBits != 0 {
				tz := bits.TrailingZeros64(it.bmpBits)
				v := base | uint32(it.bmpWord*64+tz)
				it.bmpBits &= it.bmpBits - 1 // clear the lowest set bit
				if it.bmpBits == 0 {
					it.bmpWord++
				}
				return v, true
			}

		case typeRun:
			if !it.runLoaded && it.runIdx*2 < len(c.Data) {
				it.runCursor = uint32(c.Data[it.runIdx*2])
				it.runEnd = it.runCursor + uint32(c.Data[it.runIdx*2+1])
				it.runLoaded = true
			}
			if it.runLoaded {
				v := base | it.runCursor
				if it.runCursor == it.runEnd {
					it.runIdx++
					it.runLoaded = false
				} else {
					it.runCursor++
				}
				return v, true
			}
		}

		it.ctrIndex++
		it.arrPos = 0
		it.bmpWord = 0
		it.bmpBits = 0
		it.runIdx = 0
		it.runLoaded = false
	}

	return 0, false
}

