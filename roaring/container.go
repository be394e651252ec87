package roaring

import "github.com/kelindar/bitmap"

// arrayToBitmapThreshold is the cardinality at which a growing array
// container is converted to a denser representation.
const arrayToBitmapThreshold = 4096

// ctype tags which representation a container currently uses.
type ctype byte

const (
	typeArray ctype = iota
	typeBitmap
	typeRun
)

// container is a tagged union over the three representations a block of
// 65,536 values (one 16-bit key's worth) can take. Exactly one of the
// Data/Bits fields is meaningful at a time, selected by Type.
type container struct {
	Type ctype
	Size uint32 // cached cardinality

	Data []uint16      // typeArray: sorted values. typeRun: (start, length-1) pairs.
	Bits bitmap.Bitmap // typeBitmap: 1024 words addressing 65,536 positions.
}

func newArrayContainer() container {
	return container{Type: typeArray, Data: make([]uint16, 0, 64)}
}

// insert adds value to the container, performing the automatic
// (eager) representation conversion rules where applicable, and
// returns whether the value was not already present.
func (c *container) insert(value uint16) bool {
	switch c.Type {
	case typeArray:
		if !arrInsert(&c.Data, value) {
			return false
		}
		c.Size++
		if c.Size >= arrayToBitmapThreshold {
			c.convertFromArray()
		}
		return true
	case typeBitmap:
		if !c.Bits.Contains(uint32(value)) {
			c.Bits.Set(uint32(value))
			c.Size++
			return true
		}
		return false
	case typeRun:
		if !runInsert(&c.Data, value) {
			return false
		}
		c.Size++
		return true
	}
	return false
}

// remove deletes value from the container, performing the automatic
// Bitmap->Array demotion where applicable, and returns whether the
// value was present. Run containers are never auto-converted on remove;
// callers must call optimize() to recover from fragmentation.
func (c *container) remove(value uint16) bool {
	switch c.Type {
	case typeArray:
		if !arrRemove(&c.Data, value) {
			return false
		}
		c.Size--
		return true
	case typeBitmap:
		if c.Bits.Contains(uint32(value)) {
			c.Bits.Remove(uint32(value))
			c.Size--
			if c.Size < arrayToBitmapThreshold {
				c.convertFromBitmap()
			}
			return true
		}
		return false
	case typeRun:
		if !runRemove(&c.Data, value) {
			return false
		}
		c.Size--
		return true
	}
	return false
}

// contains reports whether value is present in the container.
func (c *container) contains(value uint16) bool {
	switch c.Type {
	case typeArray:
		return arrContains(c.Data, value)
	case typeBitmap:
		return c.Bits.Contains(uint32(value))
	case typeRun:
		return runContains(c.Data, value)
	}
	return false
}

func (c *container) cardinality() int { return int(c.Size) }
func (c *container) isEmpty() bool    { return c.Size == 0 }

// clone returns an independent copy of the container.
func (c container) clone() container {
	out := container{Type: c.Type, Size: c.Size}
	if c.Data != nil {
		out.Data = append([]uint16(nil), c.Data...)
	}
	if c.Bits != nil {
		out.Bits = borrowBitmap()
		copy(out.Bits, c.Bits)
	}
	return out
}

// convertFromArray decides between Bitmap and Run when an array grows
// past the density threshold: Run is picked only when it is
// substantially smaller than a Bitmap and the data is highly
// run-compressible.
func (c *container) convertFromArray() {
	runs := countRunsInArray(c.Data)
	runBytes := runs * 4
	bitmapBytes := 8192
	if runBytes < bitmapBytes/2 && runs < len(c.Data)/4 {
		c.Data = arrToRunData(c.Data, runs)
		c.Type = typeRun
		return
	}

	bits := borrowBitmap()
	for _, v := range c.Data {
		bits.Set(uint32(v))
	}
	c.Data = nil
	c.Bits = bits
	c.Type = typeBitmap
}

func (c *container) convertFromBitmap() {
	c.Data = bmpToArray(c.Bits)
	release(c.Bits)
	c.Bits = nil
	c.Type = typeArray
}

// optimize recomputes the best-fit representation for the container's
// current contents, following the explicit conversion table. Unlike the
// automatic rules applied by insert/remove, this is the only mechanism
// that recovers a Run container fragmented by deletes.
func (c *container) optimize() {
	switch c.Type {
	case typeArray:
		n := len(c.Data)
		runs := countRunsInArray(c.Data)
		switch {
		case runs < n/2 && n >= 10:
			c.Data = arrToRunData(c.Data, runs)
			c.Type = typeRun
		case n >= arrayToBitmapThreshold:
			bits := borrowBitmap()
			for _, v := range c.Data {
				bits.Set(uint32(v))
			}
			c.Data = nil
			c.Bits = bits
			c.Type = typeBitmap
		}
	case typeRun:
		n := int(c.Size)
		runs := len(c.Data) / 2
		if runs > n/2 || n < 10 {
			c.Data = runToArrayData(c.Data, n)
			c.Type = typeArray
		}
	case typeBitmap:
		n := int(c.Size)
		if n >= arrayToBitmapThreshold {
			return
		}
		arr := bmpToArray(c.Bits)
		runs := countRunsInArray(arr)
		switch {
		case runs < n/2 && runs > 10:
			c.Data = arrToRunData(arr, runs)
			c.Type = typeRun
		default:
			c.Data = arr
			c.Type = typeArray
		}
		release(c.Bits)
		c.Bits = nil
	}
}
