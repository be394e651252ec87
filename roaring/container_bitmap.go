package roaring

import "github.com/kelindar/bitmap"

// bmpToArray extracts every set bit into a newly allocated, sorted
// uint16 slice. Used when a bitmap container shrinks below the density
// threshold and must demote to an array.
func bmpToArray(bits bitmap.Bitmap) []uint16 {
	if bits == nil {
		return nil
	}

	out := make([]uint16, 0, 64)
	bits.Range(func(x uint32) {
		out = append(out, uint16(x))
	})
	return out
}

// bmpUnion computes the elementwise OR of two bitmap containers into a
// freshly borrowed bitmap, along with its cardinality.
func bmpUnion(a, b bitmap.Bitmap) (bitmap.Bitmap, int) {
	out := borrowBitmap()
	copy(out, a)
	out.Or(b)
	return out, out.Count()
}

// bmpIntersection computes the elementwise AND of two bitmap containers.
// Returns ok=false when the result is empty.
func bmpIntersection(a, b bitmap.Bitmap) (out bitmap.Bitmap, count int, ok bool) {
	out = borrowBitmap()
	copy(out, a)
	out.And(b)
	count = out.Count()
	if count == 0 {
		release(out)
		return nil, 0, false
	}
	return out, count, true
}

// bmpDifference computes a AND NOT b. Returns ok=false when the result
// is empty.
func bmpDifference(a, b bitmap.Bitmap) (out bitmap.Bitmap, count int, ok bool) {
	out = borrowBitmap()
	copy(out, a)
	out.AndNot(b)
	count = out.Count()
	if count == 0 {
		release(out)
		return nil, 0, false
	}
	return out, count, true
}

// bmpSymmetricDifference computes a XOR b. Returns ok=false when the
// result is empty.
func bmpSymmetricDifference(a, b bitmap.Bitmap) (out bitmap.Bitmap, count int, ok bool) {
	out = borrowBitmap()
	copy(out, a)
	out.Xor(b)
	count = out.Count()
	if count == 0 {
		release(out)
		return nil, 0, false
	}
	return out, count, true
}
