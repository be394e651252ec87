package roaring

import (
	"sync"

	"github.com/kelindar/bitmap"
)

// bitmapWords is the number of uint64 words needed to address the full
// 65,536-value span of a single container's low bits.
const bitmapWords = 65536 / 64

var bitmapPool = sync.Pool{
	New: func() any {
		return make(bitmap.Bitmap, bitmapWords)
	},
}

// borrowBitmap returns a cleared, full-size bitmap.Bitmap from the pool.
func borrowBitmap() bitmap.Bitmap {
	bm := bitmapPool.Get().(bitmap.Bitmap)
	for i := range bm {
		bm[i] = 0
	}
	return bm
}

// release returns a bitmap.Bitmap to the pool for reuse.
func release(bm bitmap.Bitmap) {
	if cap(bm) == bitmapWords {
		bitmapPool.Put(bm[:bitmapWords])
	}
}
