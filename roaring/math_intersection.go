package roaring

// Intersect returns a newly allocated bitmap holding every value present
// in both rb and other.
func (rb *Bitmap) Intersect(other *Bitmap) *Bitmap {
	out := rb.Clone()
	out.IntersectWith(other)
	return out
}

// IntersectWith mutates rb in place to hold only the values also present
// in other.
func (rb *Bitmap) IntersectWith(other *Bitmap) {
	if other == nil || len(other.containers) == 0 || len(rb.containers) == 0 {
		rb.Clear()
		return
	}

	var kept []container
	var keptIdx []uint16
	i, j := 0, 0
	for i < len(rb.containers) && j < len(other.containers) {
		hi1, hi2 := rb.index[i], other.index[j]
		switch {
		case hi1 < hi2:
			i++
		case hi1 > hi2:
			j++
		default:
			if c, ok := ctrIntersection(&rb.containers[i], &other.containers[j]); ok {
				kept = append(kept, c)
				keptIdx = append(keptIdx, hi1)
			}
			i++
			j++
		}
	}

	rb.containers = kept
	rb.index = keptIdx
}

// ctrIntersection dispatches a container-level intersection across all
// nine representation pairings. ok is false when the result is empty.
func ctrIntersection(c1, c2 *container) (container, bool) {
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			return arrIntersectionContainer(c1, c2)
		case typeBitmap:
			return arrProbeBmpIntersection(c1, c2)
		case typeRun:
			return runIntersectionArr(c2, c1)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			return arrProbeBmpIntersection(c2, c1)
		case typeBitmap:
			return bmpIntersectionContainer(c1, c2)
		case typeRun:
			return runIntersectionBmp(c2, c1)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			return runIntersectionArr(c1, c2)
		case typeBitmap:
			return runIntersectionBmp(c1, c2)
		case typeRun:
			return runIntersectionRun(c1, c2)
		}
	}
	panic("roaring: unreachable container type")
}

func arrIntersectionContainer(c1, c2 *container) (container, bool) {
	data := arrIntersection(c1.Data, c2.Data)
	if len(data) == 0 {
		return container{}, false
	}
	return container{Type: typeArray, Data: data, Size: uint32(len(data))}, true
}

// arrProbeBmpIntersection walks the array's values, probing the bitmap,
// as the cross-type dispatch rule requires for an Array-Bitmap pairing.
func arrProbeBmpIntersection(arrC, bmpC *container) (container, bool) {
	var data []uint16
	for _, v := range arrC.Data {
		if bmpC.Bits.Contains(uint32(v)) {
			data = append(data, v)
		}
	}
	if len(data) == 0 {
		return container{}, false
	}
	return container{Type: typeArray, Data: data, Size: uint32(len(data))}, true
}

func bmpIntersectionContainer(c1, c2 *container) (container, bool) {
	bits, count, ok := bmpIntersection(c1.Bits, c2.Bits)
	if !ok {
		return container{}, false
	}
	out := container{Type: typeBitmap, Bits: bits, Size: uint32(count)}
	if count < arrayToBitmapThreshold {
		out.convertFromBitmap()
	}
	return out, true
}

func runIntersectionArr(runC, arrC *container) (container, bool) {
	expanded := runToArrayData(runC.Data, int(runC.Size))
	return arrIntersectionContainer(&container{Type: typeArray, Data: expanded}, arrC)
}

func runIntersectionBmp(runC, bmpC *container) (container, bool) {
	expanded := runToArrayData(runC.Data, int(runC.Size))
	return arrProbeBmpIntersection(&container{Type: typeArray, Data: expanded}, bmpC)
}

func runIntersectionRun(c1, c2 *container) (container, bool) {
	expanded1 := runToArrayData(c1.Data, int(c1.Size))
	expanded2 := runToArrayData(c2.Data, int(c2.Size))
	return arrIntersectionContainer(
		&container{Type: typeArray, Data: expanded1},
		&container{Type: typeArray, Data: expanded2},
	)
}
