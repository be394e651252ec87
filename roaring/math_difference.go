package roaring

// Difference returns a newly allocated bitmap holding every value of rb
// that is not present in other.
func (rb *Bitmap) Difference(other *Bitmap) *Bitmap {
	out := rb.Clone()
	out.DifferenceWith(other)
	return out
}

// DifferenceWith mutates rb in place to remove every value also present
// in other.
func (rb *Bitmap) DifferenceWith(other *Bitmap) {
	if other == nil || len(other.containers) == 0 || len(rb.containers) == 0 {
		return
	}

	var kept []container
	var keptIdx []uint16
	i, j := 0, 0
	for i < len(rb.containers) && j < len(other.containers) {
		hi1, hi2 := rb.index[i], other.index[j]
		switch {
		case hi1 < hi2:
			kept = append(kept, rb.containers[i])
			keptIdx = append(keptIdx, hi1)
			i++
		case hi1 > hi2:
			j++
		default:
			if c, ok := ctrDifference(&rb.containers[i], &other.containers[j]); ok {
				kept = append(kept, c)
				keptIdx = append(keptIdx, hi1)
			}
			i++
			j++
		}
	}
	kept = append(kept, rb.containers[i:]...)
	keptIdx = append(keptIdx, rb.index[i:]...)

	rb.containers = kept
	rb.index = keptIdx
}

// ctrDifference dispatches a container-level difference (c1 - c2) across
// all nine representation pairings. ok is false when the result is
// empty.
func ctrDifference(c1, c2 *container) (container, bool) {
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			return arrDifferenceContainer(c1, c2)
		case typeBitmap:
			return arrDifferenceBmp(c1, c2)
		case typeRun:
			return arrDifferenceRun(c1, c2)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			return bmpDifferenceArr(c1, c2)
		case typeBitmap:
			return bmpDifferenceContainer(c1, c2)
		case typeRun:
			return bmpDifferenceRun(c1, c2)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			return runDifferenceArr(c1, c2)
		case typeBitmap:
			return runDifferenceBmp(c1, c2)
		case typeRun:
			return runDifferenceRun(c1, c2)
		}
	}
	panic("roaring: unreachable container type")
}

func arrDifferenceContainer(c1, c2 *container) (container, bool) {
	data := arrDifference(c1.Data, c2.Data)
	if len(data) == 0 {
		return container{}, false
	}
	return container{Type: typeArray, Data: data, Size: uint32(len(data))}, true
}

func arrDifferenceBmp(arrC, bmpC *container) (container, bool) {
	var data []uint16
	for _, v := range arrC.Data {
		if !bmpC.Bits.Contains(uint32(v)) {
			data = append(data, v)
		}
	}
	if len(data) == 0 {
		return container{}, false
	}
	return container{Type: typeArray, Data: data, Size: uint32(len(data))}, true
}

func bmpDifferenceArr(bmpC, arrC *container) (container, bool) {
	bits := borrowBitmap()
	copy(bits, bmpC.Bits)
	for _, v := range arrC.Data {
		bits.Remove(uint32(v))
	}
	count := bits.Count()
	if count == 0 {
		release(bits)
		return container{}, false
	}
	out := container{Type: typeBitmap, Bits: bits, Size: uint32(count)}
	if count < arrayToBitmapThreshold {
		out.convertFromBitmap()
	}
	return out, true
}

func bmpDifferenceContainer(c1, c2 *container) (container, bool) {
	bits, count, ok := bmpDifference(c1.Bits, c2.Bits)
	if !ok {
		return container{}, false
	}
	out := container{Type: typeBitmap, Bits: bits, Size: uint32(count)}
	if count < arrayToBitmapThreshold {
		out.convertFromBitmap()
	}
	return out, true
}

func arrDifferenceRun(arrC, runC *container) (container, bool) {
	expanded := runToArrayData(runC.Data, int(runC.Size))
	return arrDifferenceContainer(arrC, &container{Type: typeArray, Data: expanded})
}

func runDifferenceArr(runC, arrC *container) (container, bool) {
	expanded := runToArrayData(runC.Data, int(runC.Size))
	return arrDifferenceContainer(&container{Type: typeArray, Data: expanded}, arrC)
}

func bmpDifferenceRun(bmpC, runC *container) (container, bool) {
	expanded := runToArrayData(runC.Data, int(runC.Size))
	return bmpDifferenceArr(bmpC, &container{Type: typeArray, Data: expanded})
}

func runDifferenceBmp(runC, bmpC *container) (container, bool) {
	expanded := runToArrayData(runC.Data, int(runC.Size))
	return arrDifferenceBmp(&container{Type: typeArray, Data: expanded}, bmpC)
}

func runDifferenceRun(c1, c2 *container) (container, bool) {
	expanded1 := runToArrayData(c1.Data, int(c1.Size))
	expanded2 := runToArrayData(c2.Data, int(c2.Size))
	return arrDifferenceContainer(
		&container{Type: typeArray, Data: expanded1},
		&container{Type: typeArray, Data: expanded2},
	)
}
