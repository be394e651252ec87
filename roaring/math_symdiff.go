package roaring

// SymmetricDifference returns a newly allocated bitmap holding every
// value present in exactly one of rb or other.
func (rb *Bitmap) SymmetricDifference(other *Bitmap) *Bitmap {
	out := rb.Clone()
	out.SymmetricDifferenceWith(other)
	return out
}

// SymmetricDifferenceWith mutates rb in place to hold every value
// present in exactly one of rb or other.
func (rb *Bitmap) SymmetricDifferenceWith(other *Bitmap) {
	switch {
	case other == nil || len(other.containers) == 0:
		return
	case len(rb.containers) == 0:
		rb.index = append(rb.index[:0], other.index...)
		rb.containers = rb.containers[:0]
		for i := range other.containers {
			rb.containers = append(rb.containers, other.containers[i].clone())
		}
		return
	}

	var merged []container
	var mergedIdx []uint16
	i, j := 0, 0
	for i < len(rb.containers) && j < len(other.containers) {
		hi1, hi2 := rb.index[i], other.index[j]
		switch {
		case hi1 < hi2:
			merged = append(merged, rb.containers[i])
			mergedIdx = append(mergedIdx, hi1)
			i++
		case hi1 > hi2:
			// Containers copied through from other must be cloned so a
			// later mutation of rb cannot reach into other's storage.
			merged = append(merged, other.containers[j].clone())
			mergedIdx = append(mergedIdx, hi2)
			j++
		default:
			if c, ok := ctrSymmetricDifference(&rb.containers[i], &other.containers[j]); ok {
				merged = append(merged, c)
				mergedIdx = append(mergedIdx, hi1)
			}
			i++
			j++
		}
	}
	merged = append(merged, rb.containers[i:]...)
	mergedIdx = append(mergedIdx, rb.index[i:]...)
	for ; j < len(other.containers); j++ {
		merged = append(merged, other.containers[j].clone())
		mergedIdx = append(mergedIdx, other.index[j])
	}

	rb.containers = merged
	rb.index = mergedIdx
}

// ctrSymmetricDifference dispatches a container-level symmetric
// difference across all nine representation pairings. When a Bitmap is
// on either side, the Array side is converted to a Bitmap first, per
// the cross-type dispatch rule. ok is false when the result is empty.
func ctrSymmetricDifference(c1, c2 *container) (container, bool) {
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			return arrSymDiffContainer(c1, c2)
		case typeBitmap:
			return bmpSymDiffArrAsBmp(c2, c1)
		case typeRun:
			return runSymDiffArr(c2, c1)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			return bmpSymDiffArrAsBmp(c1, c2)
		case typeBitmap:
			return bmpSymDiffContainer(c1, c2)
		case typeRun:
			return runSymDiffBmp(c2, c1)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			return runSymDiffArr(c1, c2)
		case typeBitmap:
			return runSymDiffBmp(c1, c2)
		case typeRun:
			return runSymDiffRun(c1, c2)
		}
	}
	panic("roaring: unreachable container type")
}

func arrSymDiffContainer(c1, c2 *container) (container, bool) {
	data := arrSymmetricDifference(c1.Data, c2.Data)
	if len(data) == 0 {
		return container{}, false
	}
	out := container{Type: typeArray, Data: data, Size: uint32(len(data))}
	if out.Size >= arrayToBitmapThreshold {
		out.convertFromArray()
	}
	return out, true
}

// bmpSymDiffArrAsBmp converts the array side to a bitmap first, per the
// cross-type dispatch rule for XOR with a bitmap on one side.
func bmpSymDiffArrAsBmp(bmpC, arrC *container) (container, bool) {
	arrBits := borrowBitmap()
	for _, v := range arrC.Data {
		arrBits.Set(uint32(v))
	}
	defer release(arrBits)

	bits, count, ok := bmpSymmetricDifference(bmpC.Bits, arrBits)
	if !ok {
		return container{}, false
	}
	out := container{Type: typeBitmap, Bits: bits, Size: uint32(count)}
	if count < arrayToBitmapThreshold {
		out.convertFromBitmap()
	}
	return out, true
}

func bmpSymDiffContainer(c1, c2 *container) (container, bool) {
	bits, count, ok := bmpSymmetricDifference(c1.Bits, c2.Bits)
	if !ok {
		return container{}, false
	}
	out := container{Type: typeBitmap, Bits: bits, Size: uint32(count)}
	if count < arrayToBitmapThreshold {
		out.convertFromBitmap()
	}
	return out, true
}

func runSymDiffArr(runC, arrC *container) (container, bool) {
	expanded := runToArrayData(runC.Data, int(runC.Size))
	return arrSymDiffContainer(&container{Type: typeArray, Data: expanded}, arrC)
}

func runSymDiffBmp(runC, bmpC *container) (container, bool) {
	expanded := runToArrayData(runC.Data, int(runC.Size))
	return bmpSymDiffArrAsBmp(bmpC, &container{Type: typeArray, Data: expanded})
}

func runSymDiffRun(c1, c2 *container) (container, bool) {
	expanded1 := runToArrayData(c1.Data, int(c1.Size))
	expanded2 := runToArrayData(c2.Data, int(c2.Size))
	return arrSymDiffContainer(
		&container{Type: typeArray, Data: expanded1},
		&container{Type: typeArray, Data: expanded2},
	)
}
