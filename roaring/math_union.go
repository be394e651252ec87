package roaring

// Union returns a newly allocated bitmap holding every value present in
// either rb or other.
func (rb *Bitmap) Union(other *Bitmap) *Bitmap {
	out := rb.Clone()
	out.UnionWith(other)
	return out
}

// UnionWith mutates rb in place to hold every value present in either rb
// or other.
func (rb *Bitmap) UnionWith(other *Bitmap) {
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
			merged = append(merged, ctrUnion(&rb.containers[i], &other.containers[j]))
			mergedIdx = append(mergedIdx, hi1)
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

// ctrUnion dispatches a container-level union across all nine
// representation pairings.
func ctrUnion(c1, c2 *container) container {
	switch c1.Type {
	case typeArray:
		switch c2.Type {
		case typeArray:
			return arrUnionContainer(c1, c2)
		case typeBitmap:
			return bmpUnionArr(c2, c1)
		case typeRun:
			return runUnionArr(c2, c1)
		}
	case typeBitmap:
		switch c2.Type {
		case typeArray:
			return bmpUnionArr(c1, c2)
		case typeBitmap:
			return bmpUnionBmp(c1, c2)
		case typeRun:
			return runUnionBmp(c2, c1)
		}
	case typeRun:
		switch c2.Type {
		case typeArray:
			return runUnionArr(c1, c2)
		case typeBitmap:
			return runUnionBmp(c1, c2)
		case typeRun:
			return runUnionRun(c1, c2)
		}
	}
	panic("roaring: unreachable container type")
}

func arrUnionContainer(c1, c2 *container) container {
	out := container{Type: typeArray, Data: arrUnion(c1.Data, c2.Data)}
	out.Size = uint32(len(out.Data))
	if out.Size >= arrayToBitmapThreshold {
		out.convertFromArray()
	}
	return out
}

func bmpUnionArr(bmpC, arrC *container) container {
	bits := borrowBitmap()
	copy(bits, bmpC.Bits)
	for _, v := range arrC.Data {
		bits.Set(uint32(v))
	}
	return container{Type: typeBitmap, Bits: bits, Size: uint32(bits.Count())}
}

func bmpUnionBmp(c1, c2 *container) container {
	bits, count := bmpUnion(c1.Bits, c2.Bits)
	return container{Type: typeBitmap, Bits: bits, Size: uint32(count)}
}

// runUnionArr expands the run operand to an array and delegates to the
// array-level union, as the cross-type dispatch rule requires.
func runUnionArr(runC, arrC *container) container {
	expanded := runToArrayData(runC.Data, int(runC.Size))
	tmp := container{Type: typeArray, Data: expanded, Size: runC.Size}
	out := arrUnionContainer(&tmp, arrC)
	return out
}

func runUnionBmp(runC, bmpC *container) container {
	expanded := runToArrayData(runC.Data, int(runC.Size))
	return bmpUnionArr(bmpC, &container{Type: typeArray, Data: expanded})
}

func runUnionRun(c1, c2 *container) container {
	a, b := c1.Data, c2.Data
	var out []uint16
	i, j := 0, 0
	na, nb := len(a)/2, len(b)/2

	for i < na && j < nb {
		s1, e1 := uint32(a[i*2]), uint32(a[i*2])+uint32(a[i*2+1])
		s2, e2 := uint32(b[j*2]), uint32(b[j*2])+uint32(b[j*2+1])

		if s1 <= e2+1 && s2 <= e1+1 {
			us, ue := s1, e1
			if s2 < us {
				us = s2
			}
			if e2 > ue {
				ue = e2
			}
			i++
			j++
			for i < na && uint32(a[i*2]) <= ue+1 {
				if e := uint32(a[i*2]) + uint32(a[i*2+1]); e > ue {
					ue = e
				}
				i++
			}
			for j < nb && uint32(b[j*2]) <= ue+1 {
				if e := uint32(b[j*2]) + uint32(b[j*2+1]); e > ue {
					ue = e
				}
				j++
			}
			out = append(out, uint16(us), uint16(ue-us))
		} else if s1 < s2 {
			out = append(out, uint16(s1), a[i*2+1])
			i++
		} else {
			out = append(out, uint16(s2), b[j*2+1])
			j++
		}
	}
	for ; i < na; i++ {
		out = append(out, a[i*2], a[i*2+1])
	}
	for ; j < nb; j++ {
		out = append(out, b[j*2], b[j*2+1])
	}

	size := 0
	for i := 0; i+1 < len(out); i += 2 {
		size += int(out[i+1]) + 1
	}

	result := container{Type: typeRun, Data: out, Size: uint32(size)}
	result.optimize()
	return result
}
