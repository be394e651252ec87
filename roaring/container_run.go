package roaring

// A run container's Data holds pairs (start, length-1): a maximal
// consecutive range [start, start+length-1] of present values, encoded
// with the actual length minus one so that a single run spanning all
// 65,536 values (length == 65536) still fits in a uint16 field.

// runFind returns the index (in run units, not uint16 units) of the run
// that contains value, or the index of the first run with start > value
// if none does.
func runFind(data []uint16, value uint16) (idx int, found bool) {
	n := len(data) / 2
	lo, hi := 0, n
	for lo < hi {
		mid := (lo + hi) >> 1
		start := data[mid*2]
		if start > value {
			hi = mid
			continue
		}
		end := start + data[mid*2+1]
		if value <= end {
			return mid, true
		}
		lo = mid + 1
	}
	return lo, false
}

// runContains reports whether value falls inside any run.
func runContains(data []uint16, value uint16) bool {
	_, found := runFind(data, value)
	return found
}

// runInsert adds value to a run container, merging with an adjacent
// previous or next run where possible. Returns false if value was
// already covered by an existing run.
//
// The merge branch is the fragile one: when value touches both the
// previous and the next run, the previous run must absorb the *entire*
// length of the next run (next's length-1 field, plus one for the value
// itself, plus one more for the next run's own implicit first element).
// Omitting that "+1" silently drops the last element of the absorbed
// run. The regression test in container_run_test.go pins this.
func runInsert(data *[]uint16, value uint16) bool {
	d := *data
	idx, found := runFind(d, value)
	if found {
		return false
	}

	numRuns := len(d) / 2

	prevTouches := idx > 0 && d[(idx-1)*2]+d[(idx-1)*2+1]+1 == value
	nextTouches := idx < numRuns && d[idx*2]-1 == value

	switch {
	case prevTouches && nextTouches:
		// Extend the previous run all the way through the next run,
		// then delete the next run. The next run's full actual length
		// is (length-1 field) + 1.
		nextLen := d[idx*2+1] + 1
		d[(idx-1)*2+1] += 1 + nextLen
		*data = runRemoveAt(d, idx)
	case prevTouches:
		d[(idx-1)*2+1]++
	case nextTouches:
		d[idx*2]--
		d[idx*2+1]++
	default:
		*data = runInsertAt(d, idx, value, 0)
	}

	return true
}

// runRemove deletes value from a run container, shrinking, splitting,
// or dropping the owning run as needed. Returns false if value was not
// present.
func runRemove(data *[]uint16, value uint16) bool {
	d := *data
	idx, found := runFind(d, value)
	if !found {
		return false
	}

	start := d[idx*2]
	lenMinus1 := d[idx*2+1]
	end := start + lenMinus1

	switch {
	case start == end:
		*data = runRemoveAt(d, idx)
	case value == start:
		d[idx*2] = start + 1
		d[idx*2+1] = lenMinus1 - 1
	case value == end:
		d[idx*2+1] = lenMinus1 - 1
	default:
		// Split: [start, value-1] stays at idx, [value+1, end] becomes a
		// new run inserted right after it.
		d[idx*2+1] = value - 1 - start
		*data = runInsertAt(d, idx+1, value+1, end-(value+1))
	}

	return true
}

// runInsertAt splices a new run (start, lengthMinus1) at the given run
// index.
func runInsertAt(data []uint16, idx int, start, lengthMinus1 uint16) []uint16 {
	data = append(data, 0, 0)
	copy(data[(idx+1)*2:], data[idx*2:len(data)-2])
	data[idx*2] = start
	data[idx*2+1] = lengthMinus1
	return data
}

// runRemoveAt deletes the run at the given run index.
func runRemoveAt(data []uint16, idx int) []uint16 {
	copy(data[idx*2:], data[(idx+1)*2:])
	return data[:len(data)-2]
}

// runToArrayData expands every run into an explicit sorted value list.
// size is the already-known cardinality, used to size the output slice
// exactly.
func runToArrayData(data []uint16, size int) []uint16 {
	out := make([]uint16, 0, size)
	for i := 0; i+1 < len(data); i += 2 {
		start, lengthMinus1 := uint32(data[i]), uint32(data[i+1])
		for v := start; v <= start+lengthMinus1; v++ {
			out = append(out, uint16(v))
			if v == 0xFFFF {
				break
			}
		}
	}
	return out
}
