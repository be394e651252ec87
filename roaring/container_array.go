package roaring

// arrInsert inserts value into a sorted uint16 slice, returning false if
// it was already present.
func arrInsert(data *[]uint16, value uint16) bool {
	idx, exists := find16(*data, value)
	if exists {
		return false
	}

	*data = append(*data, 0)
	copy((*data)[idx+1:], (*data)[idx:len(*data)-1])
	(*data)[idx] = value
	return true
}

// arrRemove deletes value from a sorted uint16 slice, returning false if
// it was not present.
func arrRemove(data *[]uint16, value uint16) bool {
	idx, exists := find16(*data, value)
	if !exists {
		return false
	}

	copy((*data)[idx:], (*data)[idx+1:])
	*data = (*data)[:len(*data)-1]
	return true
}

// arrContains reports whether value is present in a sorted uint16 slice.
func arrContains(data []uint16, value uint16) bool {
	_, exists := find16(data, value)
	return exists
}

// countRunsInArray counts the maximal consecutive ranges in a sorted,
// duplicate-free uint16 slice. Used by both the automatic Array->Run
// heuristic and optimize().
func countRunsInArray(data []uint16) int {
	if len(data) == 0 {
		return 0
	}

	runs := 1
	for i := 1; i < len(data); i++ {
		if data[i] != data[i-1]+1 {
			runs++
		}
	}
	return runs
}

// arrToRunData converts a sorted uint16 slice into (start, length-1) run
// pairs. numRuns is the already-computed run count from
// countRunsInArray, used to size the output slice exactly.
func arrToRunData(data []uint16, numRuns int) []uint16 {
	out := make([]uint16, 0, numRuns*2)
	i0 := data[0]
	i1 := data[0]
	for i := 1; i < len(data); i++ {
		if data[i] == i1+1 {
			i1 = data[i]
		} else {
			out = append(out, i0, uint16(uint32(i1)-uint32(i0)))
			i0, i1 = data[i], data[i]
		}
	}
	out = append(out, i0, uint16(uint32(i1)-uint32(i0)))
	return out
}

// arrUnion returns a newly allocated sorted union of two sorted uint16
// slices via a two-pointer merge.
func arrUnion(a, b []uint16) []uint16 {
	out := make([]uint16, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// arrIntersection returns a newly allocated sorted intersection of two
// sorted uint16 slices, or nil if the result is empty.
func arrIntersection(a, b []uint16) []uint16 {
	var out []uint16
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// arrDifference returns a - b (elements of a not present in b), or nil
// if the result is empty.
func arrDifference(a, b []uint16) []uint16 {
	var out []uint16
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			j++
		}
	}
	out = append(out, a[i:]...)
	return out
}

// arrSymmetricDifference returns the elements present in exactly one of
// a or b, or nil if the result is empty.
func arrSymmetricDifference(a, b []uint16) []uint16 {
	var out []uint16
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			i++
			j++
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		default:
			out = append(out, b[j])
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}
