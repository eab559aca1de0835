package biz

// Rank orders movies by descending rating and sets Ranking to the 1-based
// position of each record. Equal ratings keep their input order. The input
// slice is left as it was; the records themselves are shared.
func Rank(movies []*Movie) []*Movie {
	if len(movies) == 0 {
		return movies
	}
	sorted := mergeSort(movies, make([]*Movie, len(movies)))
	for i, m := range sorted {
		m.Ranking = i + 1
	}
	return sorted
}

func mergeSort(in, buf []*Movie) []*Movie {
	out := make([]*Movie, len(in))
	copy(out, in)
	sortRange(out, buf)
	return out
}

func sortRange(s, buf []*Movie) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	sortRange(s[:mid], buf[:mid])
	sortRange(s[mid:], buf[mid:])

	copy(buf, s)
	left, right := buf[:mid], buf[mid:len(s)]
	i, j, k := 0, 0, 0
	for i < len(left) && j < len(right) {
		// ties take from the left half
		if left[i].Rating >= right[j].Rating {
			s[k] = left[i]
			i++
		} else {
			s[k] = right[j]
			j++
		}
		k++
	}
	k += copy(s[k:], left[i:])
	copy(s[k:], right[j:])
}
