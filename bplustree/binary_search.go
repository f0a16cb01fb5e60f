package bplus

import "cmp"

// compareEntry orders by key, then by tie.
func compareEntry[K cmp.Ordered](a, b Entry[K]) int {
	if c := cmp.Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return cmp.Compare(a.Tie, b.Tie)
}

// upperBound returns the first index whose entry is strictly greater than target.
func upperBound[K cmp.Ordered](entries []Entry[K], target Entry[K]) int {
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if compareEntry(entries[mid], target) <= 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// lowerBoundKey returns the first index whose key is >= key, ignoring ties.
func lowerBoundKey[K cmp.Ordered](entries []Entry[K], key K) int {
	lo, hi := 0, len(entries)
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp.Less(entries[mid].Key, key) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// binarySearch returns the index of target, or -1.
func binarySearch[K cmp.Ordered](entries []Entry[K], target Entry[K]) int {
	low := 0
	high := len(entries) - 1
	for low <= high {
		mid := low + (high-low)/2
		c := compareEntry(entries[mid], target)
		if c == 0 {
			return mid
		} else if c < 0 {
			low = mid + 1
		} else {
			high = mid - 1
		}
	}
	return -1
}
