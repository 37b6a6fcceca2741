// Package iterutil contains utilities for working with iterators.
package iterutil

import "iter"

// Enumerate adds 0-indexing to a single value iterator.
func Enumerate[T any](seq iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var idx int
		for item := range seq {
			if !yield(idx, item) {
				return
			}
			idx++
		}
	}
}

// Uniq yields each distinct value of the given slices once, in the order
// it is first seen.
func Uniq[T comparable](ss ...[]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		seen := make(map[T]bool)
		for _, s := range ss {
			for _, v := range s {
				if seen[v] {
					continue
				}
				seen[v] = true
				if !yield(v) {
					return
				}
			}
		}
	}
}
