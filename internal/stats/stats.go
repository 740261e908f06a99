// Package stats implements the aggregations used by the reports. Every function breaks ties
// by first occurrence, so results do not depend on map iteration order.
package stats

import "sort"

// Count is the number of occurrences of a value
type Count[K comparable] struct {
	Value K
	N     int
}

// Pair is an ordered (start, end) combination of two values
type Pair[K comparable] struct {
	First  K
	Second K
}

type counter[K comparable] struct {
	position map[K]int
	counts   []Count[K]
}

func newCounter[K comparable]() *counter[K] {
	return &counter[K]{position: make(map[K]int)}
}

func (c *counter[K]) add(value K) {
	if pos, ok := c.position[value]; ok {
		c.counts[pos].N += 1
		return
	}
	c.position[value] = len(c.counts)
	c.counts = append(c.counts, Count[K]{Value: value, N: 1})
}

// Counts returns how many times each value appears, largest count first. Values with the same
// count keep the order in which they were first seen
func Counts[K comparable](values []K) []Count[K] {
	c := newCounter[K]()
	for _, v := range values {
		c.add(v)
	}
	sort.SliceStable(c.counts, func(i, j int) bool {
		return c.counts[i].N > c.counts[j].N
	})
	return c.counts
}

// Mode returns the most frequent value and its count. On ties the value seen first wins.
// ok is false for an empty input
func Mode[K comparable](values []K) (mode K, n int, ok bool) {
	c := newCounter[K]()
	for _, v := range values {
		c.add(v)
	}
	for _, count := range c.counts {
		if count.N > n {
			mode, n, ok = count.Value, count.N, true
		}
	}
	return mode, n, ok
}

// TopPair groups the values of first and second by position and returns the most common
// combination with its count
func TopPair[K comparable](first []K, second []K) (Pair[K], int, bool) {
	size := len(first)
	if len(second) < size {
		size = len(second)
	}
	pairs := make([]Pair[K], 0, size)
	for i := 0; i < size; i++ {
		pairs = append(pairs, Pair[K]{First: first[i], Second: second[i]})
	}
	return Mode(pairs)
}

// Sum adds every value
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean, ok is false for an empty input
func Mean(values []float64) (float64, bool) {
	if len(values) == 0 {
		return 0, false
	}
	return Sum(values) / float64(len(values)), true
}

// MinMax returns the smallest and the largest value, ok is false for an empty input
func MinMax(values []int) (lowest int, highest int, ok bool) {
	if len(values) == 0 {
		return 0, 0, false
	}
	lowest, highest = values[0], values[0]
	for _, v := range values[1:] {
		if v < lowest {
			lowest = v
		}
		if v > highest {
			highest = v
		}
	}
	return lowest, highest, true
}
