package modecounter

import (
	"cmp"
	"slices"
)

// ValueCount amount of occurrences of Value
type ValueCount[K comparable] struct {
	Value K
	Count int
}

// ModeCounter struct that counts the occurrences of each value of a column
// + counts: amount of occurrences by value
// + less: order used to break ties, the smallest value wins
// + total: amount of values added
type ModeCounter[K comparable] struct {
	counts map[K]int
	less   func(a K, b K) bool
	total  int
}

// New returns a ModeCounter that breaks ties using the natural order of K
func New[K cmp.Ordered]() *ModeCounter[K] {
	return NewWithOrder[K](cmp.Less[K])
}

// NewWithOrder returns a ModeCounter that breaks ties using less
func NewWithOrder[K comparable](less func(a K, b K) bool) *ModeCounter[K] {
	return &ModeCounter[K]{
		counts: make(map[K]int),
		less:   less,
	}
}

func (mc *ModeCounter[K]) UpdateCounter(value K) {
	mc.counts[value] += 1
	mc.total += 1
}

func (mc *ModeCounter[K]) GetCounter(value K) int {
	return mc.counts[value]
}

// Total returns the amount of values added
func (mc *ModeCounter[K]) Total() int {
	return mc.total
}

// Len returns the amount of distinct values added
func (mc *ModeCounter[K]) Len() int {
	return len(mc.counts)
}

// Mode returns the most frequent value and its count. Among values with the same count
// the smallest one is returned. The bool is false if no value was added
func (mc *ModeCounter[K]) Mode() (K, int, bool) {
	var mode K
	best := 0
	for value, count := range mc.counts {
		if count > best || (count == best && mc.less(value, mode)) {
			mode = value
			best = count
		}
	}
	return mode, best, best > 0
}

// ValueCounts returns every value with its count, most frequent first. Ties keep the order given by less
func (mc *ModeCounter[K]) ValueCounts() []ValueCount[K] {
	valueCounts := make([]ValueCount[K], 0, len(mc.counts))
	for value, count := range mc.counts {
		valueCounts = append(valueCounts, ValueCount[K]{Value: value, Count: count})
	}

	slices.SortFunc(valueCounts, func(a ValueCount[K], b ValueCount[K]) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		if mc.less(a.Value, b.Value) {
			return -1
		}
		if mc.less(b.Value, a.Value) {
			return 1
		}
		return 0
	})
	return valueCounts
}
