package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPager_growsByPageSize(t *testing.T) {
	rawDataPager := newPager(100, 5)

	for _, want := range []int{5, 10, 15} {
		rows, ok := rawDataPager.next()
		assert.True(t, ok)
		assert.Equal(t, want, rows)
	}
	assert.False(t, rawDataPager.done())
}

func TestPager_cappedToTotal(t *testing.T) {
	rawDataPager := newPager(7, 5)

	rows, ok := rawDataPager.next()
	assert.True(t, ok)
	assert.Equal(t, 5, rows)

	rows, ok = rawDataPager.next()
	assert.True(t, ok)
	assert.Equal(t, 7, rows)
	assert.True(t, rawDataPager.done())

	_, ok = rawDataPager.next()
	assert.False(t, ok)
}

func TestPager_empty(t *testing.T) {
	rawDataPager := newPager(0, 5)

	_, ok := rawDataPager.next()
	assert.False(t, ok)
}
