package pool

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParallelize_ReturnsResultsInOrder(t *testing.T) {
	p := New(4)
	results := p.Parallelize(10, func(i int) interface{} { return i * i })

	for i, r := range results {
		require.Equal(t, i*i, r)
	}
}

func TestParallelize_Empty(t *testing.T) {
	p := New(4)
	results := p.Parallelize(0, func(i int) interface{} {
		t.Fatal("fn should not be called for n == 0")
		return nil
	})
	require.Empty(t, results)
}

func TestParallelize_RunsEveryItem(t *testing.T) {
	p := New(2)
	var calls int64
	p.Parallelize(50, func(i int) interface{} {
		atomic.AddInt64(&calls, 1)
		return nil
	})
	require.EqualValues(t, 50, calls)
}

func TestNew_NonPositiveWorkersDefaultsToGOMAXPROCS(t *testing.T) {
	p := New(0)
	require.Greater(t, p.workers, 0)
}
