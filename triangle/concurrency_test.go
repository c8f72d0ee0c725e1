// Package triangle_test verifies that read-only accessors may share one
// Triangle across goroutines.
package triangle_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/trigon/triangle"
	"github.com/stretchr/testify/require"
)

// TestConcurrentReaders runs many readers on one blank triangle. Readers
// never write, so `go test -race` must stay quiet and the cache empty.
func TestConcurrentReaders(t *testing.T) {
	tr, err := triangle.Blank([3]float64{6, 7, 8})
	require.NoError(t, err)
	want, err := triangle.FromSides([3]float64{6, 7, 8})
	require.NoError(t, err)
	wantAngles, _ := want.Angles()
	wantArea, _ := want.Area()

	const readers = 64
	var wg sync.WaitGroup
	wg.Add(readers)
	results := make([][3]float64, readers)
	areas := make([]float64, readers)

	for r := 0; r < readers; r++ {
		go func(id int) {
			defer wg.Done()
			results[id], _ = tr.Angles()
			areas[id], _ = tr.Area()
			tr.Tangents()
			tr.Heights()
			tr.Circumradius()
		}(r)
	}
	wg.Wait()

	for r := 0; r < readers; r++ {
		require.Equal(t, wantAngles, results[r])
		require.Equal(t, wantArea, areas[r])
	}

	blank, err := triangle.Blank([3]float64{6, 7, 8})
	require.NoError(t, err)
	require.Equal(t, *blank, *tr, "readers must leave the cache empty")
}

// TestIndependentInstances mutates separate triangles in parallel.
func TestIndependentInstances(t *testing.T) {
	const workers = 32
	var wg sync.WaitGroup
	wg.Add(workers)
	out := make([]*triangle.Triangle, workers)

	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			tr, err := triangle.Blank([3]float64{6, 7, 8})
			if err != nil {
				return
			}
			tr.CacheAll()
			out[id] = tr
		}(w)
	}
	wg.Wait()

	want, err := triangle.FromSides([3]float64{6, 7, 8})
	require.NoError(t, err)
	for _, tr := range out {
		require.NotNil(t, tr)
		require.Equal(t, *want, *tr)
	}
}
