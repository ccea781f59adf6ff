package resize

import (
	"math"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// coeffsRow is the precomputed kernel window for one destination index
// along one axis: the first source index the window covers and the
// normalized weights, one per covered source sample.
type coeffsRow struct {
	start   int
	weights []float32
}

// computeCoeffs builds one weight window per destination index for
// resampling srcN samples to dstN samples with filter f.
//
// Weights are evaluated and normalized in float64, then narrowed to the
// internal precision. Each window's weights sum to 1, so a constant
// signal resamples to itself regardless of the filter.
func computeCoeffs(srcN, dstN int, f Filter) []coeffsRow {
	scale := float64(srcN) / float64(dstN)

	// When minifying, the kernel stretches by the reduction factor so
	// every contributing source sample stays inside the window.
	fscale := scale
	if fscale < 1 {
		fscale = 1
	}
	support := f.Support() * fscale

	rows := make([]coeffsRow, dstN)
	w64 := make([]float64, 0, int(2*support)+2)

	for d := range rows {
		// Center of destination sample d in source coordinates.
		center := (float64(d)+0.5)*scale - 0.5

		left := int(math.Ceil(center - support))
		if left < 0 {
			left = 0
		}
		right := int(math.Floor(center + support))
		if right > srcN-1 {
			right = srcN - 1
		}

		if right < left {
			rows[d] = nearestRow(center, srcN)
			continue
		}

		w64 = w64[:0]
		for i := left; i <= right; i++ {
			w64 = append(w64, f.At(math.Abs((float64(i)-center)/fscale)))
		}

		sum := floats.Sum(w64)
		if math.Abs(sum) < 1e-9 {
			// Degenerate window (every tap landed on a kernel zero).
			rows[d] = nearestRow(center, srcN)
			continue
		}
		floats.Scale(1/sum, w64)

		weights := make([]float32, len(w64))
		for i, v := range w64 {
			weights[i] = float32(v)
		}
		rows[d] = coeffsRow{start: left, weights: weights}
	}

	return rows
}

// nearestRow is the fallback window: full weight on the source sample
// closest to center.
func nearestRow(center float64, srcN int) coeffsRow {
	n := int(math.Round(center))
	if n < 0 {
		n = 0
	}
	if n > srcN-1 {
		n = srcN - 1
	}
	return coeffsRow{start: n, weights: []float32{1}}
}

// coeffsKey identifies one precomputed coefficient list. Support is part
// of the key because parameterized filters (lanczos taps, gaussian
// sigma) share a name across configurations.
type coeffsKey struct {
	srcN    int
	dstN    int
	name    string
	support float64
}

// coeffsCache caches coefficient lists across resizer instances.
// Thumbnailing workloads recreate resizers with identical geometry
// constantly; the windows are pure functions of the key.
type coeffsCache struct {
	mu     sync.RWMutex
	cache  map[coeffsKey][]coeffsRow
	maxLen int
}

var defaultCoeffsCache = newCoeffsCache(64)

// newCoeffsCache creates a cache holding at most maxLen lists.
func newCoeffsCache(maxLen int) *coeffsCache {
	return &coeffsCache{
		cache:  make(map[coeffsKey][]coeffsRow),
		maxLen: maxLen,
	}
}

// get retrieves the coefficient list for (srcN, dstN, f), computing and
// caching it on a miss.
func (c *coeffsCache) get(srcN, dstN int, f Filter) []coeffsRow {
	key := coeffsKey{srcN: srcN, dstN: dstN, name: f.Name(), support: f.Support()}

	c.mu.RLock()
	if rows, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return rows
	}
	c.mu.RUnlock()

	rows := computeCoeffs(srcN, dstN, f)

	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: drop half the entries.
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = rows
	c.mu.Unlock()

	return rows
}
