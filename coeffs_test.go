package resize

import (
	"math"
	"testing"
)

// TestComputeCoeffs_Normalized verifies every window's weights sum to 1
// across a spread of geometries and filters.
func TestComputeCoeffs_Normalized(t *testing.T) {
	geoms := []struct{ srcN, dstN int }{
		{100, 100}, {100, 30}, {30, 100}, {7, 13}, {1920, 641}, {3, 1}, {1, 3},
	}
	filters := []Filter{
		NewBoxFilter(),
		NewTriangleFilter(),
		NewCatmullRomFilter(),
		NewLanczosFilter(3),
		NewGaussianFilter(1),
	}

	for _, g := range geoms {
		for _, f := range filters {
			rows := computeCoeffs(g.srcN, g.dstN, f)
			if len(rows) != g.dstN {
				t.Fatalf("%s %d->%d: got %d rows", f.Name(), g.srcN, g.dstN, len(rows))
			}
			for d, row := range rows {
				if len(row.weights) == 0 {
					t.Fatalf("%s %d->%d: empty window at %d", f.Name(), g.srcN, g.dstN, d)
				}
				if row.start < 0 || row.start+len(row.weights) > g.srcN {
					t.Fatalf("%s %d->%d: window [%d,%d) out of bounds at %d",
						f.Name(), g.srcN, g.dstN, row.start, row.start+len(row.weights), d)
				}
				sum := 0.0
				for _, w := range row.weights {
					sum += float64(w)
				}
				if math.Abs(sum-1) > 1e-5 {
					t.Errorf("%s %d->%d: window %d sums to %v", f.Name(), g.srcN, g.dstN, d, sum)
				}
			}
		}
	}
}

// TestComputeCoeffs_IdentityBox verifies identity geometry with a box
// filter yields one unit weight per destination index.
func TestComputeCoeffs_IdentityBox(t *testing.T) {
	rows := computeCoeffs(10, 10, NewBoxFilter())
	for d, row := range rows {
		if len(row.weights) != 1 || row.start != d || row.weights[0] != 1 {
			t.Errorf("row %d = {start: %d, weights: %v}, want unit weight at %d",
				d, row.start, row.weights, d)
		}
	}
}

// TestComputeCoeffs_HalvingBox verifies 2:1 box minification averages
// adjacent sample pairs.
func TestComputeCoeffs_HalvingBox(t *testing.T) {
	rows := computeCoeffs(10, 5, NewBoxFilter())
	for d, row := range rows {
		if row.start != 2*d || len(row.weights) != 2 {
			t.Fatalf("row %d = {start: %d, n: %d}, want pair at %d", d, row.start, len(row.weights), 2*d)
		}
		if row.weights[0] != 0.5 || row.weights[1] != 0.5 {
			t.Errorf("row %d weights = %v, want [0.5 0.5]", d, row.weights)
		}
	}
}

// TestNearestRow_Clamps verifies the degenerate-window fallback clamps
// to the source range.
func TestNearestRow_Clamps(t *testing.T) {
	tests := []struct {
		center float64
		srcN   int
		want   int
	}{
		{-2.3, 10, 0},
		{4.4, 10, 4},
		{4.6, 10, 5},
		{42, 10, 9},
	}
	for _, tt := range tests {
		row := nearestRow(tt.center, tt.srcN)
		if row.start != tt.want || len(row.weights) != 1 || row.weights[0] != 1 {
			t.Errorf("nearestRow(%v, %d) = %+v, want unit weight at %d",
				tt.center, tt.srcN, row, tt.want)
		}
	}
}

// TestCoeffsCache_SharesLists verifies repeated lookups return the same
// computed list, and distinct filters do not collide.
func TestCoeffsCache_SharesLists(t *testing.T) {
	c := newCoeffsCache(8)

	a := c.get(100, 40, NewLanczosFilter(3))
	b := c.get(100, 40, NewLanczosFilter(3))
	if &a[0] != &b[0] {
		t.Error("identical lookups returned distinct lists")
	}

	d := c.get(100, 40, NewLanczosFilter(2))
	if &a[0] == &d[0] {
		t.Error("lanczos2 and lanczos3 collided in the cache")
	}
}

// TestCoeffsCache_Evicts verifies the cache stays bounded.
func TestCoeffsCache_Evicts(t *testing.T) {
	c := newCoeffsCache(4)
	for i := 1; i <= 20; i++ {
		c.get(100+i, 10, NewBoxFilter())
	}

	c.mu.RLock()
	n := len(c.cache)
	c.mu.RUnlock()
	if n > 5 {
		t.Errorf("cache holds %d entries, want <= 5", n)
	}
}
