package parallel

// Ranges splits n rows into at most chunks contiguous half-open
// [start, end) ranges of near-equal size. The ranges cover [0, n)
// exactly once. Returns nil when n <= 0.
func Ranges(n, chunks int) [][2]int {
	if n <= 0 {
		return nil
	}
	if chunks <= 0 {
		chunks = 1
	}
	if chunks > n {
		chunks = n
	}

	out := make([][2]int, 0, chunks)
	size := n / chunks
	rem := n % chunks

	start := 0
	for i := 0; i < chunks; i++ {
		end := start + size
		if i < rem {
			end++
		}
		out = append(out, [2]int{start, end})
		start = end
	}
	return out
}
