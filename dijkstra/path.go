package dijkstra

// ShortestPath reconstructs the start→end path from the predecessor map
// returned by Dijkstra: it walks backwards from end following prev and
// reverses the collected sequence.
//
// If end is not reachable (the walk stops at a vertex with no predecessor
// that is not start), the result is nil. When start == end the path is the
// single vertex [start].
// Complexity: O(len(path))
func ShortestPath[V comparable](prev map[V]V, start, end V) []V {
	path := make([]V, 0, len(prev)+1)

	current := end
	for current != start {
		p, ok := prev[current]
		if !ok {
			// Dead end before reaching start: no path exists.
			return nil
		}
		path = append(path, current)
		current = p
	}
	path = append(path, start)

	// The walk collected end→start; flip it.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
