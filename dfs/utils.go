// Package dfs provides small slice helpers shared by the orderings.
package dfs

// reversed returns a new slice containing the elements of s in reverse order.
// Time Complexity: O(n).
func reversed[T any](s []T) []T {
	out := make([]T, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}
