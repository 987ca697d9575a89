// Package align reduces a grid of local costs to the cost of the cheapest
// monotonic alignment path.
//
// A path starts at cell (0,0), ends at (m−1,n−1) and advances exactly one of
// the two indices per step; diagonal steps are not allowed. The accumulated
// cost obeys
//
//	acc(i,j) = min(acc(i−1,j), acc(i,j−1)) + cost(i,j)
//
// with the first row and column summing along their only predecessor.
//
// The cost grid may carry trailing batch dimensions: a tensor of shape
// [m, n, *extra] holds prod(extra) independent grids that are reduced in a
// single pass, producing a tensor of shape [*extra].
package align
