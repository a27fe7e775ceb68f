// Package periodic implements the minimum-image convention and the query
// image-splitting helper used when the tree's box has periodic axes.
//
// MinimumImage takes a separation vector to its shortest representation
// under wraparound. WrapPosition reduces a coordinate into [0, boxSize).
// Images splits a query AABB that straddles or lies outside the primary
// box into up to 2^k translated copies (k = number of axes the box
// extends beyond; an axis crossed at both ends adds three shifts rather
// than two), so a caller can run the tree query against each and
// deduplicate results, replicating the query rather than storing ghost
// particles.
package periodic
