// SPDX-License-Identifier: MIT

// Package coords defines the two-component point type shared by every other
// twod package.
//
// What:
//
//   - Coordinates[T] is a value type over any integer or float scalar.
//   - Indices addresses a grid cell; Extents sizes a rectangular region.
//     Both are Coordinates[int].
//   - Ordering is lexicographic on (X, Y); the All* predicates compare
//     componentwise and back every containment test in package bounds.
//
// Complexity:
//
//   - Every method is O(1) and allocation-free.
package coords
