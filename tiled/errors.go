// SPDX-License-Identifier: MIT

package tiled

import "errors"

// ErrTileShape indicates tile extents that are non-positive, larger than the
// grid, or do not divide the grid extents evenly.
var ErrTileShape = errors.New("tiled: tile extents must be positive and divide the grid extents")
