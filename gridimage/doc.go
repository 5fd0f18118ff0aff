// SPDX-License-Identifier: MIT

// Package gridimage rasterises grids for inspection: one pixel per cell,
// optionally enlarged with nearest-neighbour scaling. Grid X maps to image x
// and grid Y to image y.
package gridimage
