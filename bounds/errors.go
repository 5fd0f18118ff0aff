// SPDX-License-Identifier: MIT

package bounds

import "errors"

// ErrNegativeExtents indicates an extent component below zero.
var ErrNegativeExtents = errors.New("bounds: extents must be non-negative")
