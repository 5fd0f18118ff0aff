// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes r row-major: each cell right-aligned in a 4-wide column and a
// newline after every Extents().Y cells.
func Fprint[T any](w io.Writer, r Reader[T]) error {
	perLine := r.Extents().Y
	n := 0
	for it := newRowIterator(r); !it.Done(); it.Next() {
		if _, err := fmt.Fprintf(w, "%4v", r.At(it.pt)); err != nil {
			return err
		}
		n++
		if n == perLine {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
			n = 0
		}
	}

	return nil
}

// Sprint is Fprint into a string.
func Sprint[T any](r Reader[T]) string {
	var b strings.Builder
	_ = Fprint(&b, r) // strings.Builder never fails

	return b.String()
}
