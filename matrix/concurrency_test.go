// SPDX-License-Identifier: MIT
package matrix_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// TestConcurrentReaders runs read-only operations on one shared matrix from
// many goroutines; every worker must observe the same results.
func TestConcurrentReaders(t *testing.T) {
	shared := MustNew(t, [][]float64{{0, 9, 3, 2}, {2, 0, 4, 0}, {3, 7, 0, 9}, {0, 1, 0, 2}})
	wantDet, err := matrix.Det(shared)
	require.NoError(t, err)
	wantText := shared.String()

	const workers = 16
	dets := make([]float64, workers)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(4)
	for w := 0; w < workers; w++ {
		w := w // per-iteration copy (Go 1.22 loopvar semantics under go 1.21)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			inv, err := matrix.Inverse(shared)
			if err != nil {
				return err
			}
			if _, err = matrix.Mul(inv, shared); err != nil {
				return err
			}
			if _, err = matrix.SelectColumns(shared, []int{3, 0}); err != nil {
				return err
			}
			dets[w], err = matrix.Det(shared)

			return err
		})
	}
	require.NoError(t, g.Wait())

	for w, d := range dets {
		require.Equal(t, wantDet, d, "worker %d", w)
	}
	require.Equal(t, wantText, shared.String())
}

// TestConcurrentErrorsPropagate checks the first failing worker surfaces.
func TestConcurrentErrorsPropagate(t *testing.T) {
	rect := MustDense(t, 2, 3)

	var g errgroup.Group
	for w := 0; w < 4; w++ {
		g.Go(func() error {
			_, err := matrix.Det(rect)
			return err
		})
	}
	RequireShapeError(t, g.Wait(), matrix.ErrNonSquare,
		"Operands could not be broadcast together with shape (2, 3).")
}
