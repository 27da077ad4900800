// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvlmat/matrix"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/mat"
	"gopkg.in/yaml.v3"
)

type laplaceFixtures struct {
	Determinants []struct {
		Name   string        `yaml:"name"`
		Matrix *matrix.Dense `yaml:"matrix"`
		Det    float64       `yaml:"det"`
	} `yaml:"determinants"`
	Inverses []struct {
		Name     string        `yaml:"name"`
		Matrix   *matrix.Dense `yaml:"matrix"`
		Inverse  string        `yaml:"inverse"`
		Identity string        `yaml:"identity"`
	} `yaml:"inverses"`
}

func loadLaplaceFixtures(t *testing.T) laplaceFixtures {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", "laplace.yaml"))
	require.NoError(t, err)

	var fx laplaceFixtures
	require.NoError(t, yaml.Unmarshal(raw, &fx))
	require.NotEmpty(t, fx.Determinants)
	require.NotEmpty(t, fx.Inverses)

	return fx
}

func TestDetFixtures(t *testing.T) {
	for _, tc := range loadLaplaceFixtures(t).Determinants {
		t.Run(tc.Name, func(t *testing.T) {
			got, err := matrix.Det(tc.Matrix)
			require.NoError(t, err)
			require.Equal(t, tc.Det, got)
		})
	}
}

func TestInverseFixtures(t *testing.T) {
	for _, tc := range loadLaplaceFixtures(t).Inverses {
		t.Run(tc.Name, func(t *testing.T) {
			inv, err := matrix.Inv(tc.Matrix)
			require.NoError(t, err)
			if tc.Inverse != "" {
				require.Equal(t, tc.Inverse, asDense(t, inv).String())
			}

			prod, err := matrix.Mul(inv, tc.Matrix)
			require.NoError(t, err)
			require.Equal(t, tc.Identity, asDense(t, prod).String())
		})
	}
}

func TestDetDegenerate(t *testing.T) {
	det, err := matrix.Det(MustNew(t, nil))
	require.NoError(t, err)
	require.Equal(t, 1.0, det)

	det, err = matrix.Det(MustNew(t, [][]float64{{3.5}}))
	require.NoError(t, err)
	require.Equal(t, 3.5, det)
}

func TestDetNonSquare(t *testing.T) {
	_, err := matrix.Det(MustDense(t, 2, 3))
	RequireShapeError(t, err, matrix.ErrNonSquare,
		"Operands could not be broadcast together with shape (2, 3).")

	var se *matrix.ShapeError
	require.ErrorAs(t, err, &se)
	require.Equal(t, "Det", se.Op)

	for name, op := range map[string]func(matrix.Matrix) (matrix.Matrix, error){
		"Cof": matrix.Cof, "Adj": matrix.Adj, "Inv": matrix.Inv,
	} {
		_, err = op(MustDense(t, 3, 1))
		RequireShapeError(t, err, matrix.ErrNonSquare,
			"Operands could not be broadcast together with shape (3, 1).")
		require.ErrorAs(t, err, &se, name)
	}

	_, err = matrix.Det(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestCofactorAdjugate(t *testing.T) {
	m := MustNew(t, [][]float64{{0, 9, 3}, {2, 0, 4}, {3, 7, 0}})

	cof, err := matrix.Cof(m)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{-28, 12, 14}, {21, -9, 27}, {36, 6, -18}}, cof)

	adj, err := matrix.Adj(m)
	require.NoError(t, err)
	require.Equal(t, "[[-28.00, 21.00, 36.00]\n[12.00, -9.00, 6.00]\n[14.00, 27.00, -18.00]]",
		asDense(t, adj).String())

	// A × adj(A) = det(A) × I.
	prod, err := matrix.Mul(m, adj)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{150, 0, 0}, {0, 150, 0}, {0, 0, 150}}, prod)
}

func TestCofactorSmallOrders(t *testing.T) {
	cof, err := matrix.Cofactor(MustNew(t, [][]float64{{5}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1}}, cof)

	cof, err = matrix.Cofactor(MustNew(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, -3}, {-2, 1}}, cof)
}

func TestInverseSmallOrders(t *testing.T) {
	inv, err := matrix.Inverse(MustNew(t, [][]float64{{1, 2}, {3, 4}}))
	require.NoError(t, err)
	require.Equal(t, "[[-2.00, 1.00]\n[1.50, -0.50]]", asDense(t, inv).String())

	inv, err = matrix.Inverse(MustNew(t, [][]float64{{4}}))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0.25}}, inv)

	inv, err = matrix.Inverse(MustNew(t, nil))
	require.NoError(t, err)
	require.Equal(t, matrix.Shape{}, matrix.GetSize(inv))
}

func TestInverseSingular(t *testing.T) {
	rows := [][]float64{{1, 2}, {2, 4}}

	inv, err := matrix.Inverse(MustNew(t, rows))
	require.NoError(t, err)
	require.Equal(t, "[[+Inf, -Inf]\n[-Inf, +Inf]]", asDense(t, inv).String())

	_, err = matrix.Inverse(MustNew(t, rows, matrix.WithValidateNaNInf()))
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.EqualError(t, err, "Inverse: matrix: singular matrix")
}

func TestMinor(t *testing.T) {
	m := MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}})

	got, err := matrix.Minor(m, 1, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 3}, {7, 9}}, got)

	got, err = matrix.Minor(MustNew(t, [][]float64{{1, 2, 3}, {4, 5, 6}}), 0, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{4, 5}}, got)

	_, err = matrix.Minor(m, 3, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Minor(m, 0, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestLaplaceAgainstGonum cross-checks Det and Inverse with LU results.
func TestLaplaceAgainstGonum(t *testing.T) {
	approxInv := cmpopts.EquateApprox(1e-9, 1e-9)
	for seed := int64(1); seed <= 6; seed++ {
		a := RandomIntDense(t, 5, 5, seed)

		det, err := matrix.Det(a)
		require.NoError(t, err)
		g := toGonum(t, a)
		want := mat.Det(g)
		require.InDelta(t, want, det, 1e-6*math.Max(1, math.Abs(want)), "seed %d", seed)
		require.Equal(t, math.Round(det), det, "integer input keeps Det integral")

		if det == 0 {
			continue
		}
		inv, err := matrix.Inverse(a)
		require.NoError(t, err)
		var gi mat.Dense
		require.NoError(t, gi.Inverse(g))
		require.Empty(t, cmp.Diff(gonumRows(&gi), asDense(t, inv).Values(), approxInv), "seed %d", seed)
	}
}

func TestLaplaceLogging(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	logger := zap.New(core)

	m := MustNew(t, [][]float64{{2, 6, 7}, {4, 5, 6}, {7, 8, 9}},
		matrix.WithLogger(logger), matrix.WithLaplaceWarnOrder(2))
	_, err := matrix.Det(m)
	require.NoError(t, err)

	entries := logs.FilterMessage("laplace expansion on large matrix").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	require.Equal(t, "Det", fields["op"])
	require.EqualValues(t, 3, fields["order"])
	require.EqualValues(t, 2, fields["warn_order"])

	// At the threshold nothing is logged.
	small := MustNew(t, [][]float64{{1, 2}, {2, 4}}, matrix.WithLogger(logger), matrix.WithLaplaceWarnOrder(2))
	_, err = matrix.Inverse(small)
	require.NoError(t, err)
	require.Equal(t, 1, logs.FilterMessage("laplace expansion on large matrix").Len())

	singular := logs.FilterMessage("singular matrix: inverse carries non-finite values").All()
	require.Len(t, singular, 1)
	require.Equal(t, "Inverse", singular[0].ContextMap()["op"])

	// The validating policy reports the error and stays quiet.
	strict := MustNew(t, [][]float64{{1, 2}, {2, 4}}, matrix.WithLogger(logger), matrix.WithValidateNaNInf())
	_, err = matrix.Inverse(strict)
	require.ErrorIs(t, err, matrix.ErrSingular)
	require.Equal(t, 1, logs.FilterMessage("singular matrix: inverse carries non-finite values").Len())
}
