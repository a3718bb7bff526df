// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linreg provides Regressor, an ordinary least squares linear
// regression of one dependent column of a [table.Table] on one or more
// independent columns.
package linreg

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"cogentcore.org/dataframe/table"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

var (
	// ErrInvalidArgument is [table.ErrInvalidArgument].
	ErrInvalidArgument = table.ErrInvalidArgument

	// ErrNotTrained is returned when the Regressor is used before [Regressor.Fit].
	ErrNotTrained = errors.New("regressor not trained")

	// ErrArityMismatch is returned when the number of values passed to
	// [Regressor.Predict] differs from the number of independent variables.
	ErrArityMismatch = errors.New("arity mismatch")

	// ErrDegenerate is returned when the data do not determine a unique
	// fit, for example when all independent values are the same.
	ErrDegenerate = errors.New("degenerate data")
)

// Regressor fits and applies a linear model
//
//	y = c1*x1 + c2*x2 + ... + intercept
//
// of a dependent variable y on independent variables x1, x2...
// Make one with [New] and call [Regressor.Fit] with a table
// holding the relevant data in named columns.
//
// With a single independent variable, Fit uses the closed form
//
//	slope     = (n*Sxy - Sx*Sy) / (n*Sxx - Sx*Sx)
//	intercept = (Sy*Sxx - Sx*Sxy) / (n*Sxx - Sx*Sx)
//
// where the sums are over the rows in which neither value is null,
// and n is the number of rows in the table, including null rows.
// With more than one, it finds the least squares solution over the
// rows with no null values.
type Regressor struct {
	// Dependent is the name of the dependent variable of the last fit.
	Dependent string

	// Independents are the names of the independent variables of the last fit.
	Independents []string

	// coeffs are the fitted coefficients, one per independent variable.
	coeffs []float64

	intercept float64

	trained bool
}

// New returns a new, untrained Regressor.
func New() *Regressor {
	return &Regressor{}
}

// Trained returns whether the Regressor has been fit.
func (rg *Regressor) Trained() bool { return rg.trained }

// Fit fits the model of the dependent column on the independent columns
// of the given table. The dependent column must be of a floating point
// kind and the independent columns numeric. On error, the Regressor is
// left as it was before the call.
func (rg *Regressor) Fit(dt *table.Table, dependent string, independents ...string) error {
	if dt == nil {
		return fmt.Errorf("linreg.Fit: %w: nil table", ErrInvalidArgument)
	}
	if dependent == "" || len(independents) == 0 {
		return fmt.Errorf("linreg.Fit: %w: dependent and at least one independent variable are required", ErrInvalidArgument)
	}
	ycl, err := dt.ColumnByName(dependent)
	if err != nil {
		return fmt.Errorf("linreg.Fit: %w", err)
	}
	if !ycl.Kind().IsFloat() {
		return fmt.Errorf("linreg.Fit: %w: dependent column %q is %v, not a floating point kind", ErrInvalidArgument, dependent, ycl.Kind())
	}
	ys, yok, err := ycl.Floats()
	if err != nil {
		return fmt.Errorf("linreg.Fit: %w", err)
	}
	xs := make([][]float64, len(independents))
	xok := make([][]bool, len(independents))
	for i, nm := range independents {
		if nm == "" {
			return fmt.Errorf("linreg.Fit: %w: independent variable %d has no name", ErrInvalidArgument, i)
		}
		xcl, err := dt.ColumnByName(nm)
		if err != nil {
			return fmt.Errorf("linreg.Fit: %w", err)
		}
		xs[i], xok[i], err = xcl.Floats()
		if err != nil {
			return fmt.Errorf("linreg.Fit: %w: independent column %q: %w", ErrInvalidArgument, nm, err)
		}
	}

	var coeffs []float64
	var intercept float64
	if len(independents) == 1 {
		var slope float64
		slope, intercept, err = simple(xs[0], ys, pairMask(yok, xok[0]))
		coeffs = []float64{slope}
	} else {
		coeffs, intercept, err = leastSquares(xs, ys, pairMask(append([][]bool{yok}, xok...)...))
	}
	if err != nil {
		return fmt.Errorf("linreg.Fit: %s on %v: %w", dependent, independents, err)
	}
	rg.Dependent = dependent
	rg.Independents = append([]string(nil), independents...)
	rg.coeffs = coeffs
	rg.intercept = intercept
	rg.trained = true
	slog.Debug("linreg.Fit", "dependent", dependent, "independents", independents, "coefficients", coeffs, "intercept", intercept)
	return nil
}

// pairMask returns a mask that is true for rows in which
// all of the given masks are true.
func pairMask(masks ...[]bool) []bool {
	ok := make([]bool, len(masks[0]))
	for i := range ok {
		ok[i] = true
		for _, m := range masks {
			ok[i] = ok[i] && m[i]
		}
	}
	return ok
}

// compress returns the values for which ok is true.
func compress(vals []float64, ok []bool) []float64 {
	out := make([]float64, 0, len(vals))
	for i, v := range vals {
		if ok[i] {
			out = append(out, v)
		}
	}
	return out
}

// simple is the closed form fit for one independent variable.
func simple(xs, ys []float64, ok []bool) (slope, intercept float64, err error) {
	n := float64(len(xs))
	x, y := compress(xs, ok), compress(ys, ok)
	sx, sy := floats.Sum(x), floats.Sum(y)
	sxy, sxx := floats.Dot(x, y), floats.Dot(x, x)
	den := n*sxx - sx*sx
	if den == 0 {
		return 0, 0, fmt.Errorf("%w: zero variance in %d paired values", ErrDegenerate, len(x))
	}
	slope = (n*sxy - sx*sy) / den
	intercept = (sy*sxx - sx*sxy) / den
	return slope, intercept, nil
}

// leastSquares solves for the coefficients and intercept of more than
// one independent variable, using a QR decomposition of the design matrix.
func leastSquares(xs [][]float64, ys []float64, ok []bool) ([]float64, float64, error) {
	y := compress(ys, ok)
	rows, nv := len(y), len(xs)
	if rows <= nv {
		return nil, 0, fmt.Errorf("%w: %d complete rows for %d variables", ErrDegenerate, rows, nv)
	}
	design := mat.NewDense(rows, nv+1, nil)
	for vi, x := range xs {
		design.SetCol(vi, compress(x, ok))
	}
	for ri := range rows {
		design.Set(ri, nv, 1)
	}
	var beta mat.Dense
	if err := beta.Solve(design, mat.NewVecDense(rows, y)); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrDegenerate, err)
	}
	coeffs := make([]float64, nv)
	for vi := range coeffs {
		coeffs[vi] = beta.At(vi, 0)
	}
	return coeffs, beta.At(nv, 0), nil
}

// Predict returns the value of the dependent variable predicted for the
// given values of the independent variables, in the order they were
// passed to [Regressor.Fit].
func (rg *Regressor) Predict(values ...float64) (float64, error) {
	if !rg.trained {
		return 0, fmt.Errorf("linreg.Predict: %w", ErrNotTrained)
	}
	if len(values) != len(rg.coeffs) {
		return 0, fmt.Errorf("linreg.Predict: %w: %d values for %d independent variables", ErrArityMismatch, len(values), len(rg.coeffs))
	}
	return rg.intercept + floats.Dot(rg.coeffs, values), nil
}

// Intercept returns the fitted constant offset, which is 0 if not trained.
func (rg *Regressor) Intercept() float64 { return rg.intercept }

// Coefficients returns a copy of the fitted coefficients, one per
// independent variable. It is nil if not trained.
func (rg *Regressor) Coefficients() []float64 {
	if rg.coeffs == nil {
		return nil
	}
	return append([]float64(nil), rg.coeffs...)
}

// Score returns the coefficient of determination R^2 of the predictions
// of the model on the given table, which must have the columns named in
// the last fit, over the rows with no null values.
func (rg *Regressor) Score(dt *table.Table) (float64, error) {
	if !rg.trained {
		return 0, fmt.Errorf("linreg.Score: %w", ErrNotTrained)
	}
	if dt == nil {
		return 0, fmt.Errorf("linreg.Score: %w: nil table", ErrInvalidArgument)
	}
	ycl, err := dt.ColumnByName(rg.Dependent)
	if err != nil {
		return 0, fmt.Errorf("linreg.Score: %w", err)
	}
	ys, yok, err := ycl.Floats()
	if err != nil {
		return 0, fmt.Errorf("linreg.Score: %w", err)
	}
	masks := [][]bool{yok}
	xs := make([][]float64, len(rg.Independents))
	for i, nm := range rg.Independents {
		xcl, err := dt.ColumnByName(nm)
		if err != nil {
			return 0, fmt.Errorf("linreg.Score: %w", err)
		}
		var xok []bool
		xs[i], xok, err = xcl.Floats()
		if err != nil {
			return 0, fmt.Errorf("linreg.Score: %w", err)
		}
		masks = append(masks, xok)
	}
	ok := pairMask(masks...)
	var est, obs []float64
	vals := make([]float64, len(xs))
	for ri, use := range ok {
		if !use {
			continue
		}
		for vi := range xs {
			vals[vi] = xs[vi][ri]
		}
		est = append(est, rg.intercept+floats.Dot(rg.coeffs, vals))
		obs = append(obs, ys[ri])
	}
	if len(obs) < 2 {
		return 0, fmt.Errorf("linreg.Score: %w: %d complete rows", ErrDegenerate, len(obs))
	}
	return stat.RSquaredFrom(est, obs, nil), nil
}

// Formula returns the fitted model as an equation, such as
// "Sales = 0.0475·TV + 7.03".
func (rg *Regressor) Formula() string {
	if !rg.trained {
		return ""
	}
	var b strings.Builder
	b.WriteString(rg.Dependent + " = ")
	for i, c := range rg.coeffs {
		fmt.Fprintf(&b, "%.6g·%s + ", c, rg.Independents[i])
	}
	fmt.Fprintf(&b, "%.6g", rg.intercept)
	return b.String()
}

// String returns a summary of the coefficients, intercept and formula.
func (rg *Regressor) String() string {
	if !rg.trained {
		return "Regressor: not trained\n"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Regressor: %s ~ %s\n", rg.Dependent, strings.Join(rg.Independents, ", "))
	b.WriteString("Coefficients:\n")
	for i, c := range rg.coeffs {
		fmt.Fprintf(&b, "\t%s\t%8.6g\n", rg.Independents[i], c)
	}
	fmt.Fprintf(&b, "Intercept:\t%8.6g\n", rg.intercept)
	b.WriteString("Formula:\t" + rg.Formula() + "\n")
	return b.String()
}
