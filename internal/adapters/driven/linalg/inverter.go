// Package linalg adapts gonum's dense linear algebra to driven.MatrixInverter.
package linalg

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/core/ports/driven"
)

// Ensure Inverter implements the interface.
var _ driven.MatrixInverter = (*Inverter)(nil)

// Inverter inverts matrices with gonum's LU-based mat.Dense.Inverse.
// It holds no state and is safe for concurrent use.
type Inverter struct{}

// NewInverter creates a gonum-backed inverter.
func NewInverter() *Inverter {
	return &Inverter{}
}

// Inverse returns the inverse of m. Singular and ill-conditioned inputs
// return gonum's mat.Condition error. gonum panics on shape errors; those
// are recovered and returned as errors.
func (*Inverter) Inverse(m domain.Matrix) (inv domain.Matrix, err error) {
	defer func() {
		if r := recover(); r != nil {
			inv, err = nil, fmt.Errorf("%v", r)
		}
	}()

	rows, cols := m.Dims()
	data := make([]float64, 0, rows*cols)
	for _, row := range m {
		data = append(data, row...)
	}
	a := mat.NewDense(rows, cols, data)

	var out mat.Dense
	if err := out.Inverse(a); err != nil {
		return nil, err
	}

	n, _ := out.Dims()
	inv = make(domain.Matrix, n)
	for i := range inv {
		inv[i] = mat.Row(nil, i, &out)
	}
	return inv, nil
}
