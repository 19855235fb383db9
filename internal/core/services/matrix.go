package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/core/ports/driven"
	"github.com/custodia-labs/toolbox/internal/core/ports/driving"
	"github.com/custodia-labs/toolbox/internal/logger"
)

// Ensure MatrixService implements the interface.
var _ driving.MatrixService = (*MatrixService)(nil)

// MatrixService validates matrices and delegates inversion to a MatrixInverter.
type MatrixService struct {
	inverter driven.MatrixInverter
	log      driven.Logger
}

// NewMatrixService creates a new matrix service.
// log may be nil.
func NewMatrixService(inverter driven.MatrixInverter, log driven.Logger) *MatrixService {
	if log == nil {
		log = logger.Nop()
	}
	return &MatrixService{
		inverter: inverter,
		log:      log,
	}
}

// Invert validates m and returns its inverse.
func (s *MatrixService) Invert(ctx context.Context, m domain.Matrix) (domain.Matrix, error) {
	s.log.Info("Request: %s", m)

	inv, err := s.invert(ctx, m)
	if err != nil {
		s.log.Error("%s", err)
		return nil, err
	}
	return inv, nil
}

// InvertJSON decodes a JSON matrix and inverts it.
func (s *MatrixService) InvertJSON(ctx context.Context, raw []byte) (domain.Matrix, error) {
	s.log.Info("Request: %s", compactJSON(raw))

	m, err := DecodeMatrix(raw)
	if err == nil {
		m, err = s.invert(ctx, m)
	}
	if err != nil {
		s.log.Error("%s", err)
		return nil, err
	}
	return m, nil
}

// invert runs the checks that apply to an already decoded matrix,
// then calls the inverter.
func (s *MatrixService) invert(ctx context.Context, m domain.Matrix) (domain.Matrix, error) {
	if !m.IsRectangular() {
		return nil, domain.NewInversionError(domain.InversionErrorShape, domain.ErrMatrixRagged)
	}
	for _, row := range m {
		for _, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, domain.NewInversionError(domain.InversionErrorShape, domain.ErrMatrixNotNumeric)
			}
		}
	}
	if !m.IsSquare() {
		return nil, domain.NewInversionError(domain.InversionErrorDimension, domain.ErrMatrixNotSquare)
	}

	if err := ctx.Err(); err != nil {
		return nil, domain.NewInversionError(domain.InversionErrorSingular, err)
	}

	inv, err := s.inverter.Inverse(m)
	if err != nil {
		return nil, domain.NewInversionError(domain.InversionErrorSingular, err)
	}
	return inv, nil
}

// DecodeMatrix parses raw JSON into a matrix. The value must be a numeric
// array with consistent row lengths, then exactly two-dimensional and square.
// Failures are *domain.InversionError.
func DecodeMatrix(raw []byte) (domain.Matrix, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, domain.NewInversionError(domain.InversionErrorShape,
			fmt.Errorf("%w: %v", domain.ErrMatrixNotNumeric, err))
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, domain.NewInversionError(domain.InversionErrorShape,
			fmt.Errorf("%w: unexpected data after JSON value", domain.ErrMatrixNotNumeric))
	}

	shape, err := shapeOf(v)
	if err != nil {
		return nil, domain.NewInversionError(domain.InversionErrorShape, err)
	}
	if len(shape) != 2 || shape[0] != shape[1] || shape[0] == 0 {
		return nil, domain.NewInversionError(domain.InversionErrorDimension, domain.ErrMatrixNotSquare)
	}

	rows := v.([]any)
	m := make(domain.Matrix, len(rows))
	for i, r := range rows {
		cells := r.([]any)
		m[i] = make([]float64, len(cells))
		for j, c := range cells {
			// shapeOf already proved every cell parses.
			m[i][j], _ = c.(json.Number).Float64()
		}
	}
	return m, nil
}

// shapeOf returns the dimensions of a decoded JSON value treated as an
// n-dimensional array. A number has an empty shape.
func shapeOf(v any) ([]int, error) {
	switch x := v.(type) {
	case json.Number:
		if _, err := x.Float64(); err != nil {
			return nil, domain.ErrMatrixNotNumeric
		}
		return []int{}, nil
	case []any:
		if len(x) == 0 {
			return []int{0}, nil
		}
		first, err := shapeOf(x[0])
		if err != nil {
			return nil, err
		}
		for _, e := range x[1:] {
			sh, err := shapeOf(e)
			if err != nil {
				return nil, err
			}
			if !slices.Equal(sh, first) {
				return nil, domain.ErrMatrixRagged
			}
		}
		return append([]int{len(x)}, first...), nil
	default:
		return nil, domain.ErrMatrixNotNumeric
	}
}

func compactJSON(raw []byte) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
