package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/core/ports/driving"
)

// MatrixPath is the matrix inversion tool endpoint.
const MatrixPath = "/tool/matrix"

// MatrixRequest is the body of POST /tool/matrix. The matrix is kept raw so
// the service can report shape problems in its own terms.
type MatrixRequest struct {
	Matrix json.RawMessage `json:"matrix"`
}

// NewMatrixServer creates the matrix tool server listening on addr.
func NewMatrixServer(addr string, svc driving.MatrixService) (*Server, error) {
	if svc == nil {
		return nil, ErrMissingMatrixService
	}
	return newServer(domain.ServiceMatrix, addr, MatrixPath, handleMatrix(svc)), nil
}

// handleMatrix answers every failure with 400 and the failure text.
func handleMatrix(svc driving.MatrixService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req MatrixRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
		if len(req.Matrix) == 0 {
			writeDetail(w, http.StatusBadRequest, "field required: matrix")
			return
		}

		inv, err := svc.InvertJSON(r.Context(), req.Matrix)
		if err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, inv)
	}
}
