package httpserver

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/custodia-labs/toolbox/internal/core/domain"
	"github.com/custodia-labs/toolbox/internal/core/ports/driving"
)

// HanoiPath is the Hanoi tool endpoint.
const HanoiPath = "/tool/hanoi"

// HanoiRequest is the body of POST /tool/hanoi.
type HanoiRequest struct {
	N *DiskCount `json:"n"`
}

// DiskCount is a JSON integer. Whole-valued numbers such as 2.0 are
// accepted; fractions and strings are not.
type DiskCount int

// UnmarshalJSON implements json.Unmarshaler.
func (d *DiskCount) UnmarshalJSON(b []byte) error {
	s := string(b)
	if n, err := strconv.Atoi(s); err == nil {
		*d = DiskCount(n)
		return nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return fmt.Errorf("n: value is not a valid integer: %s", s)
	}
	*d = DiskCount(f)
	return nil
}

// HanoiResponse is the success body of POST /tool/hanoi.
type HanoiResponse struct {
	Moves []string `json:"moves"`
	Count int      `json:"count"`
}

// NewHanoiServer creates the Hanoi tool server listening on addr.
func NewHanoiServer(addr string, svc driving.HanoiService) (*Server, error) {
	if svc == nil {
		return nil, ErrMissingHanoiService
	}
	return newServer(domain.ServiceHanoi, addr, HanoiPath, handleHanoi(svc)), nil
}

func handleHanoi(svc driving.HanoiService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HanoiRequest
		if err := decodeBody(w, r, &req); err != nil {
			writeDetail(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		if req.N == nil {
			writeDetail(w, http.StatusUnprocessableEntity, "field required: n")
			return
		}

		solution, err := svc.Solve(r.Context(), int(*req.N))
		switch {
		case err == nil:
		case errors.Is(err, domain.ErrInvalidDiskCount), errors.Is(err, domain.ErrDiskCountTooLarge):
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		default:
			writeDetail(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		writeJSON(w, http.StatusOK, HanoiResponse{
			Moves: solution.MoveStrings(),
			Count: solution.Count,
		})
	}
}
