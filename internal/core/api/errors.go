package api

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/solatis/segmentvet/internal/types"
)

// Error mapping:
// Malformed requests (non-finite or overflowing budget, empty segment id) map to INVALID_ARGUMENT.
// Unknown segment ids and filter values are not errors.
// Context cancellation maps to CANCELED or DEADLINE_EXCEEDED.

// ErrEmptyToggleID indicates a toggle request without a segment id.
var ErrEmptyToggleID = errors.New("segmentId is required")

// toStatus converts a service error to a gRPC status error.
func toStatus(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, types.ErrInvalidBudget), errors.Is(err, ErrEmptyToggleID):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		if s := status.FromContextError(err); s.Code() != codes.Unknown {
			return s.Err()
		}
		return status.Error(codes.Internal, err.Error())
	}
}
