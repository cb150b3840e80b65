package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/todocards/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// remoteError carries the server's message and matches its sentinel.
type remoteError struct {
	sentinel error
	msg      string
}

func (e *remoteError) Error() string { return e.msg }
func (e *remoteError) Unwrap() error { return e.sentinel }

func withDetail(sentinel error, msg string) error {
	if msg == "" {
		return sentinel
	}
	return &remoteError{sentinel: sentinel, msg: msg}
}

// mapHTTPStatus turns a non-2xx response into a sentinel error.
func mapHTTPStatus(code int, msg string) error {
	switch code {
	case http.StatusUnauthorized:
		return withDetail(common.ErrUnauthenticated, msg)
	case http.StatusForbidden:
		return common.ErrNotOwner
	case http.StatusNotFound:
		return common.ErrNotFound
	case http.StatusBadRequest:
		return withDetail(common.ErrValidation, msg)
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return common.ErrUnavailable
	default:
		return withDetail(common.ErrInternal, msg)
	}
}

func mapGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return common.ErrUnavailable
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("rpc error: %w", err)
	}
	switch st.Code() {
	case codes.Unauthenticated:
		return withDetail(common.ErrUnauthenticated, st.Message())
	case codes.PermissionDenied:
		return common.ErrNotOwner
	case codes.NotFound:
		return common.ErrNotFound
	case codes.InvalidArgument:
		return withDetail(common.ErrValidation, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		return common.ErrUnavailable
	default:
		return withDetail(common.ErrInternal, st.Message())
	}
}
