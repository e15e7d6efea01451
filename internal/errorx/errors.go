package errorx

import (
	"context"
	"errors"
	"net/http"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
	"github.com/zeromicro/go-zero/rest/httpx"
)

// CodeError carries the HTTP status a logic error should be answered with.
type CodeError struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

func (e *CodeError) Error() string {
	return e.Msg
}

// ErrNotFound returns a 404 error.
func ErrNotFound(msg string) error {
	return &CodeError{Code: http.StatusNotFound, Msg: msg}
}

// ErrBadRequest returns a 400 error.
func ErrBadRequest(msg string) error {
	return &CodeError{Code: http.StatusBadRequest, Msg: msg}
}

// ErrInternal returns a 500 error.
func ErrInternal(msg string) error {
	return &CodeError{Code: http.StatusInternalServerError, Msg: msg}
}

// ErrMissingHTML rejects a scoring job submitted without markup.
func ErrMissingHTML() error {
	return ErrBadRequest("html is required")
}

// Lookup maps a model FindOne error for the given record kind and id:
// nil stays nil, a missing row is 404, anything else is 500.
func Lookup(err error, kind, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sqlx.ErrNotFound):
		return ErrNotFound(kind + " not found: " + id)
	default:
		return ErrInternal("failed to load " + kind + ": " + err.Error())
	}
}

// Code returns the HTTP status for err, 500 for anything that is not a
// CodeError.
func Code(err error) int {
	var ce *CodeError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}

// RegisterErrorHandler installs the global go-zero error handler. Untyped
// errors are logged and answered with a generic 500.
func RegisterErrorHandler() {
	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
		var ce *CodeError
		if errors.As(err, &ce) {
			return ce.Code, &CodeError{Code: ce.Code, Msg: ce.Msg}
		}
		logx.WithContext(ctx).Errorw("Unexpected API error", logx.Field("error", err.Error()))
		return http.StatusInternalServerError, &CodeError{
			Code: http.StatusInternalServerError,
			Msg:  "internal server error",
		}
	})
}
