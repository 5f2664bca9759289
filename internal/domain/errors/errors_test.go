package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"lineconnect/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesDetailedCopies(t *testing.T) {
	err := ErrTokenExchangeFailed.WithDetails("status 400: invalid_grant")

	assert.True(t, errors.Is(err, ErrTokenExchangeFailed))
	assert.False(t, errors.Is(err, ErrProfileFetchFailed))
	assert.Equal(t, "could not exchange the authorization code: status 400: invalid_grant", err.Error())
}

func TestBaseError_WrappedStillMatches(t *testing.T) {
	err := errors.Wrap(ErrInvalidState.WithDetails("state expired"), "handle callback")

	assert.True(t, errors.Is(err, ErrInvalidState))

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "INVALID_STATE", appErr.ErrorCode())
}

func TestBaseError_WithCauseUnwraps(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := ErrRetryableDeliveryFailure.WithCause(cause)

	assert.True(t, errors.Is(err, cause))
	assert.True(t, errors.Is(err, ErrRetryableDeliveryFailure))
}
