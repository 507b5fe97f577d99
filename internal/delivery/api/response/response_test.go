package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "notes/internal/delivery/context"
	domainerrors "notes/internal/domain/errors"
	"notes/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-42")

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]string{"k": "v"}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"k":"v"},"meta":{"request_id":"req-42"}}`, rec.Body.String())
}

func TestHandleAppError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantDetails any
	}{
		{
			name:       "wrapped duplicate",
			err:        errors.Wrap(domainerrors.ErrDuplicateAccount, "register"),
			wantStatus: http.StatusConflict,
			wantCode:   "DUPLICATE_ACCOUNT",
		},
		{
			name:        "validation keeps details",
			err:         domainerrors.ErrValidationFailed.WithDetails("search query is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantDetails: "search query is required",
		},
		{
			name:       "store failure hides driver error",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("dial tcp 10.0.0.1"), "failed to find account"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "STORE_UNAVAILABLE",
		},
		{
			name:       "account not found looks like bad credentials",
			err:        errors.Wrap(domainerrors.ErrAccountNotFound, "login failed"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, HandleAppError(c, tt.err))

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.Equal(t, "req-42", body.Meta.RequestID)
			assert.NotContains(t, rec.Body.String(), "10.0.0.1")
		})
	}
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("unexpected")

	err := HandleAppError(c, cause)

	assert.ErrorIs(t, err, cause)
	assert.Zero(t, rec.Body.Len())
}

func TestError_StripsDetailsFor401And5xx(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "invalid session token", "sig mismatch"))
	assert.Nil(t, decodeError(t, rec).Error.Details)

	c, rec = newContext()
	require.NoError(t, Error(c, http.StatusInternalServerError, "STORE_UNAVAILABLE", "x", "driver"))
	assert.Nil(t, decodeError(t, rec).Error.Details)
}
