package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "keymint/pkg/domain-errors"
	"keymint/pkg/platform/httputil"
)

func TestToHTTPStatus(t *testing.T) {
	tests := []struct {
		code dErrors.Code
		want int
	}{
		{dErrors.CodeValidation, http.StatusBadRequest},
		{dErrors.CodeBadRequest, http.StatusBadRequest},
		{dErrors.CodeNotFound, http.StatusNotFound},
		{dErrors.CodeInternal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, httputil.ToHTTPStatus(tt.code), "code=%s", tt.code)
	}
}

func TestWriteErrorClientErrorKeepsMessage(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteError(rr, dErrors.New(dErrors.CodeValidation, `key "x" is not valid`))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"validation_error","message":"key \"x\" is not valid"}`, rr.Body.String())
}

func TestWriteErrorInternalHidesDetail(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteError(rr, errors.New("connection pool exhausted"))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal_error"}`, rr.Body.String())
}
