package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/fittrack/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusConflict, "already exists", errors.New("duplicate key"))
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, http.StatusConflict, resp.Code)
	assert.Equal(t, "already exists", resp.Message)
	assert.Equal(t, "duplicate key", resp.Details)
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Name string `json:"name"`
	}
	t.Run("decoded", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"walk"}`))
		var p payload
		require.NoError(t, httputil.DecodeJSON(r, &p))
		assert.Equal(t, "walk", p.Name)
	})
	t.Run("empty body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", nil)
		var p payload
		assert.ErrorIs(t, httputil.DecodeJSON(r, &p), httputil.ErrEmptyBody)
	})
	t.Run("corrupted body", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("corrupted"))
		var p payload
		assert.Error(t, httputil.DecodeJSON(r, &p))
	})
}
