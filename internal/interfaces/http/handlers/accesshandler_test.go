package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubgate/internal/application/access/usecases"
	"clubgate/internal/shared/errors"
	"clubgate/internal/shared/logger"
	"clubgate/internal/shared/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type stubAccessRequester struct {
	gotCmd usecases.RequestAccessCommand
	err    error
}

func (s *stubAccessRequester) Execute(_ context.Context, cmd usecases.RequestAccessCommand) error {
	s.gotCmd = cmd
	return s.err
}

type stubManualRequester struct {
	err error
}

func (s *stubManualRequester) Execute(context.Context, usecases.RequestManualAccessCommand) error {
	return s.err
}

type stubRedeemer struct {
	result *usecases.RedeemTokenResult
	err    error
	gotCmd usecases.RedeemTokenCommand
}

func (s *stubRedeemer) Execute(_ context.Context, cmd usecases.RedeemTokenCommand) (*usecases.RedeemTokenResult, error) {
	s.gotCmd = cmd
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

func newTestRouter(h *AccessHandler) *gin.Engine {
	engine := gin.New()
	engine.POST("/api/verify", h.RequestAccess)
	engine.POST("/api/requests", h.RequestManualAccess)
	engine.POST("/api/join", h.Join)
	engine.GET("/join", h.JoinPage)
	return engine
}

func postJSON(t *testing.T, engine *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) utils.APIResponse {
	t.Helper()
	var resp utils.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestRequestAccess_PassesCommandThrough(t *testing.T) {
	requester := &stubAccessRequester{}
	h := NewAccessHandler(requester, &stubManualRequester{}, &stubRedeemer{}, testLogger())
	engine := newTestRouter(h)

	w := postJSON(t, engine, "/api/verify", gin.H{
		"email":           "student@uni.ac.uk",
		"phone":           "+447911123456",
		"challenge_token": "cf-token",
		"website":         "",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)

	assert.Equal(t, "student@uni.ac.uk", requester.gotCmd.Email)
	assert.Equal(t, "+447911123456", requester.gotCmd.Phone)
	assert.Equal(t, "cf-token", requester.gotCmd.ChallengeToken)
	assert.NotEmpty(t, requester.gotCmd.ClientIP)
}

func TestRequestAccess_MissingFields(t *testing.T) {
	h := NewAccessHandler(&stubAccessRequester{}, &stubManualRequester{}, &stubRedeemer{}, testLogger())
	engine := newTestRouter(h)

	w := postJSON(t, engine, "/api/verify", gin.H{"email": "student@uni.ac.uk"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
}

func TestRequestAccess_MalformedBody(t *testing.T) {
	h := NewAccessHandler(&stubAccessRequester{}, &stubManualRequester{}, &stubRedeemer{}, testLogger())
	engine := newTestRouter(h)

	req := httptest.NewRequest(http.MethodPost, "/api/verify", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "Invalid request format", resp.Error.Message)
}

func TestRequestAccess_UseCaseErrorMapsToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"rate limited", errors.NewRateLimitedError("slow down"), http.StatusTooManyRequests},
		{"validation", errors.NewValidationError("bad email"), http.StatusBadRequest},
		{"unavailable", errors.NewUnavailableError("mail backlog"), http.StatusServiceUnavailable},
		{"internal", errors.NewInternalError("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAccessHandler(&stubAccessRequester{err: tt.err}, &stubManualRequester{}, &stubRedeemer{}, testLogger())
			engine := newTestRouter(h)

			w := postJSON(t, engine, "/api/verify", gin.H{
				"email": "student@uni.ac.uk",
				"phone": "+447911123456",
			})

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestRequestManualAccess_Created(t *testing.T) {
	h := NewAccessHandler(&stubAccessRequester{}, &stubManualRequester{}, &stubRedeemer{}, testLogger())
	engine := newTestRouter(h)

	w := postJSON(t, engine, "/api/requests", gin.H{
		"email": "graduate@example.org",
		"phone": "+447911123456",
		"note":  "alumni member",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestJoin_Success(t *testing.T) {
	redeemer := &stubRedeemer{result: &usecases.RedeemTokenResult{CommunityURL: "https://chat.example.org/invite"}}
	h := NewAccessHandler(&stubAccessRequester{}, &stubManualRequester{}, redeemer, testLogger())
	engine := newTestRouter(h)

	w := postJSON(t, engine, "/api/join", gin.H{"token": "deadbeef"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	require.True(t, resp.Success)
	data, ok := resp.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "https://chat.example.org/invite", data["community_url"])
	assert.Equal(t, "deadbeef", redeemer.gotCmd.Token)
}

func TestJoin_InvalidLink(t *testing.T) {
	redeemer := &stubRedeemer{err: errors.NewNotFoundError("This link is invalid or has expired")}
	h := NewAccessHandler(&stubAccessRequester{}, &stubManualRequester{}, redeemer, testLogger())
	engine := newTestRouter(h)

	w := postJSON(t, engine, "/api/join", gin.H{"token": "whatever"})

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "This link is invalid or has expired", resp.Error.Message)
}

func TestJoin_MissingToken(t *testing.T) {
	h := NewAccessHandler(&stubAccessRequester{}, &stubManualRequester{}, &stubRedeemer{}, testLogger())
	engine := newTestRouter(h)

	w := postJSON(t, engine, "/api/join", gin.H{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinPage_ServesFragmentReader(t *testing.T) {
	h := NewAccessHandler(&stubAccessRequester{}, &stubManualRequester{}, &stubRedeemer{}, testLogger())
	engine := newTestRouter(h)

	req := httptest.NewRequest(http.MethodGet, "/join", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "location.hash")
	assert.Contains(t, w.Body.String(), "/api/join")
}
