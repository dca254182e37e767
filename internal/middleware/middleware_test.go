package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupRouter(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": c.GetString(RequestIDContextKey)})
	})...)
	return r
}

func TestCheckMeetingPasswordIgnoresCase(t *testing.T) {
	require.True(t, CheckMeetingPassword("senate"))
	require.True(t, CheckMeetingPassword("SeNaTe"))
	require.False(t, CheckMeetingPassword("senate "))
	require.False(t, CheckMeetingPassword("house"))
	require.False(t, CheckMeetingPassword(""))
}

func TestMeetingGate(t *testing.T) {
	router := setupRouter(MeetingGate())

	cases := []struct {
		name   string
		target string
		header string
		code   int
	}{
		{name: "missing", target: "/ping", code: http.StatusUnauthorized},
		{name: "wrong header", target: "/ping", header: "house", code: http.StatusUnauthorized},
		{name: "header", target: "/ping", header: "SENATE", code: http.StatusOK},
		{name: "query", target: "/ping?password=Senate", code: http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.header != "" {
				req.Header.Set(MeetingPasswordHeader, tc.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			require.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestMeetingGateWrongPasswordMessage(t *testing.T) {
	router := setupRouter(MeetingGate())

	req := httptest.NewRequest(http.MethodGet, "/ping?password=nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"error":"Incorrect password. Please try again."}`, rec.Body.String())
}

func TestIPRateLimiterBlocksAfterBurst(t *testing.T) {
	rl := NewIPRateLimiter(2, time.Minute, CleanupOpts{})
	defer rl.Stop()
	router := setupRouter(rl.Middleware())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}
	require.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "10.0.0.2:5000"
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestIPRateLimiterCleanupEvictsIdle(t *testing.T) {
	rl := NewIPRateLimiter(1, time.Hour, CleanupOpts{TTL: time.Millisecond, Interval: 5 * time.Millisecond})
	defer rl.Stop()

	require.True(t, rl.Allow("10.0.0.3"))
	require.False(t, rl.Allow("10.0.0.3"))
	require.Eventually(t, func() bool { return rl.Allow("10.0.0.3") }, time.Second, 10*time.Millisecond)
}

func TestRequestIDEchoesHeader(t *testing.T) {
	router := setupRouter(RequestID())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, "req-42", rec.Header().Get(RequestIDHeader))
	require.JSONEq(t, `{"request_id":"req-42"}`, rec.Body.String())
}

func TestRequestIDGeneratesWhenMissing(t *testing.T) {
	router := setupRouter(RequestID())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	require.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}
