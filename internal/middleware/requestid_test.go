package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/marketlens-backend/internal/requestdata"
)

func TestRequestIDMintsToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())

	var seen string
	router.GET("/ping", func(c *gin.Context) {
		if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil {
			seen = rd.RequestID
		}
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	if len(seen) != 8 {
		t.Fatalf("expected an 8 char minted token, got %q", seen)
	}
	if w.Header().Get("X-Request-ID") != seen {
		t.Fatalf("response header should echo the token")
	}
}

func TestRequestIDHonorsIncomingHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID())

	var seen string
	router.GET("/ping", func(c *gin.Context) {
		if rd := requestdata.GetRequestData(c.Request.Context()); rd != nil {
			seen = rd.RequestID
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "caller-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if seen != "caller-token" {
		t.Fatalf("incoming token should be honored, got %q", seen)
	}
	if w.Header().Get("X-Request-ID") != "caller-token" {
		t.Fatalf("response header should echo the caller token")
	}
}
