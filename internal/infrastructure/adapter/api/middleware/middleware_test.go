package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/config"
	coremocks "github.com/amirhossein-jamali/expense-splitter/mocks/port/core"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type observation struct {
	method string
	route  string
	status int
}

type recordingRecorder struct {
	observations []observation
}

func (r *recordingRecorder) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	r.observations = append(r.observations, observation{method: method, route: route, status: status})
}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return logger
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAuth(t *testing.T) {
	tokens := coremocks.NewMockTokenIssuer(t)
	tokens.EXPECT().Verify("good").Return("u-1", nil).Maybe()
	tokens.EXPECT().Verify("expired").Return("", errs.ErrUnauthenticated).Maybe()

	router := gin.New()
	router.GET("/me", middleware.Auth(tokens, quietLogger(t)), func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		require.True(t, ok)
		c.String(http.StatusOK, userID)
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"Valid token", "Bearer good", http.StatusOK, "u-1"},
		{"Lower-case scheme", "bearer good", http.StatusOK, "u-1"},
		{"Expired token", "Bearer expired", http.StatusUnauthorized, ""},
		{"No header", "", http.StatusUnauthorized, ""},
		{"Token without scheme", "good", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := serve(router, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestUserIDWithoutAuth(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := middleware.UserID(c)

	assert.False(t, ok)
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	// Arrange
	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "kaboom" && fields["path"] == "/panic"
	})).Once()

	router := gin.New()
	router.Use(middleware.ErrorHandler(logger))
	router.GET("/panic", func(*gin.Context) { panic("kaboom") })

	// Act
	rec := serve(router, httptest.NewRequest(http.MethodGet, "/panic", nil))

	// Assert
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":5000,"kind":"Internal","message":"internal server error"}`, rec.Body.String())
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	recorder := &recordingRecorder{}
	router := gin.New()
	router.Use(middleware.Metrics(recorder))
	router.GET("/groups/:group_id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	serve(router, httptest.NewRequest(http.MethodGet, "/groups/g-1", nil))
	serve(router, httptest.NewRequest(http.MethodGet, "/groups/g-2", nil))

	require.Len(t, recorder.observations, 2)
	for _, o := range recorder.observations {
		assert.Equal(t, observation{method: http.MethodGet, route: "/groups/:group_id", status: http.StatusNoContent}, o)
	}
}

func TestLoggerLevelFollowsStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
		level  string
	}{
		{"Success is info", http.StatusOK, "Info"},
		{"Client error is warn", http.StatusNotFound, "Warn"},
		{"Server error is error", http.StatusBadGateway, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			logger := coremocks.NewMockLogger(t)
			matchStatus := mock.MatchedBy(func(fields map[string]any) bool {
				return fields["status"] == tt.status && fields["route"] == "/items"
			})
			switch tt.level {
			case "Info":
				logger.EXPECT().Info("Request processed", matchStatus).Once()
			case "Warn":
				logger.EXPECT().Warn("Request rejected", matchStatus).Once()
			case "Error":
				logger.EXPECT().Error("Request failed", matchStatus).Once()
			}

			router := gin.New()
			router.Use(middleware.Logger(logger))
			router.GET("/items", func(c *gin.Context) { c.Status(tt.status) })

			// Act
			serve(router, httptest.NewRequest(http.MethodGet, "/items", nil))
		})
	}
}

func TestCORSAnswersPreflight(t *testing.T) {
	router := gin.New()
	router.GET("/api/groups", func(c *gin.Context) { c.Status(http.StatusOK) })
	handler := middleware.CORS(config.CORSConfig{
		AllowedOrigins: []string{"https://app.example.com"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	})(router)

	t.Run("Allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/groups", nil)
		req.Header.Set("Origin", "https://app.example.com")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)

		rec := serve(handler, req)

		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/groups", nil)
		req.Header.Set("Origin", "https://evil.example.com")

		rec := serve(handler, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestTimeout(t *testing.T) {
	tests := []struct {
		name         string
		timeout      time.Duration
		wantDeadline bool
	}{
		{"Bounded request", 2 * time.Second, true},
		{"Disabled", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var (
				deadline    time.Time
				hasDeadline bool
			)
			router := gin.New()
			router.Use(middleware.Timeout(tt.timeout))
			router.GET("/work", func(c *gin.Context) {
				deadline, hasDeadline = c.Request.Context().Deadline()
				c.Status(http.StatusNoContent)
			})

			// Act
			rec := serve(router, httptest.NewRequest(http.MethodGet, "/work", nil))

			// Assert
			assert.Equal(t, http.StatusNoContent, rec.Code)
			assert.Equal(t, tt.wantDeadline, hasDeadline)
			if tt.wantDeadline {
				assert.WithinDuration(t, time.Now().Add(tt.timeout), deadline, tt.timeout)
			}
		})
	}
}
