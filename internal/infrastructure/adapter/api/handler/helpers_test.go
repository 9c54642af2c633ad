package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/expense-splitter/internal/domain/error"
	port "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/routes"
	coremocks "github.com/amirhossein-jamali/expense-splitter/mocks/port/core"
	usecasemocks "github.com/amirhossein-jamali/expense-splitter/mocks/port/usecase"
)

const (
	callerToken    = "valid-token"
	callerUser     = "u-1"
	requestTimeout = 5 * time.Second
)

var fixedTime = time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error {
	return p.err
}

// api wires the real router to mocked use cases
type api struct {
	users    *usecasemocks.MockUserUseCase
	contacts *usecasemocks.MockContactUseCase
	groups   *usecasemocks.MockGroupUseCase
	expenses *usecasemocks.MockExpenseUseCase
	balances *usecasemocks.MockBalanceUseCase
	router   *gin.Engine
}

func newAPI(t *testing.T) *api {
	return newAPIWithPinger(t, stubPinger{})
}

func newAPIWithPinger(t *testing.T, pinger handler.Pinger) *api {
	return buildAPI(t, pinger, nil)
}

// newAPIWithExpenseService routes expense requests to expenses instead of the mock
func newAPIWithExpenseService(t *testing.T, expenses port.ExpenseUseCase) *api {
	return buildAPI(t, stubPinger{}, expenses)
}

func buildAPI(t *testing.T, pinger handler.Pinger, expenses port.ExpenseUseCase) *api {
	a := &api{
		users:    usecasemocks.NewMockUserUseCase(t),
		contacts: usecasemocks.NewMockContactUseCase(t),
		groups:   usecasemocks.NewMockGroupUseCase(t),
		expenses: usecasemocks.NewMockExpenseUseCase(t),
		balances: usecasemocks.NewMockBalanceUseCase(t),
	}

	logger := coremocks.NewMockLogger(t)
	logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()

	tokens := coremocks.NewMockTokenIssuer(t)
	tokens.EXPECT().Verify(callerToken).Return(callerUser, nil).Maybe()
	tokens.EXPECT().Verify(mock.MatchedBy(func(token string) bool { return token != callerToken })).
		Return("", errs.ErrUnauthenticated).Maybe()

	if expenses == nil {
		expenses = a.expenses
	}

	a.router = gin.New()
	routes.SetupMiddlewares(a.router, logger, nil, requestTimeout)
	routes.SetupRoutes(a.router, routes.Handlers{
		User:    handler.NewUserHandler(a.users, logger),
		Contact: handler.NewContactHandler(a.contacts, logger),
		Group:   handler.NewGroupHandler(a.groups, logger),
		Expense: handler.NewExpenseHandler(expenses, a.balances, logger),
		Health:  handler.NewHealthHandler(pinger, logger),
	}, middleware.Auth(tokens, logger))

	return a
}

// do sends a request with the caller's token. body is JSON-encoded unless it is a string.
func (a *api) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	return a.doWithToken(t, method, path, body, callerToken)
}

func (a *api) doWithToken(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch b := body.(type) {
	case nil:
	case string:
		payload = []byte(b)
	default:
		var err error
		payload, err = json.Marshal(b)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	return decode[dto.ErrorResponse](t, rec)
}

func assertStatus(t *testing.T, want int, rec *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, want, rec.Code, rec.Body.String())
}

func httptestRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(a *api, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}
