package routes

import (
	"time"

	coreport "github.com/amirhossein-jamali/expense-splitter/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-splitter/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler of the API
type Handlers struct {
	User    *handler.UserHandler
	Contact *handler.ContactHandler
	Group   *handler.GroupHandler
	Expense *handler.ExpenseHandler
	Health  *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API.
// requireAuth guards every route except registration, login and health.
func SetupRoutes(router *gin.Engine, h Handlers, requireAuth gin.HandlerFunc) {
	router.GET("/health", h.Health.Health)
	router.NoRoute(middleware.NoRoute())

	api := router.Group("/api")

	users := api.Group("/users")
	{
		users.POST("", h.User.Register)
		users.POST("/login", h.User.Login)
		users.GET("/me", requireAuth, h.User.GetProfile)
		users.PUT("/me", requireAuth, h.User.UpdateProfile)
	}

	contacts := api.Group("/contacts", requireAuth)
	{
		contacts.POST("/add", h.Contact.AddFriend)
		contacts.DELETE("/remove/:friend_id", h.Contact.RemoveFriend)
		contacts.GET("/friends", h.Contact.ListFriends)
		contacts.GET("/all", h.Contact.ListContacts)
	}

	groups := api.Group("/groups", requireAuth)
	{
		groups.POST("", h.Group.CreateGroup)
		groups.GET("", h.Group.ListGroups)
		groups.GET("/:group_id", h.Group.GetGroup)
		groups.PUT("/:group_id", h.Group.UpdateGroup)
		groups.DELETE("/:group_id", h.Group.DeleteGroup)
		groups.POST("/:group_id/members", h.Group.AddMember)
		groups.DELETE("/:group_id/members/:user_id", h.Group.RemoveMember)
	}

	expenses := api.Group("/expenses", requireAuth)
	{
		expenses.POST("", h.Expense.CreateExpense)
		expenses.GET("", h.Expense.ListExpenses)
		expenses.GET("/balances", h.Expense.GetBalances)
		expenses.GET("/group/:group_id", h.Expense.ListGroupExpenses)
		expenses.GET("/:expense_id", h.Expense.GetExpense)
		expenses.PUT("/:expense_id", h.Expense.UpdateExpense)
		expenses.DELETE("/:expense_id", h.Expense.DeleteExpense)
	}
}

// SetupMiddlewares configures global middlewares for the API. recorder may be nil.
// requestTimeout bounds the context handed to every handler.
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, recorder middleware.HTTPRecorder, requestTimeout time.Duration) {
	router.Use(middleware.ErrorHandler(logger))
	if recorder != nil {
		router.Use(middleware.Metrics(recorder))
	}
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Timeout(requestTimeout))
}
