package routes

import (
	"time"

	"schoolhub/api/handler"
	"schoolhub/api/middleware"
	"schoolhub/internal/entity"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

type Router struct {
	Echo              *echo.Echo
	Accounts          *handler.AccountHandler
	School            *handler.SchoolHandler
	SessionMiddleware middleware.SessionMiddleware
	SignupRate        *middleware.RateLimiter
	SigninRate        *middleware.RateLimiter
}

func NewRouter(
	e *echo.Echo,
	accounts *handler.AccountHandler,
	school *handler.SchoolHandler,
	sessionMiddleware middleware.SessionMiddleware,
) *Router {
	return &Router{
		Echo:              e,
		Accounts:          accounts,
		School:            school,
		SessionMiddleware: sessionMiddleware,
		SignupRate:        middleware.NewRateLimiter(rate.Limit(5), 10, 5*time.Minute),
		SigninRate:        middleware.NewRateLimiter(rate.Limit(2), 4, 10*time.Minute),
	}
}

func (r *Router) RegisterRoutes() {
	users := r.Echo.Group("/api/v1/users")
	users.POST("/signup", r.Accounts.Signup, r.SignupRate.Middleware())
	users.POST("/signin", r.Accounts.Signin, r.SigninRate.Middleware())
	users.POST("/verify", r.Accounts.Verify, r.SignupRate.Middleware())
	users.PATCH("/update", r.Accounts.Update)
	users.GET("/logout", r.Accounts.Logout)

	classes := r.Echo.Group("/api/v1/classes", r.SessionMiddleware.RequireSession)
	classes.GET("", r.School.ListClasses)
	classes.GET("/:id/subjects", r.School.ListSubjects)
	classes.POST("", r.School.CreateClass, middleware.RequireRole(entity.RoleTeacher))
	classes.POST("/:id/students", r.School.EnrollStudent, middleware.RequireRole(entity.RoleTeacher))
	classes.POST("/:id/subjects", r.School.CreateSubject, middleware.RequireRole(entity.RoleTeacher))
}
