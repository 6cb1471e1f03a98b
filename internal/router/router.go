package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"mergington/internal/config"
	"mergington/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	log zerolog.Logger,
	activityHandler *handler.ActivityHandler,
	enrollmentHandler *handler.EnrollmentHandler,
) {
	e.HideBanner = true
	e.JSONSerializer = &JSONSerializer{}
	e.Validator = &CustomValidator{validator: validator.New()}

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(ContextLogger(log))
	e.Use(RequestLogger())
	e.Use(middleware.Recover())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.GET("/", handler.Root)
	e.Static("/static", cfg.StaticDir)

	e.GET("/activities", activityHandler.ListActivities)
	e.POST("/activities/:activity_name/signup", enrollmentHandler.SignUp)
	e.DELETE("/activities/:activity_name/unregister", enrollmentHandler.Unregister)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
