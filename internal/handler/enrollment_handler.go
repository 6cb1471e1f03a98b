package handler

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"mergington/internal/errors"
	"mergington/internal/service"
)

// EnrollmentHandler handles signup and unregister endpoints.
type EnrollmentHandler struct {
	enrollmentService service.EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler.
func NewEnrollmentHandler(enrollmentService service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{enrollmentService: enrollmentService}
}

// EnrollmentRequest identifies a student and an activity.
type EnrollmentRequest struct {
	ActivityName string `validate:"required"`
	Email        string `validate:"required,max=200"`
}

// bindEnrollment reads the activity from the path and the email from the query
// string or a form body.
func bindEnrollment(c echo.Context) (*EnrollmentRequest, error) {
	req := &EnrollmentRequest{
		ActivityName: pathParam(c, "activity_name"),
		Email:        c.FormValue("email"),
	}
	if err := c.Validate(req); err != nil {
		return nil, echo.NewHTTPError(http.StatusUnprocessableEntity, errors.ErrorResponse{
			Detail: validationDetail(err),
			Code:   "VALIDATION_ERROR",
		})
	}
	return req, nil
}

// validationDetail turns the first failed rule into a message that names the
// request parameter rather than the Go field.
func validationDetail(err error) string {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return "invalid request"
	}
	fe := fieldErrs[0]
	param := "email"
	if fe.Field() == "ActivityName" {
		param = "activity_name"
	}
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", param, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", param)
	}
}

// SignUp godoc
// @Summary Sign a student up for an activity
// @Tags activities
// @Produce json
// @Param activity_name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /activities/{activity_name}/signup [post]
func (h *EnrollmentHandler) SignUp(c echo.Context) error {
	req, err := bindEnrollment(c)
	if err != nil {
		return err
	}

	if err := h.enrollmentService.SignUp(c.Request().Context(), req.ActivityName, req.Email); err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", req.Email, req.ActivityName),
	})
}

// Unregister godoc
// @Summary Remove a student from an activity
// @Tags activities
// @Produce json
// @Param activity_name path string true "Activity name"
// @Param email query string true "Student email"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 422 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /activities/{activity_name}/unregister [delete]
func (h *EnrollmentHandler) Unregister(c echo.Context) error {
	req, err := bindEnrollment(c)
	if err != nil {
		return err
	}

	if err := h.enrollmentService.Unregister(c.Request().Context(), req.ActivityName, req.Email); err != nil {
		return domainError(c, err)
	}

	return c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", req.Email, req.ActivityName),
	})
}
