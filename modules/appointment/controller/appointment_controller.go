package controller

import (
	"mentorhub/core/constants"
	"mentorhub/core/controller"
	"mentorhub/core/errors"
	"mentorhub/core/params"
	"mentorhub/core/utils"
	"mentorhub/modules/appointment/dto"
	"mentorhub/modules/appointment/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AppointmentController handles appointment HTTP requests
type AppointmentController struct {
	controller.BaseController
	AppointmentService service.AppointmentServiceInterface
}

// NewAppointmentController creates a new controller
func NewAppointmentController(svc service.AppointmentServiceInterface) *AppointmentController {
	return &AppointmentController{
		BaseController:     controller.NewBaseController(),
		AppointmentService: svc,
	}
}

// getClaimsFromContext extracts the authenticated identity from the JWT context
func (c *AppointmentController) getClaimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims, nil
}

// Book handles POST /appointments
// @Summary Book an appointment
// @Description Book a mentoring appointment with a faculty member
// @Tags Appointment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BookAppointmentRequest true "Appointment details"
// @Success 201 {object} dto.AppointmentResponse
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/appointments [post]
func (c *AppointmentController) Book(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.BookAppointmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.FacultyID == "" || req.Date == "" || req.Time == "" {
		return c.BadRequest(errors.ErrInvalidInput, "faculty_id, date and time are required")
	}

	result, appErr := c.AppointmentService.Book(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Appointment booked successfully")
}

// GetMine handles GET /appointments/mine
// @Summary List my appointments
// @Description List the calling student's appointments, newest first
// @Tags Appointment
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.AppointmentResponse
// @Failure 401 {object} errors.AppError
// @Router /private/appointments/mine [get]
func (c *AppointmentController) GetMine(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.AppointmentService.GetMine(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// GetRequests handles GET /appointments/requests
// @Summary List appointment requests
// @Description List appointments addressed to the calling faculty member
// @Tags Appointment
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.AppointmentResponse
// @Failure 401 {object} errors.AppError
// @Router /private/appointments/requests [get]
func (c *AppointmentController) GetRequests(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.AppointmentService.GetRequests(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Cancel handles PATCH /appointments/:id/cancel
// @Summary Cancel an appointment (student)
// @Description Cancel the caller's appointment; a reason is required once accepted
// @Tags Appointment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CancelAppointmentRequest true "Cancel reason"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/appointments/{id}/cancel [patch]
func (c *AppointmentController) Cancel(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	apptID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid appointment ID")
	}

	var req dto.CancelAppointmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AppointmentService.StudentCancel(ctx.Request().Context(), claims.UserID, apptID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Appointment cancelled")
}

// Remove handles DELETE /appointments/:id
// @Summary Remove a pending appointment (student)
// @Description Delete the caller's still-pending appointment
// @Tags Appointment
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/appointments/{id} [delete]
func (c *AppointmentController) Remove(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	apptID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid appointment ID")
	}

	if appErr := c.AppointmentService.RemovePending(ctx.Request().Context(), claims.UserID, apptID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Appointment removed")
}

// Reschedule handles PATCH /appointments/:id/reschedule
// @Summary Reschedule an appointment
// @Description Move an appointment to a new slot; it returns to pending
// @Tags Appointment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.RescheduleAppointmentRequest true "New slot and reason"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/appointments/{id}/reschedule [patch]
func (c *AppointmentController) Reschedule(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	apptID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid appointment ID")
	}

	var req dto.RescheduleAppointmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Date == "" || req.Time == "" {
		return c.BadRequest(errors.ErrInvalidInput, "date and time are required")
	}

	result, appErr := c.AppointmentService.Reschedule(ctx.Request().Context(), claims.UserID, claims.UserType, apptID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Appointment rescheduled")
}

// UpdateStatus handles PATCH /appointments/:id/status
// @Summary Update appointment status (faculty)
// @Description Accept, cancel, fail or complete an appointment
// @Tags Appointment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateStatusRequest true "Target status"
// @Success 200 {object} dto.AppointmentResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/appointments/{id}/status [patch]
func (c *AppointmentController) UpdateStatus(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	apptID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid appointment ID")
	}

	var req dto.UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Status == "" {
		return c.BadRequest(errors.ErrInvalidInput, "status is required")
	}

	result, appErr := c.AppointmentService.UpdateStatus(ctx.Request().Context(), claims.UserID, apptID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Appointment status updated")
}

// Complete handles PATCH /appointments/:id/complete
// @Summary Complete an appointment (faculty)
// @Description Close out an elapsed accepted appointment and record the monitoring session
// @Tags Appointment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.CompleteAppointmentRequest true "Completion note"
// @Success 200 {object} dto.CompleteAppointmentResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/appointments/{id}/complete [patch]
func (c *AppointmentController) Complete(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	apptID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid appointment ID")
	}

	var req dto.CompleteAppointmentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}

	result, appErr := c.AppointmentService.Complete(ctx.Request().Context(), claims.UserID, apptID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Appointment completed")
}

// History handles GET /appointments/history
// @Summary List appointment history
// @Description List finished appointments, filterable by status and date
// @Tags Appointment
// @Security BearerAuth
// @Produce json
// @Param status query string false "Terminal status filter"
// @Param date query string false "Date filter (YYYY-MM-DD)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.PaginatedAppointmentResponse
// @Failure 400 {object} errors.AppError
// @Router /private/appointments/history [get]
func (c *AppointmentController) History(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	qp := params.NewQueryParams(ctx)
	result, appErr := c.AppointmentService.History(
		ctx.Request().Context(),
		claims.UserID,
		claims.UserType,
		ctx.QueryParam("status"),
		ctx.QueryParam("date"),
		*qp,
	)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
