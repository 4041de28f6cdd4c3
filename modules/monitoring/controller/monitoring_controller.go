package controller

import (
	"mentorhub/core/constants"
	"mentorhub/core/controller"
	"mentorhub/core/errors"
	"mentorhub/core/utils"
	"mentorhub/modules/monitoring/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// MonitoringController handles monitoring-session HTTP requests
type MonitoringController struct {
	controller.BaseController
	MonitoringService service.MonitoringServiceInterface
}

func NewMonitoringController(svc service.MonitoringServiceInterface) *MonitoringController {
	return &MonitoringController{
		BaseController:    controller.NewBaseController(),
		MonitoringService: svc,
	}
}

func (c *MonitoringController) getClaimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok || claims == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	return claims, nil
}

// ListMine handles GET /monitoring-sessions/mine
// @Summary List my monitoring sessions
// @Description List the mentoring notes recorded for the calling student
// @Tags Monitoring
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.MonitoringSessionResponse
// @Failure 401 {object} errors.AppError
// @Router /private/monitoring-sessions/mine [get]
func (c *MonitoringController) ListMine(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.MonitoringService.ListMine(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// ListForMentee handles GET /monitoring-sessions/students/:studentId
// @Summary List a mentee's monitoring sessions
// @Description List the notes the calling faculty recorded for one mentee
// @Tags Monitoring
// @Security BearerAuth
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {array} dto.MonitoringSessionResponse
// @Failure 404 {object} errors.AppError
// @Router /private/monitoring-sessions/students/{studentId} [get]
func (c *MonitoringController) ListForMentee(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	studentID, err := uuid.Parse(ctx.Param("studentId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid student ID")
	}

	result, appErr := c.MonitoringService.ListForMentee(ctx.Request().Context(), claims.UserID, studentID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
