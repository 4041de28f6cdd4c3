package controller

import (
	"mentorhub/core/constants"
	"mentorhub/core/controller"
	"mentorhub/core/errors"
	"mentorhub/core/utils"
	"mentorhub/modules/directory/dto"
	"mentorhub/modules/directory/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DirectoryController handles student and faculty record HTTP requests
type DirectoryController struct {
	controller.BaseController
	DirectoryService service.DirectoryServiceInterface
}

func NewDirectoryController(svc service.DirectoryServiceInterface) *DirectoryController {
	return &DirectoryController{
		BaseController:   controller.NewBaseController(),
		DirectoryService: svc,
	}
}

func (c *DirectoryController) getClaimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	return claims, nil
}

// CreateStudent handles POST /private/directory/students
// @Summary Create a student (admin)
// @Description Register a mentee account and student record
// @Tags Directory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student details"
// @Success 201 {object} dto.StudentResponse
// @Failure 400 {object} errors.AppError
// @Router /private/directory/students [post]
func (c *DirectoryController) CreateStudent(ctx echo.Context) error {
	var req dto.CreateStudentRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.RegNo == "" {
		return c.BadRequest(errors.ErrInvalidInput, "name, email, password and reg_no are required")
	}

	result, appErr := c.DirectoryService.CreateStudent(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Student created")
}

// CreateFaculty handles POST /private/directory/faculty
// @Summary Create a faculty member (admin)
// @Description Register a mentor account and faculty record
// @Tags Directory
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateFacultyRequest true "Faculty details"
// @Success 201 {object} dto.FacultyResponse
// @Failure 400 {object} errors.AppError
// @Router /private/directory/faculty [post]
func (c *DirectoryController) CreateFaculty(ctx echo.Context) error {
	var req dto.CreateFacultyRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid request body")
	}
	if req.Name == "" || req.Email == "" || req.Password == "" || req.Department == "" {
		return c.BadRequest(errors.ErrInvalidInput, "name, email, password and department are required")
	}

	result, appErr := c.DirectoryService.CreateFaculty(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.CreatedResponse(ctx, result, "Faculty created")
}

// DeleteStudent handles DELETE /private/directory/students/:id
// @Summary Delete a student (admin)
// @Description Remove the student, their appointments and monitoring sessions
// @Tags Directory
// @Security BearerAuth
// @Param id path string true "Student ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.AppError
// @Router /private/directory/students/{id} [delete]
func (c *DirectoryController) DeleteStudent(ctx echo.Context) error {
	studentID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid student ID")
	}

	if appErr := c.DirectoryService.DeleteStudent(ctx.Request().Context(), studentID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Student deleted")
}

// ListMentees handles GET /private/directory/mentees
// @Summary List mentees (faculty)
// @Description List the students assigned to the calling faculty member
// @Tags Directory
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.StudentResponse
// @Failure 401 {object} errors.AppError
// @Router /private/directory/mentees [get]
func (c *DirectoryController) ListMentees(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.DirectoryService.ListMentees(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// BookingLink handles GET /private/directory/booking-link
// @Summary Booking link (faculty)
// @Description Return the shareable slugged booking URL for the calling mentor
// @Tags Directory
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.BookingLinkResponse
// @Failure 401 {object} errors.AppError
// @Router /private/directory/booking-link [get]
func (c *DirectoryController) BookingLink(ctx echo.Context) error {
	claims, err := c.getClaimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.DirectoryService.BookingLink(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
