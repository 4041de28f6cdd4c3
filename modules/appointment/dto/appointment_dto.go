package dto

import (
	"time"

	"mentorhub/modules/appointment/entity"
)

// ===================== Request DTOs =====================

// BookAppointmentRequest for a student booking a slot with their mentor
type BookAppointmentRequest struct {
	FacultyID       string `json:"faculty_id" validate:"required"`
	Date            string `json:"date" validate:"required"`            // YYYY-MM-DD
	Time            string `json:"time" validate:"required"`            // HH:MM
	DurationMinutes int    `json:"duration" validate:"required,min=1"`  // minutes
	MeetingMode     string `json:"meeting_mode" validate:"required"`    // online | offline
	Location        string `json:"location"`                            // link or room
	Message         string `json:"message"`
}

// CancelAppointmentRequest for the student-side cancel
type CancelAppointmentRequest struct {
	CancelReason string `json:"cancel_reason"`
}

// RescheduleAppointmentRequest moves an appointment to a new slot
type RescheduleAppointmentRequest struct {
	Date             string `json:"date" validate:"required"`
	Time             string `json:"time" validate:"required"`
	RescheduleReason string `json:"reschedule_reason" validate:"required"`
}

// UpdateStatusRequest for the faculty lifecycle endpoint
type UpdateStatusRequest struct {
	Status       string `json:"status" validate:"required"` // accepted | cancelled | failed | completed
	CancelReason string `json:"cancel_reason"`
	HighPoints   string `json:"high_points"` // required when status is completed
}

// CompleteAppointmentRequest closes out an accepted appointment with a note
type CompleteAppointmentRequest struct {
	HighPoints string `json:"high_points" validate:"required"`
}

// ===================== Response DTOs =====================

// AppointmentResponse for a single appointment
type AppointmentResponse struct {
	ID               string    `json:"id"`
	StudentID        string    `json:"student_id"`
	FacultyID        string    `json:"faculty_id"`
	StudentName      string    `json:"student_name,omitempty"`
	FacultyName      string    `json:"faculty_name,omitempty"`
	Date             string    `json:"date"`
	Time             string    `json:"time"`
	DurationMinutes  int       `json:"duration"`
	MeetingMode      string    `json:"meeting_mode"`
	Location         string    `json:"location,omitempty"`
	Message          string    `json:"message,omitempty"`
	Status           string    `json:"status"`
	CancelledBy      string    `json:"cancelled_by,omitempty"`
	CancelReason     string    `json:"cancel_reason,omitempty"`
	RescheduleReason string    `json:"reschedule_reason,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// CompleteAppointmentResponse carries the monitoring session created on completion
type CompleteAppointmentResponse struct {
	AppointmentID       string `json:"appointment_id"`
	MonitoringSessionID string `json:"monitoring_session_id"`
	RefCode             string `json:"ref_code"`
}

// PaginatedAppointmentResponse for the history listing
type PaginatedAppointmentResponse struct {
	Items      []AppointmentResponse `json:"items"`
	TotalItems int                   `json:"total_items"`
	PageNumber int                   `json:"page_number"`
	PageSize   int                   `json:"page_size"`
}

// ===================== Mapper Functions =====================

// ToAppointmentResponse maps entity to DTO, splitting the stored instant back
// into the date and time fields the client works with
func ToAppointmentResponse(a *entity.Appointment) *AppointmentResponse {
	resp := &AppointmentResponse{
		ID:              a.ID.String(),
		StudentID:       a.StudentID.String(),
		FacultyID:       a.FacultyID.String(),
		Date:            a.StartAt.Format("2006-01-02"),
		Time:            a.StartAt.Format("15:04"),
		DurationMinutes: a.DurationMinutes,
		MeetingMode:     string(a.MeetingMode),
		Location:        a.Location,
		Message:         a.Message,
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if a.CancelledBy != nil {
		resp.CancelledBy = string(*a.CancelledBy)
	}
	if a.CancelReason != nil {
		resp.CancelReason = *a.CancelReason
	}
	if a.RescheduleReason != nil {
		resp.RescheduleReason = *a.RescheduleReason
	}
	return resp
}

// ToAppointmentWithNamesResponse maps a joined row to DTO
func ToAppointmentWithNamesResponse(a *entity.AppointmentWithNames) *AppointmentResponse {
	resp := ToAppointmentResponse(&a.Appointment)
	resp.FacultyName = a.FacultyName
	resp.StudentName = a.StudentName
	return resp
}

// ToPaginatedAppointmentResponse maps a page of joined rows
func ToPaginatedAppointmentResponse(p *entity.PaginatedAppointments) *PaginatedAppointmentResponse {
	items := make([]AppointmentResponse, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, *ToAppointmentWithNamesResponse(&p.Items[i]))
	}
	return &PaginatedAppointmentResponse{
		Items:      items,
		TotalItems: p.TotalItems,
		PageNumber: p.PageNumber,
		PageSize:   p.PageSize,
	}
}
