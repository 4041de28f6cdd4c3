package dto

import (
	"time"

	"mentorhub/modules/monitoring/entity"
)

// MonitoringSessionResponse for a single mentoring note
type MonitoringSessionResponse struct {
	ID               string    `json:"id"`
	RefCode          string    `json:"ref_code"`
	AppointmentID    string    `json:"appointment_id"`
	StudentID        string    `json:"student_id"`
	FacultyID        string    `json:"faculty_id"`
	DateOfMonitoring string    `json:"date_of_monitoring"`
	HighPoints       string    `json:"high_points"`
	CreatedAt        time.Time `json:"created_at"`
}

// ToMonitoringSessionResponse maps entity to DTO
func ToMonitoringSessionResponse(s *entity.MonitoringSession) *MonitoringSessionResponse {
	return &MonitoringSessionResponse{
		ID:               s.ID.String(),
		RefCode:          s.RefCode,
		AppointmentID:    s.AppointmentID.String(),
		StudentID:        s.StudentID.String(),
		FacultyID:        s.FacultyID.String(),
		DateOfMonitoring: s.DateOfMonitoring.Format("2006-01-02"),
		HighPoints:       s.HighPoints,
		CreatedAt:        s.CreatedAt,
	}
}

// ToMonitoringSessionResponses maps a list of entities
func ToMonitoringSessionResponses(sessions []entity.MonitoringSession) []MonitoringSessionResponse {
	result := make([]MonitoringSessionResponse, 0, len(sessions))
	for i := range sessions {
		result = append(result, *ToMonitoringSessionResponse(&sessions[i]))
	}
	return result
}
