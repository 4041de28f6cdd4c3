package dto

import (
	"mentorhub/modules/directory/entity"
)

// ===================== Request DTOs =====================

// CreateStudentRequest registers a mentee account plus their student record
type CreateStudentRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	RegNo     string `json:"reg_no" validate:"required"`
	FacultyID string `json:"faculty_id"` // optional assigned mentor
}

// CreateFacultyRequest registers a mentor account plus their faculty record
type CreateFacultyRequest struct {
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	Department string `json:"department" validate:"required"`
	Cabin      string `json:"cabin"`
}

// ===================== Response DTOs =====================

type StudentResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	RegNo     string `json:"reg_no"`
	FacultyID string `json:"faculty_id,omitempty"`
}

type FacultyResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"`
	Department string `json:"department"`
	Cabin      string `json:"cabin,omitempty"`
}

// BookingLinkResponse is the shareable URL a mentor hands to mentees
type BookingLinkResponse struct {
	FacultyID string `json:"faculty_id"`
	Slug      string `json:"slug"`
	URL       string `json:"url"`
}

// ===================== Mapper Functions =====================

func ToStudentResponse(s *entity.Student) *StudentResponse {
	resp := &StudentResponse{
		ID:     s.ID.String(),
		UserID: s.UserID.String(),
		RegNo:  s.RegNo,
	}
	if s.FacultyID != nil {
		resp.FacultyID = s.FacultyID.String()
	}
	return resp
}

func ToStudentWithUserResponse(s *entity.StudentWithUser) *StudentResponse {
	resp := ToStudentResponse(&s.Student)
	resp.Name = s.Name
	resp.Email = s.Email
	return resp
}

func ToFacultyResponse(f *entity.Faculty) *FacultyResponse {
	return &FacultyResponse{
		ID:         f.ID.String(),
		UserID:     f.UserID.String(),
		Department: f.Department,
		Cabin:      f.Cabin,
	}
}
