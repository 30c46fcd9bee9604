package model

import "time"

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	return r == RoleStudent || r == RoleTeacher || r == RoleAdmin
}

// Profile is the domain record linked 1:1 to an authenticated principal.
// Role-specific data lives in the Teacher/Student variants; exactly one of
// them is set for the matching role, both are nil for admins.
type Profile struct {
	ID           string       `json:"id"`
	Role         Role         `json:"role"`
	Username     string       `json:"username"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Teacher      *TeacherInfo `json:"teacher,omitempty"`
	Student      *StudentInfo `json:"student,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// TeacherInfo carries the teacher-only profile fields.
type TeacherInfo struct {
	Department string `json:"department"`
	Subject    string `json:"subject"`
}

// StudentInfo carries the student-only profile fields.
type StudentInfo struct {
	Department string `json:"department"`
	Approved   bool   `json:"approved"`
}

// IsTeacher checks if the profile belongs to a teacher
func (p *Profile) IsTeacher() bool {
	return p.Role == RoleTeacher
}

// IsStudent checks if the profile belongs to a student
func (p *Profile) IsStudent() bool {
	return p.Role == RoleStudent
}

// IsAdmin checks if the profile belongs to an admin
func (p *Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// DisplayName returns the name shown in directory listings: the username when
// present, the email otherwise.
func (p *Profile) DisplayName() string {
	if p.Username != "" {
		return p.Username
	}
	return p.Email
}
