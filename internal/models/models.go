package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// scanString accepts the text representations pgx hands to a sql.Scanner.
func scanString(value interface{}, typeName string) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	default:
		return "", fmt.Errorf("failed to scan %s: value is not string or []byte", typeName)
	}
}

// --- User Role Enum ---
type UserRole string

const (
	RoleWorker     UserRole = "worker"
	RoleEmployer   UserRole = "employer"
	RoleBoth       UserRole = "both"
	RoleAdmin      UserRole = "admin"
	RoleSuperAdmin UserRole = "superadmin"
)

func (r UserRole) Valid() bool {
	switch r {
	case RoleWorker, RoleEmployer, RoleBoth, RoleAdmin, RoleSuperAdmin:
		return true
	}
	return false
}

// CanPostJobs reports whether the role is allowed to create jobs. Admins moderate but do not post.
func (r UserRole) CanPostJobs() bool {
	return r == RoleEmployer || r == RoleBoth
}

// IsAdmin reports whether the role carries admin capability.
func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// Scan implements the sql.Scanner interface for UserRole
func (r *UserRole) Scan(value interface{}) error {
	s, err := scanString(value, "UserRole")
	if err != nil {
		return err
	}
	v := UserRole(s)
	if !v.Valid() {
		return fmt.Errorf("invalid UserRole value: %s", s)
	}
	*r = v
	return nil
}

// Value implements the driver.Valuer interface for UserRole
func (r UserRole) Value() (driver.Value, error) {
	return string(r), nil
}

// --- User Status Enum ---
type UserStatus string

const (
	UserStatusPending  UserStatus = "pending"
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserStatusPending, UserStatusActive, UserStatusDisabled:
		return true
	}
	return false
}

func (s *UserStatus) Scan(value interface{}) error {
	str, err := scanString(value, "UserStatus")
	if err != nil {
		return err
	}
	v := UserStatus(str)
	if !v.Valid() {
		return fmt.Errorf("invalid UserStatus value: %s", str)
	}
	*s = v
	return nil
}

func (s UserStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Job Status Enum ---
type JobStatus string

const (
	JobStatusAvailable  JobStatus = "Available"
	JobStatusInProgress JobStatus = "In Progress"
	JobStatusCompleted  JobStatus = "Completed"
	JobStatusCancelled  JobStatus = "Cancelled"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusAvailable, JobStatusInProgress, JobStatusCompleted, JobStatusCancelled:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for JobStatus
func (s *JobStatus) Scan(value interface{}) error {
	str, err := scanString(value, "JobStatus")
	if err != nil {
		return err
	}
	v := JobStatus(str)
	if !v.Valid() {
		return fmt.Errorf("invalid JobStatus value: %s", str)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for JobStatus
func (s JobStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "Pending"
	ApplicationStatusReviewed ApplicationStatus = "Reviewed"
	ApplicationStatusAccepted ApplicationStatus = "Accepted"
	ApplicationStatusRejected ApplicationStatus = "Rejected"
)

func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

func (s *ApplicationStatus) Scan(value interface{}) error {
	str, err := scanString(value, "ApplicationStatus")
	if err != nil {
		return err
	}
	v := ApplicationStatus(str)
	if !v.Valid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", str)
	}
	*s = v
	return nil
}

func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// User is an account holder. Either Email or PhoneNumber is always set.
type User struct {
	ID           uuid.UUID  `json:"id"`
	Email        *string    `json:"email,omitempty"`
	PhoneNumber  *string    `json:"phone_number,omitempty"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Role         UserRole   `json:"role"`
	Status       UserStatus `json:"status"`
	PasswordHash string     `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Identifier returns the email when present, the phone number otherwise.
func (u *User) Identifier() string {
	if u.Email != nil && *u.Email != "" {
		return *u.Email
	}
	if u.PhoneNumber != nil {
		return *u.PhoneNumber
	}
	return ""
}

// UserSummary is the public projection of a user embedded in jobs and applications.
type UserSummary struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       *string   `json:"email,omitempty"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
}

type Category struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// Job is a posting. Applicants is derived from the job_applications table.
type Job struct {
	ID                  uuid.UUID   `json:"id"`
	Title               string      `json:"title"`
	Description         string      `json:"description"`
	Location            string      `json:"location"`
	Salary              string      `json:"salary"`
	JobType             string      `json:"job_type"`
	Deadline            time.Time   `json:"deadline"`
	CategoryID          *uuid.UUID  `json:"category_id,omitempty"`
	PosterID            uuid.UUID   `json:"poster_id"`
	Status              JobStatus   `json:"status"`
	SelectedApplicantID *uuid.UUID  `json:"selected_applicant_id,omitempty"`
	Applicants          []uuid.UUID `json:"applicants"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}

// HasApplicant reports whether userID is in the job's applicant set.
func (j *Job) HasApplicant(userID uuid.UUID) bool {
	for _, id := range j.Applicants {
		if id == userID {
			return true
		}
	}
	return false
}

// JobDetails is a job populated with its category name and poster.
type JobDetails struct {
	Job
	CategoryName *string     `json:"category_name,omitempty"`
	Poster       UserSummary `json:"poster"`
}

// JobSummary is the job projection embedded in application listings.
type JobSummary struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Location     string     `json:"location"`
	JobType      string     `json:"job_type"`
	Salary       string     `json:"salary"`
	Deadline     time.Time  `json:"deadline"`
	Status       JobStatus  `json:"status"`
	PosterID     uuid.UUID  `json:"poster_id"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty"`
	CategoryName *string    `json:"category_name,omitempty"`
}

type JobApplication struct {
	ID          uuid.UUID         `json:"id"`
	JobID       uuid.UUID         `json:"job_id"`
	ApplicantID uuid.UUID         `json:"applicant_id"`
	Resume      string            `json:"resume"`
	CoverLetter string            `json:"cover_letter"`
	Status      ApplicationStatus `json:"status"`
	AppliedDate time.Time         `json:"applied_date"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// ApplicationDetails is an application populated with its job and applicant.
type ApplicationDetails struct {
	JobApplication
	Job       JobSummary  `json:"job"`
	Applicant UserSummary `json:"applicant"`
}
