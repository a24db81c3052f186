package entities

import "time"

type Role string

const (
	RoleSchool    Role = "school"
	RoleAdmin     Role = "admin"
	RoleEvaluator Role = "evaluator"
)

func (r Role) IsValid() bool {
	switch r {
	case RoleSchool, RoleAdmin, RoleEvaluator:
		return true
	}
	return false
}

// SchoolAccount is a self-registered school login plus its public profile.
type SchoolAccount struct {
	AccountID            string
	SchoolName           string
	AuthorizedPersonName string
	Email                string
	PasswordHash         string
	Phone                string
	Address              string
	District             string
	Taluk                string
	UDISECode            string
	PrincipalName        string
	IsActive             bool
	EmailVerified        bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type AdminAccount struct {
	AccountID    string
	Name         string
	Email        string
	PasswordHash string
	Permissions  []string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EvaluatorAccount is created by an administrator; CreatedBy records which
// one.
type EvaluatorAccount struct {
	AccountID          string
	Name               string
	Email              string
	PasswordHash       string
	Expertise          string
	AssignedCategories []string
	AssignedLevels     []string
	CreatedBy          string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Identity is the verified subject of a bearer token.
type Identity struct {
	UserID string
	Role   Role
}
