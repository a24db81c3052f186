package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SchoolRegistrationRequest struct {
	SchoolName           string `json:"school_name"`
	AuthorizedPersonName string `json:"authorized_person_name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	Phone                string `json:"phone"`
	Address              string `json:"address"`
	District             string `json:"district"`
	Taluk                string `json:"taluk"`
	UDISECode            string `json:"udise_code,omitempty"`
	PrincipalName        string `json:"principal_name,omitempty"`
}

type SchoolRegistrationResponse struct {
	SchoolID   string `json:"school_id"`
	SchoolName string `json:"school_name"`
	Email      string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserID      string `json:"user_id"`
	UserType    string `json:"user_type"`
	SchoolName  string `json:"school_name,omitempty"`
	ExpiresIn   int    `json:"expires_in"`
}

type ProfileResponse struct {
	UserID   string         `json:"user_id"`
	UserType string         `json:"user_type"`
	Name     string         `json:"name"`
	Email    string         `json:"email"`
	School   *SchoolProfile `json:"school,omitempty"`
	Admin    *AdminProfile  `json:"admin,omitempty"`
	Evaluate *EvaluatorView `json:"evaluator,omitempty"`
}

type SchoolProfile struct {
	SchoolName    string `json:"school_name"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	District      string `json:"district"`
	Taluk         string `json:"taluk"`
	UDISECode     string `json:"udise_code,omitempty"`
	PrincipalName string `json:"principal_name,omitempty"`
}

type AdminProfile struct {
	Permissions []string `json:"permissions"`
}

type CreateEvaluatorRequest struct {
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Password           string   `json:"password"`
	Expertise          string   `json:"expertise"`
	AssignedCategories []string `json:"assigned_categories"`
	AssignedLevels     []string `json:"assigned_levels"`
}

type EvaluatorView struct {
	EvaluatorID        string   `json:"id"`
	Name               string   `json:"name"`
	Email              string   `json:"email"`
	Expertise          string   `json:"expertise"`
	AssignedCategories []string `json:"assigned_categories"`
	AssignedLevels     []string `json:"assigned_levels"`
	IsActive           bool     `json:"is_active"`
}

type EvaluatorListResponse struct {
	Evaluators []EvaluatorView `json:"evaluators"`
	Count      int             `json:"count"`
}

type SeedAdminResponse struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	Created bool   `json:"created"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}
