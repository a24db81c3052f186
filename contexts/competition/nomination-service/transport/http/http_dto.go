package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type NominateTeacherRequest struct {
	TeacherName      string   `json:"teacher_name"`
	Category         string   `json:"category"`
	AwardType        string   `json:"award_type"`
	Email            string   `json:"email,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	ExperienceYears  int      `json:"experience_years"`
	CurrentPosition  string   `json:"current_position"`
	Qualifications   string   `json:"qualifications"`
	SubjectsTaught   []string `json:"subjects_taught"`
	Achievements     string   `json:"achievements"`
	NominationLetter string   `json:"nomination_letter"`
}

type NominateTeacherResponse struct {
	NominationID string `json:"nomination_id"`
	TeacherName  string `json:"teacher_name"`
	Category     string `json:"category"`
	Status       string `json:"status"`
}

type ScoreNominationRequest struct {
	Score int `json:"score"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type NominationResponse struct {
	NominationID     string         `json:"id"`
	SchoolID         string         `json:"school_id"`
	TeacherName      string         `json:"teacher_name"`
	Category         string         `json:"category"`
	AwardType        string         `json:"award_type"`
	Email            string         `json:"email,omitempty"`
	Phone            string         `json:"phone,omitempty"`
	ExperienceYears  int            `json:"experience_years"`
	CurrentPosition  string         `json:"current_position"`
	Qualifications   string         `json:"qualifications"`
	SubjectsTaught   []string       `json:"subjects_taught"`
	Achievements     string         `json:"achievements"`
	NominationLetter string         `json:"nomination_letter"`
	PublicVotes      int            `json:"public_votes"`
	EvaluatorScores  map[string]int `json:"evaluator_scores"`
	Status           string         `json:"status"`
	FinalScore       *float64       `json:"final_score,omitempty"`
	CreatedAt        string         `json:"created_at"`
}

type NominationListResponse struct {
	Nominations []NominationResponse `json:"nominations"`
	Count       int                  `json:"count"`
}
