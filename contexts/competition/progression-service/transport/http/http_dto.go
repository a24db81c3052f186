package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type RegisterParticipantsRequest struct {
	Participants map[string]int `json:"participants"`
	Level        string         `json:"level,omitempty"`
}

type RegistrationOutcomeItem struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
	Action   string `json:"action"`
}

type RegisterParticipantsResponse struct {
	Participants []RegistrationOutcomeItem `json:"participants"`
}

type WinnerItem struct {
	Name            string `json:"name"`
	Grade           string `json:"grade"`
	Age             int    `json:"age"`
	Theme           string `json:"theme"`
	Position        int    `json:"position"`
	ArtworkImageURL string `json:"artwork_image_url,omitempty"`
	AdvancesToNext  bool   `json:"advances_to_next"`
	StudentID       string `json:"student_id,omitempty"`
}

type SubmitWinnersRequest struct {
	Category string       `json:"category"`
	Level    string       `json:"level"`
	Winners  []WinnerItem `json:"winners"`
}

type SubmitWinnersResponse struct {
	Category       string `json:"category"`
	Level          string `json:"level"`
	WinnersCount   int    `json:"winners_count"`
	AdvancingCount int    `json:"advancing_count"`
	NextLevel      string `json:"next_level,omitempty"`
}

type ParticipantResponse struct {
	ParticipantID     string       `json:"id"`
	SchoolID          string       `json:"school_id"`
	Category          string       `json:"category"`
	Level             string       `json:"level"`
	ParticipantCount  int          `json:"participant_count"`
	Winners           []WinnerItem `json:"winners"`
	IsCompleted       bool         `json:"is_completed"`
	FromPreviousLevel bool         `json:"from_previous_level"`
	AdvancedFrom      string       `json:"advanced_from,omitempty"`
	SubmissionDate    string       `json:"submission_date"`
}

type ParticipantListResponse struct {
	Participants []ParticipantResponse `json:"participants"`
	Count        int                   `json:"count"`
}

type SchoolDashboardResponse struct {
	TotalParticipants    int      `json:"total_participants"`
	CategoriesRegistered []string `json:"categories_registered"`
	WinnersSubmitted     int      `json:"winners_submitted"`
	TeacherNominations   int      `json:"teacher_nominations"`
	CurrentLevel         string   `json:"current_level"`
}
