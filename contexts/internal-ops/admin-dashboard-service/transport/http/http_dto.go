package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type DashboardStatsResponse struct {
	TotalSchools        int            `json:"total_schools"`
	TotalParticipants   int            `json:"total_participants"`
	TotalNominations    int            `json:"total_nominations"`
	ActiveEvaluators    int            `json:"active_evaluators"`
	VotesCast           int            `json:"votes_cast"`
	CompetitionsByLevel map[string]int `json:"competitions_by_level"`
}

type ParticipantOverviewItem struct {
	ParticipantID    string `json:"id"`
	SchoolID         string `json:"school_id"`
	SchoolName       string `json:"school_name,omitempty"`
	District         string `json:"district,omitempty"`
	Taluk            string `json:"taluk,omitempty"`
	Category         string `json:"category"`
	Level            string `json:"level"`
	ParticipantCount int    `json:"participant_count"`
	WinnersDeclared  int    `json:"winners_declared"`
	IsCompleted      bool   `json:"is_completed"`
}

type ParticipantOverviewResponse struct {
	Participants []ParticipantOverviewItem `json:"participants"`
	Count        int                       `json:"count"`
}

type NominationOverviewItem struct {
	NominationID string   `json:"id"`
	SchoolID     string   `json:"school_id"`
	SchoolName   string   `json:"school_name,omitempty"`
	District     string   `json:"district,omitempty"`
	Taluk        string   `json:"taluk,omitempty"`
	TeacherName  string   `json:"teacher_name"`
	Category     string   `json:"category"`
	AwardType    string   `json:"award_type"`
	PublicVotes  int      `json:"public_votes"`
	Status       string   `json:"status"`
	FinalScore   *float64 `json:"final_score,omitempty"`
}

type NominationOverviewResponse struct {
	Nominations []NominationOverviewItem `json:"nominations"`
	Count       int                      `json:"count"`
}
