package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type GenerateTokensRequest struct {
	Count        int `json:"count"`
	ValidityDays int `json:"validity_days,omitempty"`
}

type TokenItem struct {
	TokenID   string `json:"token_id"`
	Code      string `json:"code"`
	IsUsed    bool   `json:"is_used"`
	ExpiresAt string `json:"expires_at"`
}

type GenerateTokensResponse struct {
	Tokens []TokenItem `json:"tokens"`
	Count  int         `json:"count"`
}

type CastVoteRequest struct {
	Code         string `json:"token"`
	NominationID string `json:"nomination_id"`
}

type CastVoteResponse struct {
	VoteID       string `json:"vote_id"`
	NominationID string `json:"nomination_id"`
	PublicVotes  int    `json:"public_votes"`
	VotedAt      string `json:"voted_at"`
}

type ValidateTokenRequest struct {
	Code string `json:"token"`
}

type ValidateTokenResponse struct {
	Valid  bool   `json:"valid"`
	Status string `json:"status"`
}

type NominationBoardItem struct {
	NominationID    string `json:"id"`
	TeacherName     string `json:"teacher_name"`
	Category        string `json:"category"`
	AwardType       string `json:"award_type"`
	SchoolName      string `json:"school_name"`
	District        string `json:"district"`
	ExperienceYears int    `json:"experience_years"`
	CurrentPosition string `json:"current_position"`
	Achievements    string `json:"achievements"`
	PublicVotes     int    `json:"public_votes"`
}

type NominationBoardResponse struct {
	Nominations []NominationBoardItem `json:"nominations"`
}

type VotingResultsResponse struct {
	NominationID string `json:"nomination_id"`
	TeacherName  string `json:"teacher_name"`
	PublicVotes  int    `json:"public_votes"`
	Status       string `json:"status"`
}
