package entities

import "time"

type NominationStatus string

const (
	StatusNominated   NominationStatus = "nominated"
	StatusShortlisted NominationStatus = "shortlisted"
	StatusWinner      NominationStatus = "winner"
	StatusRejected    NominationStatus = "rejected"
)

type AwardCategory string

const (
	CategoryLifetimeExcellence    AwardCategory = "lifetime-excellence"
	CategoryInspirationalTeaching AwardCategory = "inspirational-teaching"
	CategoryAcademicExcellence    AwardCategory = "academic-excellence"
	CategoryInnovationGrowth      AwardCategory = "innovation-growth"
	CategorySocialContribution    AwardCategory = "social-contribution"
)

func (c AwardCategory) IsValid() bool {
	switch c {
	case CategoryLifetimeExcellence,
		CategoryInspirationalTeaching,
		CategoryAcademicExcellence,
		CategoryInnovationGrowth,
		CategorySocialContribution:
		return true
	}
	return false
}

func (s NominationStatus) IsValid() bool {
	switch s {
	case StatusNominated, StatusShortlisted, StatusWinner, StatusRejected:
		return true
	}
	return false
}

// TeacherNomination is a school's submission of one teacher for one award.
// EvaluatorScores is keyed by evaluator account id; FinalScore is the mean of
// those scores and is nil until the first score lands.
type TeacherNomination struct {
	NominationID        string
	SchoolID            string
	TeacherName         string
	Category            AwardCategory
	AwardType           string
	Email               string
	Phone               string
	ExperienceYears     int
	CurrentPosition     string
	Qualifications      string
	SubjectsTaught      []string
	Achievements        string
	NominationLetter    string
	SupportingDocuments []string
	PublicVotes         int
	EvaluatorScores     map[string]int
	Status              NominationStatus
	FinalScore          *float64
	FeePaid             bool
	PaymentReference    string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// OpenForVoting reports whether the nomination appears on the public board.
func (n TeacherNomination) OpenForVoting() bool {
	return n.Status == StatusNominated || n.Status == StatusShortlisted
}

// RecordScore stores one evaluator's score and recomputes the mean. A repeat
// score from the same evaluator replaces the earlier one.
func (n *TeacherNomination) RecordScore(evaluatorID string, score int) {
	if n.EvaluatorScores == nil {
		n.EvaluatorScores = make(map[string]int, 1)
	}
	n.EvaluatorScores[evaluatorID] = score

	total := 0
	for _, value := range n.EvaluatorScores {
		total += value
	}
	mean := float64(total) / float64(len(n.EvaluatorScores))
	n.FinalScore = &mean
}
