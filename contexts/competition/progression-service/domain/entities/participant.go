package entities

import "time"

type Level string

const (
	LevelSchool   Level = "school"
	LevelTaluk    Level = "taluk"
	LevelDistrict Level = "district"
	LevelState    Level = "state"
)

func (l Level) IsValid() bool {
	switch l {
	case LevelSchool, LevelTaluk, LevelDistrict, LevelState:
		return true
	}
	return false
}

// Next returns the following competition level. The second return is false at
// state, which has no next level.
func (l Level) Next() (Level, bool) {
	switch l {
	case LevelSchool:
		return LevelTaluk, true
	case LevelTaluk:
		return LevelDistrict, true
	case LevelDistrict:
		return LevelState, true
	}
	return "", false
}

type Category string

const (
	CategoryPreSchool          Category = "pre-school"
	CategoryJuniorArtists      Category = "junior-artists"
	CategoryYoungCreators      Category = "young-creators"
	CategoryAspiringInnovators Category = "aspiring-innovators"
	CategoryMasterVisionaries  Category = "master-visionaries"
)

func (c Category) IsValid() bool {
	switch c {
	case CategoryPreSchool,
		CategoryJuniorArtists,
		CategoryYoungCreators,
		CategoryAspiringInnovators,
		CategoryMasterVisionaries:
		return true
	}
	return false
}

// Winner is one placed student in a completed round.
type Winner struct {
	Name            string
	Grade           string
	Age             int
	Theme           string
	Position        int
	ArtworkImageURL string
	AdvancesToNext  bool
	StudentID       string
}

// DrawingParticipant is a school's registration for one category at one
// level. A school holds at most one registration per (category, level) pair;
// winners are attached when the round completes.
type DrawingParticipant struct {
	ParticipantID     string
	SchoolID          string
	Category          Category
	Level             Level
	ParticipantCount  int
	Winners           []Winner
	SubmissionDate    time.Time
	IsCompleted       bool
	FromPreviousLevel bool
	AdvancedFrom      *Level
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// AdvancingWinners filters the winners flagged to continue at the next level.
func (p DrawingParticipant) AdvancingWinners() []Winner {
	advancing := make([]Winner, 0, len(p.Winners))
	for _, winner := range p.Winners {
		if winner.AdvancesToNext {
			advancing = append(advancing, winner)
		}
	}
	return advancing
}
