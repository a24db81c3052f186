package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ignite/contexts/competition/progression-service/domain/entities"
	domainerrors "ignite/contexts/competition/progression-service/domain/errors"
	"ignite/contexts/competition/progression-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) SaveParticipant(ctx context.Context, participant entities.DrawingParticipant) error {
	row, err := participantModelFromEntity(participant)
	if err != nil {
		return r.logError("progression_repo_encode_failed", err,
			"participant_id", strings.TrimSpace(participant.ParticipantID),
		)
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"participant_count": row.ParticipantCount,
			"winners":           row.Winners,
			"is_completed":      row.IsCompleted,
			"updated_at":        row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		// The (school_id, category, level) unique index is the concurrent
		// duplicate guard for next-level record creation.
		if isUniqueViolation(create.Error) {
			return domainerrors.ErrConflict
		}
		return r.logError("progression_repo_save_failed", create.Error,
			"participant_id", row.ID,
			"school_id", row.SchoolID,
		)
	}
	return nil
}

func (r *Repository) GetParticipant(
	ctx context.Context,
	schoolID string,
	category entities.Category,
	level entities.Level,
) (entities.DrawingParticipant, bool, error) {
	var row participantModel
	err := r.db.WithContext(ctx).
		Where("school_id = ?", strings.TrimSpace(schoolID)).
		Where("category = ?", string(category)).
		Where("level = ?", string(level)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.DrawingParticipant{}, false, nil
		}
		return entities.DrawingParticipant{}, false, r.logError("progression_repo_get_failed", err,
			"school_id", strings.TrimSpace(schoolID),
			"category", string(category),
			"level", string(level),
		)
	}
	participant, err := r.decode(row)
	if err != nil {
		return entities.DrawingParticipant{}, false, err
	}
	return participant, true, nil
}

func (r *Repository) ListParticipantsBySchool(ctx context.Context, schoolID string) ([]entities.DrawingParticipant, error) {
	var rows []participantModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ?", strings.TrimSpace(schoolID)).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("progression_repo_list_by_school_failed", err,
			"school_id", strings.TrimSpace(schoolID),
		)
	}
	return r.decodeAll(rows)
}

func (r *Repository) ListParticipants(ctx context.Context) ([]entities.DrawingParticipant, error) {
	var rows []participantModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("progression_repo_list_failed", err)
	}
	return r.decodeAll(rows)
}

// CountNominationsBySchool reads the nomination table owned by the nomination
// module; the dashboard only needs the count.
func (r *Repository) CountNominationsBySchool(ctx context.Context, schoolID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("teacher_nominations").
		Where("school_id = ?", strings.TrimSpace(schoolID)).
		Count(&count).
		Error
	if err != nil {
		return 0, r.logError("progression_repo_count_nominations_failed", err,
			"school_id", strings.TrimSpace(schoolID),
		)
	}
	return int(count), nil
}

func (r *Repository) decodeAll(rows []participantModel) ([]entities.DrawingParticipant, error) {
	items := make([]entities.DrawingParticipant, 0, len(rows))
	for _, row := range rows {
		participant, err := r.decode(row)
		if err != nil {
			return nil, err
		}
		items = append(items, participant)
	}
	return items, nil
}

func (r *Repository) decode(row participantModel) (entities.DrawingParticipant, error) {
	participant, err := row.toEntity()
	if err != nil {
		return entities.DrawingParticipant{}, r.logError("progression_repo_decode_failed", err,
			"participant_id", row.ID,
		)
	}
	return participant, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "competition/progression-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("progression repository operation failed", fields...)
	return err
}

type participantModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	SchoolID          string    `gorm:"column:school_id;uniqueIndex:idx_participants_registration"`
	Category          string    `gorm:"column:category;uniqueIndex:idx_participants_registration"`
	Level             string    `gorm:"column:level;uniqueIndex:idx_participants_registration"`
	ParticipantCount  int       `gorm:"column:participant_count"`
	Winners           []byte    `gorm:"column:winners;type:jsonb"`
	SubmissionDate    time.Time `gorm:"column:submission_date"`
	IsCompleted       bool      `gorm:"column:is_completed"`
	FromPreviousLevel bool      `gorm:"column:from_previous_level"`
	AdvancedFrom      *string   `gorm:"column:advanced_from"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (participantModel) TableName() string {
	return "drawing_participants"
}

type winnerRecord struct {
	Name            string `json:"name"`
	Grade           string `json:"grade"`
	Age             int    `json:"age"`
	Theme           string `json:"theme"`
	Position        int    `json:"position"`
	ArtworkImageURL string `json:"artwork_image_url,omitempty"`
	AdvancesToNext  bool   `json:"advances_to_next"`
	StudentID       string `json:"student_id,omitempty"`
}

func participantModelFromEntity(participant entities.DrawingParticipant) (participantModel, error) {
	records := make([]winnerRecord, 0, len(participant.Winners))
	for _, winner := range participant.Winners {
		records = append(records, winnerRecord(winner))
	}
	winners, err := json.Marshal(records)
	if err != nil {
		return participantModel{}, err
	}
	row := participantModel{
		ID:                strings.TrimSpace(participant.ParticipantID),
		SchoolID:          strings.TrimSpace(participant.SchoolID),
		Category:          string(participant.Category),
		Level:             string(participant.Level),
		ParticipantCount:  participant.ParticipantCount,
		Winners:           winners,
		SubmissionDate:    participant.SubmissionDate.UTC(),
		IsCompleted:       participant.IsCompleted,
		FromPreviousLevel: participant.FromPreviousLevel,
		CreatedAt:         participant.CreatedAt.UTC(),
		UpdatedAt:         participant.UpdatedAt.UTC(),
	}
	if participant.AdvancedFrom != nil {
		from := string(*participant.AdvancedFrom)
		row.AdvancedFrom = &from
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	if row.SubmissionDate.IsZero() {
		row.SubmissionDate = row.CreatedAt
	}
	return row, nil
}

func (m participantModel) toEntity() (entities.DrawingParticipant, error) {
	var records []winnerRecord
	if len(m.Winners) > 0 {
		if err := json.Unmarshal(m.Winners, &records); err != nil {
			return entities.DrawingParticipant{}, err
		}
	}
	winners := make([]entities.Winner, 0, len(records))
	for _, record := range records {
		winners = append(winners, entities.Winner(record))
	}
	participant := entities.DrawingParticipant{
		ParticipantID:     m.ID,
		SchoolID:          m.SchoolID,
		Category:          entities.Category(m.Category),
		Level:             entities.Level(m.Level),
		ParticipantCount:  m.ParticipantCount,
		Winners:           winners,
		SubmissionDate:    m.SubmissionDate.UTC(),
		IsCompleted:       m.IsCompleted,
		FromPreviousLevel: m.FromPreviousLevel,
		CreatedAt:         m.CreatedAt.UTC(),
		UpdatedAt:         m.UpdatedAt.UTC(),
	}
	if m.AdvancedFrom != nil {
		from := entities.Level(strings.TrimSpace(*m.AdvancedFrom))
		participant.AdvancedFrom = &from
	}
	return participant, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.ParticipantRepository = (*Repository)(nil)
var _ ports.NominationCounter = (*Repository)(nil)
