package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"

	"ignite/contexts/internal-ops/admin-dashboard-service/ports"

	"gorm.io/gorm"
)

// Repository reads the tables owned by the competition and identity modules.
// It never writes.
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

func (r *Repository) CountSchools(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("schools").Count(&count).Error; err != nil {
		return 0, r.logError("admin_dashboard_count_schools_failed", err)
	}
	return int(count), nil
}

func (r *Repository) CountActiveEvaluators(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("evaluator_users").
		Where("is_active = ?", true).
		Count(&count).
		Error
	if err != nil {
		return 0, r.logError("admin_dashboard_count_evaluators_failed", err)
	}
	return int(count), nil
}

func (r *Repository) CountVotes(ctx context.Context) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).Table("votes").Count(&count).Error; err != nil {
		return 0, r.logError("admin_dashboard_count_votes_failed", err)
	}
	return int(count), nil
}

func (r *Repository) ListParticipants(ctx context.Context) ([]ports.ParticipantRecord, error) {
	var rows []participantRow
	err := r.db.WithContext(ctx).
		Table("drawing_participants").
		Select("id", "school_id", "category", "level", "participant_count", "winners", "is_completed").
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("admin_dashboard_list_participants_failed", err)
	}
	items := make([]ports.ParticipantRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.ParticipantRecord{
			ParticipantID:    row.ID,
			SchoolID:         row.SchoolID,
			Category:         row.Category,
			Level:            row.Level,
			ParticipantCount: row.ParticipantCount,
			WinnersDeclared:  countWinners(row.Winners),
			IsCompleted:      row.IsCompleted,
		})
	}
	return items, nil
}

func (r *Repository) ListNominations(ctx context.Context) ([]ports.NominationRecord, error) {
	var rows []nominationRow
	err := r.db.WithContext(ctx).
		Table("teacher_nominations").
		Select("id", "school_id", "teacher_name", "category", "award_type", "public_votes", "status", "final_score").
		Order("created_at ASC").
		Find(&rows).
		Error
	if err != nil {
		return nil, r.logError("admin_dashboard_list_nominations_failed", err)
	}
	items := make([]ports.NominationRecord, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.NominationRecord{
			NominationID: row.ID,
			SchoolID:     row.SchoolID,
			TeacherName:  row.TeacherName,
			Category:     row.Category,
			AwardType:    row.AwardType,
			PublicVotes:  row.PublicVotes,
			Status:       row.Status,
			FinalScore:   row.FinalScore,
		})
	}
	return items, nil
}

func (r *Repository) GetSchoolInfo(ctx context.Context, schoolID string) (ports.SchoolInfo, bool, error) {
	var row schoolRow
	err := r.db.WithContext(ctx).
		Table("schools").
		Select("id", "school_name", "district", "taluk").
		Where("id = ?", strings.TrimSpace(schoolID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.SchoolInfo{}, false, nil
		}
		return ports.SchoolInfo{}, false, r.logError("admin_dashboard_get_school_failed", err,
			"school_id", strings.TrimSpace(schoolID),
		)
	}
	return ports.SchoolInfo{
		SchoolID:   row.ID,
		SchoolName: row.SchoolName,
		District:   row.District,
		Taluk:      row.Taluk,
	}, true, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "internal-ops/admin-dashboard-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("admin dashboard query failed", fields...)
	return err
}

type participantRow struct {
	ID               string `gorm:"column:id"`
	SchoolID         string `gorm:"column:school_id"`
	Category         string `gorm:"column:category"`
	Level            string `gorm:"column:level"`
	ParticipantCount int    `gorm:"column:participant_count"`
	Winners          []byte `gorm:"column:winners"`
	IsCompleted      bool   `gorm:"column:is_completed"`
}

type nominationRow struct {
	ID          string   `gorm:"column:id"`
	SchoolID    string   `gorm:"column:school_id"`
	TeacherName string   `gorm:"column:teacher_name"`
	Category    string   `gorm:"column:category"`
	AwardType   string   `gorm:"column:award_type"`
	PublicVotes int      `gorm:"column:public_votes"`
	Status      string   `gorm:"column:status"`
	FinalScore  *float64 `gorm:"column:final_score"`
}

type schoolRow struct {
	ID         string `gorm:"column:id"`
	SchoolName string `gorm:"column:school_name"`
	District   string `gorm:"column:district"`
	Taluk      string `gorm:"column:taluk"`
}

// countWinners counts the entries in the winners JSON array without decoding
// the full records.
func countWinners(payload []byte) int {
	if len(payload) == 0 {
		return 0
	}
	var entries []map[string]any
	if err := json.Unmarshal(payload, &entries); err != nil {
		return 0
	}
	return len(entries)
}

var _ ports.Directory = (*Repository)(nil)
