package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ignite/contexts/competition/nomination-service/domain/entities"
	domainerrors "ignite/contexts/competition/nomination-service/domain/errors"
	"ignite/contexts/competition/nomination-service/ports"

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

func (r *Repository) SaveNomination(ctx context.Context, nomination entities.TeacherNomination) error {
	row, err := nominationModelFromEntity(nomination)
	if err != nil {
		return r.logError("nomination_repo_encode_failed", err,
			"nomination_id", strings.TrimSpace(nomination.NominationID),
		)
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"teacher_name":         row.TeacherName,
			"category":             row.Category,
			"award_type":           row.AwardType,
			"email":                row.Email,
			"phone":                row.Phone,
			"experience_years":     row.ExperienceYears,
			"current_position":     row.CurrentPosition,
			"qualifications":       row.Qualifications,
			"subjects_taught":      row.SubjectsTaught,
			"achievements":         row.Achievements,
			"nomination_letter":    row.NominationLetter,
			"supporting_documents": row.SupportingDocuments,
			"evaluator_scores":     row.EvaluatorScores,
			"status":               row.Status,
			"final_score":          row.FinalScore,
			"fee_paid":             row.FeePaid,
			"payment_reference":    row.PaymentReference,
			"updated_at":           row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		return r.logError("nomination_repo_save_failed", create.Error,
			"nomination_id", row.ID,
			"school_id", row.SchoolID,
		)
	}
	return nil
}

func (r *Repository) GetNomination(ctx context.Context, nominationID string) (entities.TeacherNomination, error) {
	var row nominationModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(nominationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.TeacherNomination{}, domainerrors.ErrNominationNotFound
		}
		return entities.TeacherNomination{}, r.logError("nomination_repo_get_failed", err,
			"nomination_id", strings.TrimSpace(nominationID),
		)
	}
	return r.decode(row)
}

func (r *Repository) ListNominationsBySchool(ctx context.Context, schoolID string) ([]entities.TeacherNomination, error) {
	var rows []nominationModel
	if err := r.db.WithContext(ctx).
		Where("school_id = ?", strings.TrimSpace(schoolID)).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("nomination_repo_list_by_school_failed", err,
			"school_id", strings.TrimSpace(schoolID),
		)
	}
	return r.decodeAll(rows)
}

func (r *Repository) ListNominations(ctx context.Context) ([]entities.TeacherNomination, error) {
	var rows []nominationModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("nomination_repo_list_failed", err)
	}
	return r.decodeAll(rows)
}

func (r *Repository) decodeAll(rows []nominationModel) ([]entities.TeacherNomination, error) {
	items := make([]entities.TeacherNomination, 0, len(rows))
	for _, row := range rows {
		nomination, err := r.decode(row)
		if err != nil {
			return nil, err
		}
		items = append(items, nomination)
	}
	return items, nil
}

func (r *Repository) decode(row nominationModel) (entities.TeacherNomination, error) {
	nomination, err := row.toEntity()
	if err != nil {
		return entities.TeacherNomination{}, r.logError("nomination_repo_decode_failed", err,
			"nomination_id", row.ID,
		)
	}
	return nomination, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "competition/nomination-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("nomination repository operation failed", fields...)
	return err
}

type nominationModel struct {
	ID                  string    `gorm:"column:id;primaryKey"`
	SchoolID            string    `gorm:"column:school_id;index"`
	TeacherName         string    `gorm:"column:teacher_name"`
	Category            string    `gorm:"column:category"`
	AwardType           string    `gorm:"column:award_type"`
	Email               string    `gorm:"column:email"`
	Phone               string    `gorm:"column:phone"`
	ExperienceYears     int       `gorm:"column:experience_years"`
	CurrentPosition     string    `gorm:"column:current_position"`
	Qualifications      string    `gorm:"column:qualifications"`
	SubjectsTaught      []byte    `gorm:"column:subjects_taught;type:jsonb"`
	Achievements        string    `gorm:"column:achievements"`
	NominationLetter    string    `gorm:"column:nomination_letter"`
	SupportingDocuments []byte    `gorm:"column:supporting_documents;type:jsonb"`
	PublicVotes         int       `gorm:"column:public_votes"`
	EvaluatorScores     []byte    `gorm:"column:evaluator_scores;type:jsonb"`
	Status              string    `gorm:"column:status"`
	FinalScore          *float64  `gorm:"column:final_score"`
	FeePaid             bool      `gorm:"column:fee_paid"`
	PaymentReference    string    `gorm:"column:payment_reference"`
	CreatedAt           time.Time `gorm:"column:created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at"`
}

func (nominationModel) TableName() string {
	return "teacher_nominations"
}

func nominationModelFromEntity(nomination entities.TeacherNomination) (nominationModel, error) {
	subjects, err := json.Marshal(nomination.SubjectsTaught)
	if err != nil {
		return nominationModel{}, err
	}
	documents, err := json.Marshal(nomination.SupportingDocuments)
	if err != nil {
		return nominationModel{}, err
	}
	scores := nomination.EvaluatorScores
	if scores == nil {
		scores = map[string]int{}
	}
	scoresPayload, err := json.Marshal(scores)
	if err != nil {
		return nominationModel{}, err
	}
	row := nominationModel{
		ID:                  strings.TrimSpace(nomination.NominationID),
		SchoolID:            strings.TrimSpace(nomination.SchoolID),
		TeacherName:         strings.TrimSpace(nomination.TeacherName),
		Category:            string(nomination.Category),
		AwardType:           strings.TrimSpace(nomination.AwardType),
		Email:               strings.TrimSpace(nomination.Email),
		Phone:               strings.TrimSpace(nomination.Phone),
		ExperienceYears:     nomination.ExperienceYears,
		CurrentPosition:     strings.TrimSpace(nomination.CurrentPosition),
		Qualifications:      strings.TrimSpace(nomination.Qualifications),
		SubjectsTaught:      subjects,
		Achievements:        strings.TrimSpace(nomination.Achievements),
		NominationLetter:    strings.TrimSpace(nomination.NominationLetter),
		SupportingDocuments: documents,
		PublicVotes:         nomination.PublicVotes,
		EvaluatorScores:     scoresPayload,
		Status:              string(nomination.Status),
		FinalScore:          nomination.FinalScore,
		FeePaid:             nomination.FeePaid,
		PaymentReference:    strings.TrimSpace(nomination.PaymentReference),
		CreatedAt:           nomination.CreatedAt.UTC(),
		UpdatedAt:           nomination.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row, nil
}

func (m nominationModel) toEntity() (entities.TeacherNomination, error) {
	var subjects []string
	if len(m.SubjectsTaught) > 0 {
		if err := json.Unmarshal(m.SubjectsTaught, &subjects); err != nil {
			return entities.TeacherNomination{}, err
		}
	}
	var documents []string
	if len(m.SupportingDocuments) > 0 {
		if err := json.Unmarshal(m.SupportingDocuments, &documents); err != nil {
			return entities.TeacherNomination{}, err
		}
	}
	scores := map[string]int{}
	if len(m.EvaluatorScores) > 0 {
		if err := json.Unmarshal(m.EvaluatorScores, &scores); err != nil {
			return entities.TeacherNomination{}, err
		}
	}
	return entities.TeacherNomination{
		NominationID:        m.ID,
		SchoolID:            m.SchoolID,
		TeacherName:         m.TeacherName,
		Category:            entities.AwardCategory(m.Category),
		AwardType:           m.AwardType,
		Email:               m.Email,
		Phone:               m.Phone,
		ExperienceYears:     m.ExperienceYears,
		CurrentPosition:     m.CurrentPosition,
		Qualifications:      m.Qualifications,
		SubjectsTaught:      subjects,
		Achievements:        m.Achievements,
		NominationLetter:    m.NominationLetter,
		SupportingDocuments: documents,
		PublicVotes:         m.PublicVotes,
		EvaluatorScores:     scores,
		Status:              entities.NominationStatus(m.Status),
		FinalScore:          m.FinalScore,
		FeePaid:             m.FeePaid,
		PaymentReference:    m.PaymentReference,
		CreatedAt:           m.CreatedAt.UTC(),
		UpdatedAt:           m.UpdatedAt.UTC(),
	}, nil
}

var _ ports.NominationRepository = (*Repository)(nil)
