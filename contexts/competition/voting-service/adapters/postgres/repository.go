package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ignite/contexts/competition/voting-service/domain/entities"
	domainerrors "ignite/contexts/competition/voting-service/domain/errors"
	"ignite/contexts/competition/voting-service/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	outboxStatusPending   = "pending"
	outboxStatusPublished = "published"
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

func (r *Repository) IssueTokens(ctx context.Context, tokens []entities.VotingToken) error {
	if len(tokens) == 0 {
		return nil
	}
	rows := make([]votingTokenModel, 0, len(tokens))
	for _, token := range tokens {
		rows = append(rows, tokenModelFromEntity(token))
	}
	if err := r.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrCodeCollision
		}
		return r.logError("voting_repo_issue_tokens_failed", err, "token_count", len(tokens))
	}
	return nil
}

func (r *Repository) GetTokenByCode(ctx context.Context, code string) (entities.VotingToken, error) {
	var row votingTokenModel
	err := r.db.WithContext(ctx).
		Where("code = ?", entities.NormalizeCode(code)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.VotingToken{}, domainerrors.ErrTokenInvalid
		}
		return entities.VotingToken{}, r.logError("voting_repo_get_token_by_code_failed", err)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListTokens(ctx context.Context) ([]entities.VotingToken, error) {
	var rows []votingTokenModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("voting_repo_list_tokens_failed", err)
	}
	items := make([]entities.VotingToken, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// ClaimAndRecord performs the conditional token claim, the ledger append, and
// the tally increment inside one transaction. The conditional UPDATE on
// is_used is the authoritative at-most-one-vote guard: a concurrent claim on
// the same token observes RowsAffected == 0 and the whole transaction rolls
// back with no partial state.
func (r *Repository) ClaimAndRecord(ctx context.Context, claim ports.TokenClaim, vote entities.Vote) (int, error) {
	tally := 0
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		votedAt := claim.VotedAt.UTC()
		nominationID := strings.TrimSpace(claim.NominationID)

		update := tx.Model(&votingTokenModel{}).
			Where("id = ? AND is_used = ?", strings.TrimSpace(claim.TokenID), false).
			Updates(map[string]any{
				"is_used":       true,
				"nomination_id": nominationID,
				"voted_at":      votedAt,
				"ip_address":    strings.TrimSpace(claim.IPAddress),
				"updated_at":    votedAt,
			})
		if update.Error != nil {
			return update.Error
		}
		if update.RowsAffected == 0 {
			var existing votingTokenModel
			if err := tx.Where("id = ?", strings.TrimSpace(claim.TokenID)).First(&existing).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return domainerrors.ErrTokenInvalid
				}
				return err
			}
			return domainerrors.ErrTokenAlreadyUsed
		}

		row := voteModelFromEntity(vote)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrTokenAlreadyUsed
			}
			return err
		}

		bump := tx.Model(&nominationProjectionModel{}).
			Where("id = ?", nominationID).
			UpdateColumn("public_votes", gorm.Expr("public_votes + ?", 1))
		if bump.Error != nil {
			return bump.Error
		}
		if bump.RowsAffected == 0 {
			return domainerrors.ErrNominationNotFound
		}

		var nomination nominationProjectionModel
		if err := tx.Select("public_votes").
			Where("id = ?", nominationID).
			First(&nomination).Error; err != nil {
			return err
		}
		tally = nomination.PublicVotes
		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTokenInvalid) ||
			errors.Is(err, domainerrors.ErrTokenAlreadyUsed) ||
			errors.Is(err, domainerrors.ErrNominationNotFound) {
			return 0, err
		}
		return 0, r.logError("voting_repo_claim_and_record_failed", err,
			"token_id", strings.TrimSpace(claim.TokenID),
			"nomination_id", strings.TrimSpace(claim.NominationID),
		)
	}
	return tally, nil
}

func (r *Repository) GetVoteByToken(ctx context.Context, tokenID string) (entities.Vote, bool, error) {
	var row voteModel
	err := r.db.WithContext(ctx).
		Where("token_id = ?", strings.TrimSpace(tokenID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Vote{}, false, nil
		}
		return entities.Vote{}, false, r.logError("voting_repo_get_vote_by_token_failed", err,
			"token_id", strings.TrimSpace(tokenID),
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CountVotesByNomination(ctx context.Context, nominationID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&voteModel{}).
		Where("nomination_id = ?", strings.TrimSpace(nominationID)).
		Count(&count).
		Error
	if err != nil {
		return 0, r.logError("voting_repo_count_votes_failed", err,
			"nomination_id", strings.TrimSpace(nominationID),
		)
	}
	return int(count), nil
}

func (r *Repository) ListVotes(ctx context.Context) ([]entities.Vote, error) {
	var rows []voteModel
	if err := r.db.WithContext(ctx).
		Order("voted_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("voting_repo_list_votes_failed", err)
	}
	items := make([]entities.Vote, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetNomination(ctx context.Context, nominationID string) (ports.NominationSummary, error) {
	var row nominationProjectionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(nominationID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.NominationSummary{}, domainerrors.ErrNominationNotFound
		}
		return ports.NominationSummary{}, r.logError("voting_repo_get_nomination_failed", err,
			"nomination_id", strings.TrimSpace(nominationID),
		)
	}
	return r.enrichNomination(ctx, row), nil
}

func (r *Repository) ListOpenNominations(ctx context.Context) ([]ports.NominationSummary, error) {
	var rows []nominationProjectionModel
	if err := r.db.WithContext(ctx).
		Where("status IN ?", []string{"nominated", "shortlisted"}).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("voting_repo_list_open_nominations_failed", err)
	}
	items := make([]ports.NominationSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, r.enrichNomination(ctx, row))
	}
	return items, nil
}

func (r *Repository) SetPublicVotes(ctx context.Context, nominationID string, publicVotes int) error {
	result := r.db.WithContext(ctx).
		Model(&nominationProjectionModel{}).
		Where("id = ?", strings.TrimSpace(nominationID)).
		UpdateColumn("public_votes", publicVotes)
	if result.Error != nil {
		return r.logError("voting_repo_set_public_votes_failed", result.Error,
			"nomination_id", strings.TrimSpace(nominationID),
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNominationNotFound
	}
	return nil
}

func (r *Repository) enrichNomination(ctx context.Context, row nominationProjectionModel) ports.NominationSummary {
	item := row.toSummary()
	var school schoolProjectionModel
	err := r.db.WithContext(ctx).
		Select("school_name", "district").
		Where("id = ?", row.SchoolID).
		First(&school).
		Error
	if err == nil {
		item.SchoolName = school.SchoolName
		item.District = school.District
	}
	return item
}

func (r *Repository) AppendOutbox(ctx context.Context, envelope ports.EventEnvelope) error {
	payload, err := json.Marshal(envelope)
	if err != nil {
		return r.logError("voting_repo_append_outbox_marshal_failed", err,
			"event_id", strings.TrimSpace(envelope.EventID),
			"event_type", strings.TrimSpace(envelope.EventType),
		)
	}
	row := outboxModel{
		OutboxID:     strings.TrimSpace(envelope.EventID),
		EventType:    strings.TrimSpace(envelope.EventType),
		PartitionKey: strings.TrimSpace(envelope.PartitionKey),
		Payload:      payload,
		Status:       outboxStatusPending,
		CreatedAt:    envelope.OccurredAt.UTC(),
	}
	if row.OutboxID == "" {
		row.OutboxID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "outbox_id"}},
		DoNothing: true,
	}).Create(&row)
	if create.Error != nil {
		return r.logError("voting_repo_append_outbox_insert_failed", create.Error,
			"outbox_id", row.OutboxID,
		)
	}
	return nil
}

func (r *Repository) ListPendingOutbox(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []outboxModel
	if err := r.db.WithContext(ctx).
		Where("status = ?", outboxStatusPending).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, r.logError("voting_repo_list_pending_outbox_failed", err, "limit", limit)
	}
	items := make([]ports.OutboxMessage, 0, len(rows))
	for _, row := range rows {
		items = append(items, ports.OutboxMessage{
			OutboxID:     row.OutboxID,
			EventType:    row.EventType,
			PartitionKey: row.PartitionKey,
			Payload:      append([]byte(nil), row.Payload...),
			CreatedAt:    row.CreatedAt.UTC(),
		})
	}
	return items, nil
}

func (r *Repository) MarkOutboxPublished(ctx context.Context, outboxID string, publishedAt time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&outboxModel{}).
		Where("outbox_id = ?", strings.TrimSpace(outboxID)).
		Updates(map[string]any{
			"status":       outboxStatusPublished,
			"published_at": publishedAt.UTC(),
		})
	if result.Error != nil {
		return r.logError("voting_repo_mark_outbox_published_failed", result.Error,
			"outbox_id", strings.TrimSpace(outboxID),
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrConflict
	}
	return nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "competition/voting-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("voting repository operation failed", fields...)
	return err
}

type votingTokenModel struct {
	ID           string     `gorm:"column:id;primaryKey"`
	Code         string     `gorm:"column:code;uniqueIndex"`
	IsUsed       bool       `gorm:"column:is_used"`
	NominationID *string    `gorm:"column:nomination_id"`
	VotedAt      *time.Time `gorm:"column:voted_at"`
	IPAddress    string     `gorm:"column:ip_address"`
	ExpiresAt    time.Time  `gorm:"column:expires_at"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at"`
}

func (votingTokenModel) TableName() string {
	return "voting_tokens"
}

func tokenModelFromEntity(token entities.VotingToken) votingTokenModel {
	row := votingTokenModel{
		ID:        strings.TrimSpace(token.TokenID),
		Code:      entities.NormalizeCode(token.Code),
		IsUsed:    token.IsUsed,
		IPAddress: strings.TrimSpace(token.IPAddress),
		ExpiresAt: token.ExpiresAt.UTC(),
		CreatedAt: token.CreatedAt.UTC(),
		UpdatedAt: token.UpdatedAt.UTC(),
	}
	if token.NominationID != nil && strings.TrimSpace(*token.NominationID) != "" {
		nominationID := strings.TrimSpace(*token.NominationID)
		row.NominationID = &nominationID
	}
	if token.VotedAt != nil {
		votedAt := token.VotedAt.UTC()
		row.VotedAt = &votedAt
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m votingTokenModel) toEntity() entities.VotingToken {
	token := entities.VotingToken{
		TokenID:   m.ID,
		Code:      m.Code,
		IsUsed:    m.IsUsed,
		IPAddress: m.IPAddress,
		ExpiresAt: m.ExpiresAt.UTC(),
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
	if m.NominationID != nil {
		nominationID := strings.TrimSpace(*m.NominationID)
		token.NominationID = &nominationID
	}
	if m.VotedAt != nil {
		votedAt := m.VotedAt.UTC()
		token.VotedAt = &votedAt
	}
	return token
}

type voteModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	TokenID      string    `gorm:"column:token_id;uniqueIndex"`
	NominationID string    `gorm:"column:nomination_id"`
	IPAddress    string    `gorm:"column:ip_address"`
	UserAgent    string    `gorm:"column:user_agent"`
	VotedAt      time.Time `gorm:"column:voted_at"`
}

func (voteModel) TableName() string {
	return "votes"
}

func voteModelFromEntity(vote entities.Vote) voteModel {
	row := voteModel{
		ID:           strings.TrimSpace(vote.VoteID),
		TokenID:      strings.TrimSpace(vote.TokenID),
		NominationID: strings.TrimSpace(vote.NominationID),
		IPAddress:    strings.TrimSpace(vote.IPAddress),
		UserAgent:    strings.TrimSpace(vote.UserAgent),
		VotedAt:      vote.VotedAt.UTC(),
	}
	if row.VotedAt.IsZero() {
		row.VotedAt = time.Now().UTC()
	}
	return row
}

func (m voteModel) toEntity() entities.Vote {
	return entities.Vote{
		VoteID:       m.ID,
		TokenID:      m.TokenID,
		NominationID: m.NominationID,
		IPAddress:    m.IPAddress,
		UserAgent:    m.UserAgent,
		VotedAt:      m.VotedAt.UTC(),
	}
}

type nominationProjectionModel struct {
	ID              string `gorm:"column:id;primaryKey"`
	SchoolID        string `gorm:"column:school_id"`
	TeacherName     string `gorm:"column:teacher_name"`
	Category        string `gorm:"column:category"`
	AwardType       string `gorm:"column:award_type"`
	ExperienceYears int    `gorm:"column:experience_years"`
	CurrentPosition string `gorm:"column:current_position"`
	Achievements    string `gorm:"column:achievements"`
	PublicVotes     int    `gorm:"column:public_votes"`
	Status          string `gorm:"column:status"`
}

func (nominationProjectionModel) TableName() string {
	return "teacher_nominations"
}

func (m nominationProjectionModel) toSummary() ports.NominationSummary {
	return ports.NominationSummary{
		NominationID:    m.ID,
		SchoolID:        m.SchoolID,
		TeacherName:     m.TeacherName,
		Category:        m.Category,
		AwardType:       m.AwardType,
		ExperienceYears: m.ExperienceYears,
		CurrentPosition: m.CurrentPosition,
		Achievements:    m.Achievements,
		PublicVotes:     m.PublicVotes,
		Status:          m.Status,
	}
}

type schoolProjectionModel struct {
	ID         string `gorm:"column:id;primaryKey"`
	SchoolName string `gorm:"column:school_name"`
	District   string `gorm:"column:district"`
}

func (schoolProjectionModel) TableName() string {
	return "schools"
}

type outboxModel struct {
	OutboxID     string     `gorm:"column:outbox_id;primaryKey"`
	EventType    string     `gorm:"column:event_type"`
	PartitionKey string     `gorm:"column:partition_key"`
	Payload      []byte     `gorm:"column:payload"`
	Status       string     `gorm:"column:status"`
	CreatedAt    time.Time  `gorm:"column:created_at"`
	PublishedAt  *time.Time `gorm:"column:published_at"`
}

func (outboxModel) TableName() string {
	return "voting_outbox"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.TokenStore = (*Repository)(nil)
var _ ports.VoteLedger = (*Repository)(nil)
var _ ports.NominationDirectory = (*Repository)(nil)
var _ ports.OutboxRepository = (*Repository)(nil)
