package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ignite/contexts/identity-access/account-service/domain/entities"
	domainerrors "ignite/contexts/identity-access/account-service/domain/errors"
	"ignite/contexts/identity-access/account-service/ports"

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

func (r *Repository) SaveSchool(ctx context.Context, account entities.SchoolAccount) error {
	row := schoolModelFromEntity(account)
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"school_name":            row.SchoolName,
			"authorized_person_name": row.AuthorizedPersonName,
			"phone":                  row.Phone,
			"address":                row.Address,
			"district":               row.District,
			"taluk":                  row.Taluk,
			"udise_code":             row.UDISECode,
			"principal_name":         row.PrincipalName,
			"is_active":              row.IsActive,
			"email_verified":         row.EmailVerified,
			"updated_at":             row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return domainerrors.ErrEmailTaken
		}
		return r.logError("account_repo_save_school_failed", create.Error, "account_id", row.ID)
	}
	return nil
}

func (r *Repository) GetSchoolByEmail(ctx context.Context, email string) (entities.SchoolAccount, bool, error) {
	var row schoolModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.SchoolAccount{}, false, nil
		}
		return entities.SchoolAccount{}, false, r.logError("account_repo_get_school_by_email_failed", err)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) GetSchool(ctx context.Context, accountID string) (entities.SchoolAccount, error) {
	var row schoolModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(accountID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.SchoolAccount{}, domainerrors.ErrAccountNotFound
		}
		return entities.SchoolAccount{}, r.logError("account_repo_get_school_failed", err,
			"account_id", strings.TrimSpace(accountID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) SaveAdmin(ctx context.Context, account entities.AdminAccount) error {
	row, err := adminModelFromEntity(account)
	if err != nil {
		return r.logError("account_repo_encode_admin_failed", err, "account_id", account.AccountID)
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":        row.Name,
			"permissions": row.Permissions,
			"is_active":   row.IsActive,
			"updated_at":  row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return domainerrors.ErrEmailTaken
		}
		return r.logError("account_repo_save_admin_failed", create.Error, "account_id", row.ID)
	}
	return nil
}

func (r *Repository) GetAdminByEmail(ctx context.Context, email string) (entities.AdminAccount, bool, error) {
	var row adminModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AdminAccount{}, false, nil
		}
		return entities.AdminAccount{}, false, r.logError("account_repo_get_admin_by_email_failed", err)
	}
	account, err := row.toEntity()
	if err != nil {
		return entities.AdminAccount{}, false, r.logError("account_repo_decode_admin_failed", err, "account_id", row.ID)
	}
	return account, true, nil
}

func (r *Repository) GetAdmin(ctx context.Context, accountID string) (entities.AdminAccount, error) {
	var row adminModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(accountID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.AdminAccount{}, domainerrors.ErrAccountNotFound
		}
		return entities.AdminAccount{}, r.logError("account_repo_get_admin_failed", err,
			"account_id", strings.TrimSpace(accountID),
		)
	}
	account, err := row.toEntity()
	if err != nil {
		return entities.AdminAccount{}, r.logError("account_repo_decode_admin_failed", err, "account_id", row.ID)
	}
	return account, nil
}

func (r *Repository) SaveEvaluator(ctx context.Context, account entities.EvaluatorAccount) error {
	row, err := evaluatorModelFromEntity(account)
	if err != nil {
		return r.logError("account_repo_encode_evaluator_failed", err, "account_id", account.AccountID)
	}
	create := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"name":                row.Name,
			"expertise":           row.Expertise,
			"assigned_categories": row.AssignedCategories,
			"assigned_levels":     row.AssignedLevels,
			"is_active":           row.IsActive,
			"updated_at":          row.UpdatedAt,
		}),
	}).Create(&row)
	if create.Error != nil {
		if isUniqueViolation(create.Error) {
			return domainerrors.ErrEmailTaken
		}
		return r.logError("account_repo_save_evaluator_failed", create.Error, "account_id", row.ID)
	}
	return nil
}

func (r *Repository) GetEvaluatorByEmail(ctx context.Context, email string) (entities.EvaluatorAccount, bool, error) {
	var row evaluatorModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.EvaluatorAccount{}, false, nil
		}
		return entities.EvaluatorAccount{}, false, r.logError("account_repo_get_evaluator_by_email_failed", err)
	}
	account, err := row.toEntity()
	if err != nil {
		return entities.EvaluatorAccount{}, false, r.logError("account_repo_decode_evaluator_failed", err, "account_id", row.ID)
	}
	return account, true, nil
}

func (r *Repository) GetEvaluator(ctx context.Context, accountID string) (entities.EvaluatorAccount, error) {
	var row evaluatorModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(accountID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.EvaluatorAccount{}, domainerrors.ErrAccountNotFound
		}
		return entities.EvaluatorAccount{}, r.logError("account_repo_get_evaluator_failed", err,
			"account_id", strings.TrimSpace(accountID),
		)
	}
	account, err := row.toEntity()
	if err != nil {
		return entities.EvaluatorAccount{}, r.logError("account_repo_decode_evaluator_failed", err, "account_id", row.ID)
	}
	return account, nil
}

func (r *Repository) ListEvaluators(ctx context.Context) ([]entities.EvaluatorAccount, error) {
	var rows []evaluatorModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("account_repo_list_evaluators_failed", err)
	}
	items := make([]entities.EvaluatorAccount, 0, len(rows))
	for _, row := range rows {
		account, err := row.toEntity()
		if err != nil {
			return nil, r.logError("account_repo_decode_evaluator_failed", err, "account_id", row.ID)
		}
		items = append(items, account)
	}
	return items, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "identity-access/account-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("account repository operation failed", fields...)
	return err
}

type schoolModel struct {
	ID                   string    `gorm:"column:id;primaryKey"`
	SchoolName           string    `gorm:"column:school_name"`
	AuthorizedPersonName string    `gorm:"column:authorized_person_name"`
	Email                string    `gorm:"column:email;uniqueIndex"`
	PasswordHash         string    `gorm:"column:password_hash"`
	Phone                string    `gorm:"column:phone"`
	Address              string    `gorm:"column:address"`
	District             string    `gorm:"column:district"`
	Taluk                string    `gorm:"column:taluk"`
	UDISECode            string    `gorm:"column:udise_code"`
	PrincipalName        string    `gorm:"column:principal_name"`
	IsActive             bool      `gorm:"column:is_active"`
	EmailVerified        bool      `gorm:"column:email_verified"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (schoolModel) TableName() string {
	return "schools"
}

func schoolModelFromEntity(account entities.SchoolAccount) schoolModel {
	row := schoolModel{
		ID:                   strings.TrimSpace(account.AccountID),
		SchoolName:           account.SchoolName,
		AuthorizedPersonName: account.AuthorizedPersonName,
		Email:                strings.ToLower(strings.TrimSpace(account.Email)),
		PasswordHash:         account.PasswordHash,
		Phone:                account.Phone,
		Address:              account.Address,
		District:             account.District,
		Taluk:                account.Taluk,
		UDISECode:            account.UDISECode,
		PrincipalName:        account.PrincipalName,
		IsActive:             account.IsActive,
		EmailVerified:        account.EmailVerified,
		CreatedAt:            account.CreatedAt.UTC(),
		UpdatedAt:            account.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m schoolModel) toEntity() entities.SchoolAccount {
	return entities.SchoolAccount{
		AccountID:            m.ID,
		SchoolName:           m.SchoolName,
		AuthorizedPersonName: m.AuthorizedPersonName,
		Email:                m.Email,
		PasswordHash:         m.PasswordHash,
		Phone:                m.Phone,
		Address:              m.Address,
		District:             m.District,
		Taluk:                m.Taluk,
		UDISECode:            m.UDISECode,
		PrincipalName:        m.PrincipalName,
		IsActive:             m.IsActive,
		EmailVerified:        m.EmailVerified,
		CreatedAt:            m.CreatedAt.UTC(),
		UpdatedAt:            m.UpdatedAt.UTC(),
	}
}

type adminModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Permissions  []byte    `gorm:"column:permissions;type:jsonb"`
	IsActive     bool      `gorm:"column:is_active"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (adminModel) TableName() string {
	return "admin_users"
}

func adminModelFromEntity(account entities.AdminAccount) (adminModel, error) {
	permissions, err := json.Marshal(account.Permissions)
	if err != nil {
		return adminModel{}, err
	}
	row := adminModel{
		ID:           strings.TrimSpace(account.AccountID),
		Name:         account.Name,
		Email:        strings.ToLower(strings.TrimSpace(account.Email)),
		PasswordHash: account.PasswordHash,
		Permissions:  permissions,
		IsActive:     account.IsActive,
		CreatedAt:    account.CreatedAt.UTC(),
		UpdatedAt:    account.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row, nil
}

func (m adminModel) toEntity() (entities.AdminAccount, error) {
	var permissions []string
	if len(m.Permissions) > 0 {
		if err := json.Unmarshal(m.Permissions, &permissions); err != nil {
			return entities.AdminAccount{}, err
		}
	}
	return entities.AdminAccount{
		AccountID:    m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Permissions:  permissions,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt.UTC(),
		UpdatedAt:    m.UpdatedAt.UTC(),
	}, nil
}

type evaluatorModel struct {
	ID                 string    `gorm:"column:id;primaryKey"`
	Name               string    `gorm:"column:name"`
	Email              string    `gorm:"column:email;uniqueIndex"`
	PasswordHash       string    `gorm:"column:password_hash"`
	Expertise          string    `gorm:"column:expertise"`
	AssignedCategories []byte    `gorm:"column:assigned_categories;type:jsonb"`
	AssignedLevels     []byte    `gorm:"column:assigned_levels;type:jsonb"`
	CreatedBy          string    `gorm:"column:created_by"`
	IsActive           bool      `gorm:"column:is_active"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (evaluatorModel) TableName() string {
	return "evaluator_users"
}

func evaluatorModelFromEntity(account entities.EvaluatorAccount) (evaluatorModel, error) {
	categories, err := json.Marshal(account.AssignedCategories)
	if err != nil {
		return evaluatorModel{}, err
	}
	levels, err := json.Marshal(account.AssignedLevels)
	if err != nil {
		return evaluatorModel{}, err
	}
	row := evaluatorModel{
		ID:                 strings.TrimSpace(account.AccountID),
		Name:               account.Name,
		Email:              strings.ToLower(strings.TrimSpace(account.Email)),
		PasswordHash:       account.PasswordHash,
		Expertise:          account.Expertise,
		AssignedCategories: categories,
		AssignedLevels:     levels,
		CreatedBy:          account.CreatedBy,
		IsActive:           account.IsActive,
		CreatedAt:          account.CreatedAt.UTC(),
		UpdatedAt:          account.UpdatedAt.UTC(),
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row, nil
}

func (m evaluatorModel) toEntity() (entities.EvaluatorAccount, error) {
	var categories []string
	if len(m.AssignedCategories) > 0 {
		if err := json.Unmarshal(m.AssignedCategories, &categories); err != nil {
			return entities.EvaluatorAccount{}, err
		}
	}
	var levels []string
	if len(m.AssignedLevels) > 0 {
		if err := json.Unmarshal(m.AssignedLevels, &levels); err != nil {
			return entities.EvaluatorAccount{}, err
		}
	}
	return entities.EvaluatorAccount{
		AccountID:          m.ID,
		Name:               m.Name,
		Email:              m.Email,
		PasswordHash:       m.PasswordHash,
		Expertise:          m.Expertise,
		AssignedCategories: categories,
		AssignedLevels:     levels,
		CreatedBy:          m.CreatedBy,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt.UTC(),
		UpdatedAt:          m.UpdatedAt.UTC(),
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var _ ports.AccountRepository = (*Repository)(nil)
