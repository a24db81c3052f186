package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"ignite/contexts/identity-access/account-service/domain/entities"
	domainerrors "ignite/contexts/identity-access/account-service/domain/errors"
	"ignite/contexts/identity-access/account-service/ports"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

type RegisterSchoolCommand struct {
	SchoolName           string
	AuthorizedPersonName string
	Email                string
	Password             string
	Phone                string
	Address              string
	District             string
	Taluk                string
	UDISECode            string
	PrincipalName        string
}

type CreateEvaluatorCommand struct {
	Name               string
	Email              string
	Password           string
	Expertise          string
	AssignedCategories []string
	AssignedLevels     []string
}

type LoginResult struct {
	AccessToken string
	UserID      string
	Role        entities.Role
	SchoolName  string
	ExpiresIn   int
}

// Profile is the role-shaped account view returned to an authenticated user.
type Profile struct {
	UserID   string
	Role     entities.Role
	Name     string
	Email    string
	School   *entities.SchoolAccount
	Admin    *entities.AdminAccount
	Evaluate *entities.EvaluatorAccount
}

type Service struct {
	Accounts ports.AccountRepository
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Secret   []byte
	TokenTTL time.Duration
	Logger   *slog.Logger
}

// RegisterSchool creates a new school account. Email uniqueness is checked
// here and enforced again by the store.
func (s Service) RegisterSchool(ctx context.Context, cmd RegisterSchoolCommand) (entities.SchoolAccount, error) {
	logger := resolveLogger(s.Logger)

	email := normalizeEmail(cmd.Email)
	if email == "" || strings.TrimSpace(cmd.Password) == "" ||
		strings.TrimSpace(cmd.SchoolName) == "" ||
		strings.TrimSpace(cmd.AuthorizedPersonName) == "" {
		return entities.SchoolAccount{}, domainerrors.ErrInvalidAccountInput
	}

	if _, exists, err := s.Accounts.GetSchoolByEmail(ctx, email); err != nil {
		return entities.SchoolAccount{}, err
	} else if exists {
		return entities.SchoolAccount{}, domainerrors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.SchoolAccount{}, err
	}
	accountID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.SchoolAccount{}, err
	}
	now := s.now()
	account := entities.SchoolAccount{
		AccountID:            accountID,
		SchoolName:           strings.TrimSpace(cmd.SchoolName),
		AuthorizedPersonName: strings.TrimSpace(cmd.AuthorizedPersonName),
		Email:                email,
		PasswordHash:         string(hash),
		Phone:                strings.TrimSpace(cmd.Phone),
		Address:              strings.TrimSpace(cmd.Address),
		District:             strings.TrimSpace(cmd.District),
		Taluk:                strings.TrimSpace(cmd.Taluk),
		UDISECode:            strings.TrimSpace(cmd.UDISECode),
		PrincipalName:        strings.TrimSpace(cmd.PrincipalName),
		IsActive:             true,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.Accounts.SaveSchool(ctx, account); err != nil {
		return entities.SchoolAccount{}, err
	}

	logger.Info("school registered",
		"event", "account_school_registered",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", account.AccountID,
		"district", account.District,
	)
	return account, nil
}

// Login authenticates one role's credentials and issues a bearer token. The
// same generic error is returned for an unknown email and a wrong password.
func (s Service) Login(ctx context.Context, role entities.Role, email string, password string) (LoginResult, error) {
	logger := resolveLogger(s.Logger)

	email = normalizeEmail(email)
	if email == "" || password == "" || !role.IsValid() {
		return LoginResult{}, domainerrors.ErrInvalidCredentials
	}

	var (
		accountID    string
		passwordHash string
		schoolName   string
		isActive     bool
	)
	switch role {
	case entities.RoleSchool:
		account, found, err := s.Accounts.GetSchoolByEmail(ctx, email)
		if err != nil {
			return LoginResult{}, err
		}
		if !found {
			return LoginResult{}, domainerrors.ErrInvalidCredentials
		}
		accountID, passwordHash, isActive = account.AccountID, account.PasswordHash, account.IsActive
		schoolName = account.SchoolName
	case entities.RoleAdmin:
		account, found, err := s.Accounts.GetAdminByEmail(ctx, email)
		if err != nil {
			return LoginResult{}, err
		}
		if !found {
			return LoginResult{}, domainerrors.ErrInvalidCredentials
		}
		accountID, passwordHash, isActive = account.AccountID, account.PasswordHash, account.IsActive
	case entities.RoleEvaluator:
		account, found, err := s.Accounts.GetEvaluatorByEmail(ctx, email)
		if err != nil {
			return LoginResult{}, err
		}
		if !found {
			return LoginResult{}, domainerrors.ErrInvalidCredentials
		}
		accountID, passwordHash, isActive = account.AccountID, account.PasswordHash, account.IsActive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		logger.Warn("login rejected",
			"event", "account_login_rejected",
			"module", "identity-access/account-service",
			"layer", "application",
			"role", string(role),
		)
		return LoginResult{}, domainerrors.ErrInvalidCredentials
	}
	if !isActive {
		return LoginResult{}, domainerrors.ErrAccountDisabled
	}

	token, expiresIn, err := s.issueToken(accountID, role)
	if err != nil {
		return LoginResult{}, err
	}

	logger.Info("login succeeded",
		"event", "account_login_succeeded",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", accountID,
		"role", string(role),
	)
	return LoginResult{
		AccessToken: token,
		UserID:      accountID,
		Role:        role,
		SchoolName:  schoolName,
		ExpiresIn:   expiresIn,
	}, nil
}

// VerifyAccessToken parses and validates a bearer token and returns the
// identity it asserts.
func (s Service) VerifyAccessToken(tokenString string) (entities.Identity, error) {
	token, err := jwt.Parse(strings.TrimSpace(tokenString), func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domainerrors.ErrTokenInvalid
		}
		return s.Secret, nil
	})
	if err != nil || !token.Valid {
		return entities.Identity{}, domainerrors.ErrTokenInvalid
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entities.Identity{}, domainerrors.ErrTokenInvalid
	}
	userID, _ := claims["sub"].(string)
	userType, _ := claims["user_type"].(string)
	role := entities.Role(userType)
	if strings.TrimSpace(userID) == "" || !role.IsValid() {
		return entities.Identity{}, domainerrors.ErrTokenInvalid
	}
	return entities.Identity{UserID: userID, Role: role}, nil
}

// GetProfile loads the account behind a verified identity.
func (s Service) GetProfile(ctx context.Context, identity entities.Identity) (Profile, error) {
	switch identity.Role {
	case entities.RoleSchool:
		account, err := s.Accounts.GetSchool(ctx, identity.UserID)
		if err != nil {
			return Profile{}, err
		}
		return Profile{
			UserID: account.AccountID,
			Role:   entities.RoleSchool,
			Name:   account.AuthorizedPersonName,
			Email:  account.Email,
			School: &account,
		}, nil
	case entities.RoleAdmin:
		account, err := s.Accounts.GetAdmin(ctx, identity.UserID)
		if err != nil {
			return Profile{}, err
		}
		return Profile{
			UserID: account.AccountID,
			Role:   entities.RoleAdmin,
			Name:   account.Name,
			Email:  account.Email,
			Admin:  &account,
		}, nil
	case entities.RoleEvaluator:
		account, err := s.Accounts.GetEvaluator(ctx, identity.UserID)
		if err != nil {
			return Profile{}, err
		}
		return Profile{
			UserID:   account.AccountID,
			Role:     entities.RoleEvaluator,
			Name:     account.Name,
			Email:    account.Email,
			Evaluate: &account,
		}, nil
	}
	return Profile{}, domainerrors.ErrTokenInvalid
}

// CreateEvaluator provisions an evaluator account on behalf of an admin.
func (s Service) CreateEvaluator(ctx context.Context, adminID string, cmd CreateEvaluatorCommand) (entities.EvaluatorAccount, error) {
	logger := resolveLogger(s.Logger)

	email := normalizeEmail(cmd.Email)
	if email == "" || strings.TrimSpace(cmd.Password) == "" || strings.TrimSpace(cmd.Name) == "" {
		return entities.EvaluatorAccount{}, domainerrors.ErrInvalidAccountInput
	}
	if _, exists, err := s.Accounts.GetEvaluatorByEmail(ctx, email); err != nil {
		return entities.EvaluatorAccount{}, err
	} else if exists {
		return entities.EvaluatorAccount{}, domainerrors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.EvaluatorAccount{}, err
	}
	accountID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.EvaluatorAccount{}, err
	}
	now := s.now()
	account := entities.EvaluatorAccount{
		AccountID:          accountID,
		Name:               strings.TrimSpace(cmd.Name),
		Email:              email,
		PasswordHash:       string(hash),
		Expertise:          strings.TrimSpace(cmd.Expertise),
		AssignedCategories: append([]string(nil), cmd.AssignedCategories...),
		AssignedLevels:     append([]string(nil), cmd.AssignedLevels...),
		CreatedBy:          strings.TrimSpace(adminID),
		IsActive:           true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.Accounts.SaveEvaluator(ctx, account); err != nil {
		return entities.EvaluatorAccount{}, err
	}

	logger.Info("evaluator created",
		"event", "account_evaluator_created",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", account.AccountID,
		"created_by", account.CreatedBy,
	)
	return account, nil
}

func (s Service) ListEvaluators(ctx context.Context) ([]entities.EvaluatorAccount, error) {
	return s.Accounts.ListEvaluators(ctx)
}

// SeedAdmin creates the administrator account once. A second call is a no-op
// reporting the existing account.
func (s Service) SeedAdmin(ctx context.Context, name string, email string, password string) (entities.AdminAccount, bool, error) {
	logger := resolveLogger(s.Logger)

	email = normalizeEmail(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return entities.AdminAccount{}, false, domainerrors.ErrInvalidAccountInput
	}
	if existing, found, err := s.Accounts.GetAdminByEmail(ctx, email); err != nil {
		return entities.AdminAccount{}, false, err
	} else if found {
		return existing, false, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entities.AdminAccount{}, false, err
	}
	accountID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.AdminAccount{}, false, err
	}
	now := s.now()
	account := entities.AdminAccount{
		AccountID:    accountID,
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: string(hash),
		Permissions:  []string{"all"},
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Accounts.SaveAdmin(ctx, account); err != nil {
		// A concurrent seed already created the row.
		if errors.Is(err, domainerrors.ErrEmailTaken) || errors.Is(err, domainerrors.ErrConflict) {
			existing, found, getErr := s.Accounts.GetAdminByEmail(ctx, email)
			if getErr == nil && found {
				return existing, false, nil
			}
		}
		return entities.AdminAccount{}, false, err
	}

	logger.Info("admin seeded",
		"event", "account_admin_seeded",
		"module", "identity-access/account-service",
		"layer", "application",
		"account_id", account.AccountID,
	)
	return account, true, nil
}

func (s Service) issueToken(accountID string, role entities.Role) (string, int, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := s.now()
	claims := jwt.MapClaims{
		"sub":       accountID,
		"user_type": string(role),
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", 0, err
	}
	return signed, int(ttl.Seconds()), nil
}

func (s Service) now() time.Time {
	now := time.Now().UTC()
	if s.Clock != nil {
		now = s.Clock.Now().UTC()
	}
	return now
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
