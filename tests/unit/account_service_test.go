package unit

import (
	"context"
	"errors"
	"testing"

	accountservice "ignite/contexts/identity-access/account-service"
	"ignite/contexts/identity-access/account-service/domain/entities"
	domainerrors "ignite/contexts/identity-access/account-service/domain/errors"
	httptransport "ignite/contexts/identity-access/account-service/transport/http"
)

const testSecret = "unit-test-secret"

func registerTestSchool(t *testing.T, module accountservice.Module) httptransport.SchoolRegistrationResponse {
	t.Helper()
	resp, err := module.Handler.RegisterSchoolHandler(context.Background(), httptransport.SchoolRegistrationRequest{
		SchoolName:           "Sunrise School",
		AuthorizedPersonName: "R. Gowda",
		Email:                "Office@Sunrise.Example",
		Password:             "s3cret-pass",
		Phone:                "9999999999",
		District:             "North",
		Taluk:                "Central",
	})
	if err != nil {
		t.Fatalf("register school failed: %v", err)
	}
	return resp
}

func TestRegisterSchoolAndLogin(t *testing.T) {
	module := accountservice.NewInMemoryModule(testSecret, nil)
	created := registerTestSchool(t, module)
	if created.Email != "office@sunrise.example" {
		t.Fatalf("expected normalized email, got %s", created.Email)
	}

	login, err := module.Handler.LoginHandler(context.Background(), entities.RoleSchool, httptransport.LoginRequest{
		Email:    "office@sunrise.example",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if login.AccessToken == "" || login.TokenType != "bearer" {
		t.Fatalf("expected bearer token, got %+v", login)
	}
	if login.UserType != "school" || login.SchoolName != "Sunrise School" {
		t.Fatalf("unexpected login payload: %+v", login)
	}

	identity, err := module.Handler.VerifyAccessToken(login.AccessToken)
	if err != nil {
		t.Fatalf("verify token failed: %v", err)
	}
	if identity.UserID != created.SchoolID || identity.Role != entities.RoleSchool {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	profile, err := module.Handler.ProfileHandler(context.Background(), identity)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if profile.School == nil || profile.School.District != "North" {
		t.Fatalf("expected school profile, got %+v", profile)
	}
}

func TestLoginRejectsBadCredentialsUniformly(t *testing.T) {
	module := accountservice.NewInMemoryModule(testSecret, nil)
	registerTestSchool(t, module)

	_, unknownErr := module.Handler.LoginHandler(context.Background(), entities.RoleSchool, httptransport.LoginRequest{
		Email:    "nobody@sunrise.example",
		Password: "s3cret-pass",
	})
	_, wrongErr := module.Handler.LoginHandler(context.Background(), entities.RoleSchool, httptransport.LoginRequest{
		Email:    "office@sunrise.example",
		Password: "wrong",
	})
	if !errors.Is(unknownErr, domainerrors.ErrInvalidCredentials) || !errors.Is(wrongErr, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected uniform ErrInvalidCredentials, got %v and %v", unknownErr, wrongErr)
	}

	// A school credential cannot log into the admin surface.
	_, crossErr := module.Handler.LoginHandler(context.Background(), entities.RoleAdmin, httptransport.LoginRequest{
		Email:    "office@sunrise.example",
		Password: "s3cret-pass",
	})
	if !errors.Is(crossErr, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials across roles, got %v", crossErr)
	}
}

func TestRegisterSchoolRejectsDuplicateEmail(t *testing.T) {
	module := accountservice.NewInMemoryModule(testSecret, nil)
	registerTestSchool(t, module)

	_, err := module.Handler.RegisterSchoolHandler(context.Background(), httptransport.SchoolRegistrationRequest{
		SchoolName:           "Other School",
		AuthorizedPersonName: "Someone",
		Email:                "OFFICE@sunrise.example",
		Password:             "another-pass",
	})
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestVerifyAccessTokenRejectsTampering(t *testing.T) {
	module := accountservice.NewInMemoryModule(testSecret, nil)
	registerTestSchool(t, module)
	login, err := module.Handler.LoginHandler(context.Background(), entities.RoleSchool, httptransport.LoginRequest{
		Email:    "office@sunrise.example",
		Password: "s3cret-pass",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	other := accountservice.NewInMemoryModule("a-different-secret", nil)
	if _, err := other.Handler.VerifyAccessToken(login.AccessToken); !errors.Is(err, domainerrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid across secrets, got %v", err)
	}
	if _, err := module.Handler.VerifyAccessToken("not-a-jwt"); !errors.Is(err, domainerrors.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid for garbage, got %v", err)
	}
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	module := accountservice.NewInMemoryModule(testSecret, nil)

	first, err := module.Handler.SeedAdminHandler(context.Background(), "Admin", "admin@ignite.local", "admin123")
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if !first.Created {
		t.Fatalf("first seed must create the admin")
	}

	second, err := module.Handler.SeedAdminHandler(context.Background(), "Admin", "admin@ignite.local", "admin123")
	if err != nil {
		t.Fatalf("repeat seed failed: %v", err)
	}
	if second.Created {
		t.Fatalf("repeat seed must not create a second admin")
	}
	if first.AdminID != second.AdminID {
		t.Fatalf("expected stable admin id, got %s and %s", first.AdminID, second.AdminID)
	}

	if _, err := module.Handler.LoginHandler(context.Background(), entities.RoleAdmin, httptransport.LoginRequest{
		Email:    "admin@ignite.local",
		Password: "admin123",
	}); err != nil {
		t.Fatalf("seeded admin login failed: %v", err)
	}
}

func TestCreateAndListEvaluators(t *testing.T) {
	module := accountservice.NewInMemoryModule(testSecret, nil)
	seeded, err := module.Handler.SeedAdminHandler(context.Background(), "Admin", "admin@ignite.local", "admin123")
	if err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	created, err := module.Handler.CreateEvaluatorHandler(context.Background(), seeded.AdminID, httptransport.CreateEvaluatorRequest{
		Name:               "Prof. Iyer",
		Email:              "iyer@panel.example",
		Password:           "panel-pass",
		Expertise:          "fine arts",
		AssignedCategories: []string{"junior-artists"},
		AssignedLevels:     []string{"district", "state"},
	})
	if err != nil {
		t.Fatalf("create evaluator failed: %v", err)
	}
	if !created.IsActive {
		t.Fatalf("new evaluator must be active")
	}

	login, err := module.Handler.LoginHandler(context.Background(), entities.RoleEvaluator, httptransport.LoginRequest{
		Email:    "iyer@panel.example",
		Password: "panel-pass",
	})
	if err != nil {
		t.Fatalf("evaluator login failed: %v", err)
	}
	identity, err := module.Handler.VerifyAccessToken(login.AccessToken)
	if err != nil {
		t.Fatalf("verify evaluator token failed: %v", err)
	}
	if identity.Role != entities.RoleEvaluator {
		t.Fatalf("expected evaluator role, got %s", identity.Role)
	}

	list, err := module.Handler.ListEvaluatorsHandler(context.Background())
	if err != nil {
		t.Fatalf("list evaluators failed: %v", err)
	}
	if list.Count != 1 || len(list.Evaluators) != 1 {
		t.Fatalf("expected one evaluator, got %d", list.Count)
	}
	if list.Evaluators[0].Email != "iyer@panel.example" {
		t.Fatalf("unexpected evaluator: %+v", list.Evaluators[0])
	}
}
