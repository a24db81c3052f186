package httpadapter

import (
	"context"
	"log/slog"

	"ignite/contexts/identity-access/account-service/application"
	"ignite/contexts/identity-access/account-service/domain/entities"
	httptransport "ignite/contexts/identity-access/account-service/transport/http"
)

type Handler struct {
	Accounts application.Service
	Logger   *slog.Logger
}

func (h Handler) RegisterSchoolHandler(
	ctx context.Context,
	req httptransport.SchoolRegistrationRequest,
) (httptransport.SchoolRegistrationResponse, error) {
	account, err := h.Accounts.RegisterSchool(ctx, application.RegisterSchoolCommand{
		SchoolName:           req.SchoolName,
		AuthorizedPersonName: req.AuthorizedPersonName,
		Email:                req.Email,
		Password:             req.Password,
		Phone:                req.Phone,
		Address:              req.Address,
		District:             req.District,
		Taluk:                req.Taluk,
		UDISECode:            req.UDISECode,
		PrincipalName:        req.PrincipalName,
	})
	if err != nil {
		return httptransport.SchoolRegistrationResponse{}, err
	}
	return httptransport.SchoolRegistrationResponse{
		SchoolID:   account.AccountID,
		SchoolName: account.SchoolName,
		Email:      account.Email,
	}, nil
}

func (h Handler) LoginHandler(
	ctx context.Context,
	role entities.Role,
	req httptransport.LoginRequest,
) (httptransport.LoginResponse, error) {
	result, err := h.Accounts.Login(ctx, role, req.Email, req.Password)
	if err != nil {
		return httptransport.LoginResponse{}, err
	}
	return httptransport.LoginResponse{
		AccessToken: result.AccessToken,
		TokenType:   "bearer",
		UserID:      result.UserID,
		UserType:    string(result.Role),
		SchoolName:  result.SchoolName,
		ExpiresIn:   result.ExpiresIn,
	}, nil
}

func (h Handler) VerifyAccessToken(tokenString string) (entities.Identity, error) {
	return h.Accounts.VerifyAccessToken(tokenString)
}

func (h Handler) ProfileHandler(ctx context.Context, identity entities.Identity) (httptransport.ProfileResponse, error) {
	profile, err := h.Accounts.GetProfile(ctx, identity)
	if err != nil {
		return httptransport.ProfileResponse{}, err
	}
	resp := httptransport.ProfileResponse{
		UserID:   profile.UserID,
		UserType: string(profile.Role),
		Name:     profile.Name,
		Email:    profile.Email,
	}
	if profile.School != nil {
		resp.School = &httptransport.SchoolProfile{
			SchoolName:    profile.School.SchoolName,
			Phone:         profile.School.Phone,
			Address:       profile.School.Address,
			District:      profile.School.District,
			Taluk:         profile.School.Taluk,
			UDISECode:     profile.School.UDISECode,
			PrincipalName: profile.School.PrincipalName,
		}
	}
	if profile.Admin != nil {
		resp.Admin = &httptransport.AdminProfile{
			Permissions: profile.Admin.Permissions,
		}
	}
	if profile.Evaluate != nil {
		view := toEvaluatorView(*profile.Evaluate)
		resp.Evaluate = &view
	}
	return resp, nil
}

func (h Handler) CreateEvaluatorHandler(
	ctx context.Context,
	adminID string,
	req httptransport.CreateEvaluatorRequest,
) (httptransport.EvaluatorView, error) {
	account, err := h.Accounts.CreateEvaluator(ctx, adminID, application.CreateEvaluatorCommand{
		Name:               req.Name,
		Email:              req.Email,
		Password:           req.Password,
		Expertise:          req.Expertise,
		AssignedCategories: req.AssignedCategories,
		AssignedLevels:     req.AssignedLevels,
	})
	if err != nil {
		return httptransport.EvaluatorView{}, err
	}
	return toEvaluatorView(account), nil
}

func (h Handler) ListEvaluatorsHandler(ctx context.Context) (httptransport.EvaluatorListResponse, error) {
	accounts, err := h.Accounts.ListEvaluators(ctx)
	if err != nil {
		return httptransport.EvaluatorListResponse{}, err
	}
	items := make([]httptransport.EvaluatorView, 0, len(accounts))
	for _, account := range accounts {
		items = append(items, toEvaluatorView(account))
	}
	return httptransport.EvaluatorListResponse{
		Evaluators: items,
		Count:      len(items),
	}, nil
}

func (h Handler) SeedAdminHandler(
	ctx context.Context,
	name string,
	email string,
	password string,
) (httptransport.SeedAdminResponse, error) {
	account, created, err := h.Accounts.SeedAdmin(ctx, name, email, password)
	if err != nil {
		return httptransport.SeedAdminResponse{}, err
	}
	return httptransport.SeedAdminResponse{
		AdminID: account.AccountID,
		Email:   account.Email,
		Created: created,
	}, nil
}

func toEvaluatorView(account entities.EvaluatorAccount) httptransport.EvaluatorView {
	return httptransport.EvaluatorView{
		EvaluatorID:        account.AccountID,
		Name:               account.Name,
		Email:              account.Email,
		Expertise:          account.Expertise,
		AssignedCategories: account.AssignedCategories,
		AssignedLevels:     account.AssignedLevels,
		IsActive:           account.IsActive,
	}
}
