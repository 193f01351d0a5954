package handlers

import (
	"context"

	"leadflow.backend/internal/domain/entities"
)

type leadServiceStub struct {
	listFn func(context.Context, *entities.ListLeadsQuery) (*entities.LeadPage, error)
	getFn  func(context.Context, string) (*entities.Lead, error)
}

func (s leadServiceStub) ListLeads(ctx context.Context, q *entities.ListLeadsQuery) (*entities.LeadPage, error) {
	return s.listFn(ctx, q)
}

func (s leadServiceStub) GetLead(ctx context.Context, id string) (*entities.Lead, error) {
	return s.getFn(ctx, id)
}

type analyticsServiceStub struct {
	analyticsFn func(context.Context) (*entities.AnalyticsData, error)
}

func (s analyticsServiceStub) GetAnalytics(ctx context.Context) (*entities.AnalyticsData, error) {
	return s.analyticsFn(ctx)
}

type authServiceStub struct {
	registerFn func(context.Context, *entities.RegisterInput) (*entities.User, error)
	loginFn    func(context.Context, *entities.LoginInput) (string, *entities.User, error)
}

func (s authServiceStub) Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error) {
	return s.registerFn(ctx, input)
}

func (s authServiceStub) Login(ctx context.Context, input *entities.LoginInput) (string, *entities.User, error) {
	return s.loginFn(ctx, input)
}
