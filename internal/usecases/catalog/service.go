package catalog

import (
	"context"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

// Reader is the read side of the advertising platform
type Reader interface {
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	ListAdAccounts(ctx context.Context, organizationID string) ([]domain.AdAccount, error)
	ListCampaigns(ctx context.Context, adAccountID string) ([]domain.Campaign, error)
	ListCreatives(ctx context.Context, adAccountID string) ([]domain.Creative, error)
}

type CatalogService interface {
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
	ListAdAccounts(ctx context.Context, organizationID string) ([]domain.AdAccount, error)
	ListCampaigns(ctx context.Context, adAccountID string) ([]domain.Campaign, error)
	ListCreatives(ctx context.Context, adAccountID string) ([]domain.Creative, error)
}

type Service struct {
	reader Reader
}

func NewService(reader Reader) CatalogService {
	return &Service{reader: reader}
}

func (s *Service) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	organizations, err := s.reader.ListOrganizations(ctx)
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("catalog: failed to list organizations")
		return nil, NewCatalogError(ErrFetchOrganizations, apiErrors.ErrExternalService, "", err.Error())
	}
	return organizations, nil
}

func (s *Service) ListAdAccounts(ctx context.Context, organizationID string) ([]domain.AdAccount, error) {
	if organizationID == "" {
		return nil, NewCatalogError(ErrOrganizationIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	accounts, err := s.reader.ListAdAccounts(ctx, organizationID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("organization_id", organizationID).Error("catalog: failed to list ad accounts")
		return nil, NewCatalogError(ErrFetchAdAccounts, apiErrors.ErrExternalService, organizationID, err.Error())
	}
	return accounts, nil
}

func (s *Service) ListCampaigns(ctx context.Context, adAccountID string) ([]domain.Campaign, error) {
	if adAccountID == "" {
		return nil, NewCatalogError(ErrAdAccountIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	campaigns, err := s.reader.ListCampaigns(ctx, adAccountID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("account_id", adAccountID).Error("catalog: failed to list campaigns")
		return nil, NewCatalogError(ErrFetchCampaigns, apiErrors.ErrExternalService, adAccountID, err.Error())
	}
	return campaigns, nil
}

func (s *Service) ListCreatives(ctx context.Context, adAccountID string) ([]domain.Creative, error) {
	if adAccountID == "" {
		return nil, NewCatalogError(ErrAdAccountIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	creatives, err := s.reader.ListCreatives(ctx, adAccountID)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("account_id", adAccountID).Error("catalog: failed to list creatives")
		return nil, NewCatalogError(ErrFetchCreatives, apiErrors.ErrExternalService, adAccountID, err.Error())
	}
	return creatives, nil
}
