package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/catalog/mocks"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

func TestService_ListAdAccounts(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name           string
		organizationID string
		setup          func(reader *mocks.MockReader)
		wantCode       string
		wantErr        error
		wantAccounts   []domain.AdAccount
	}{
		{
			name:           "lists accounts of the organization",
			organizationID: "org-1",
			setup: func(reader *mocks.MockReader) {
				reader.EXPECT().ListAdAccounts(gomock.Any(), "org-1").Return([]domain.AdAccount{
					{ID: "acc-1", Name: "Main", Status: domain.AdAccountStatusActive},
				}, nil)
			},
			wantAccounts: []domain.AdAccount{
				{ID: "acc-1", Name: "Main", Status: domain.AdAccountStatusActive},
			},
		},
		{
			name:     "requires an organization id",
			setup:    func(reader *mocks.MockReader) {},
			wantCode: apiErrors.ErrMissingRequiredData,
			wantErr:  ErrOrganizationIDRequired,
		},
		{
			name:           "upstream failure is reported as an external service error",
			organizationID: "org-1",
			setup: func(reader *mocks.MockReader) {
				reader.EXPECT().ListAdAccounts(gomock.Any(), "org-1").Return(nil, errors.New("connection reset"))
			},
			wantCode: apiErrors.ErrExternalService,
			wantErr:  ErrFetchAdAccounts,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := mocks.NewMockReader(ctrl)
			tt.setup(reader)

			accounts, err := NewService(reader).ListAdAccounts(context.Background(), tt.organizationID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				var catalogErr *CatalogError
				require.ErrorAs(t, err, &catalogErr)
				assert.Equal(t, tt.wantCode, catalogErr.Code)
				assert.Nil(t, accounts)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantAccounts, accounts)
		})
	}
}

func TestService_ReadFailuresAreUniform(t *testing.T) {
	log.SetupTestLogger()
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)
	upstream := errors.New("503 Service Unavailable")

	reader.EXPECT().ListOrganizations(gomock.Any()).Return(nil, upstream)
	reader.EXPECT().ListCampaigns(gomock.Any(), "acc-1").Return(nil, upstream)
	reader.EXPECT().ListCreatives(gomock.Any(), "acc-1").Return(nil, upstream)

	service := NewService(reader)
	ctx := context.Background()

	_, orgErr := service.ListOrganizations(ctx)
	_, campaignErr := service.ListCampaigns(ctx, "acc-1")
	_, creativeErr := service.ListCreatives(ctx, "acc-1")

	for _, err := range []error{orgErr, campaignErr, creativeErr} {
		var catalogErr *CatalogError
		require.ErrorAs(t, err, &catalogErr)
		assert.Equal(t, apiErrors.ErrExternalService, catalogErr.Code)
		assert.Contains(t, catalogErr.Error(), "503 Service Unavailable")
	}
}

func TestService_ListCampaigns(t *testing.T) {
	ctrl := gomock.NewController(t)
	reader := mocks.NewMockReader(ctrl)

	reader.EXPECT().ListCampaigns(gomock.Any(), "acc-1").Return([]domain.Campaign{{ID: "c-1", Name: "Spring"}}, nil)

	campaigns, err := NewService(reader).ListCampaigns(context.Background(), "acc-1")
	require.NoError(t, err)
	require.Len(t, campaigns, 1)
	assert.Equal(t, "Spring", campaigns[0].Name)

	_, err = NewService(reader).ListCampaigns(context.Background(), "")
	assert.ErrorIs(t, err, ErrAdAccountIDRequired)
}
