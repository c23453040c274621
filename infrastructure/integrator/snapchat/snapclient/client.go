package snapclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	snapdomain "github.com/tdhftu/snapchat-ads-tools/infrastructure/integrator/snapchat/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/config"
	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxPages bounds paging loops when the API keeps returning next links
const maxPages = 50

type Client interface {
	GetOrganizations(ctx context.Context) (*snapdomain.OrganizationsResponse, error)
	GetAdAccountsByOrganizationID(ctx context.Context, organizationID string) (*snapdomain.AdAccountsResponse, error)
	GetCampaignsByAdAccountID(ctx context.Context, adAccountID string) (*snapdomain.CampaignsResponse, error)
	GetCreativesByAdAccountID(ctx context.Context, adAccountID string) (*snapdomain.CreativesResponse, error)
	CreateCampaigns(ctx context.Context, adAccountID string, drafts []domain.CampaignDraft) (*snapdomain.CampaignsResponse, error)
	CreateAdSquads(ctx context.Context, campaignID string, drafts []domain.AdSquadDraft) (*snapdomain.AdSquadsResponse, error)
	CreateAds(ctx context.Context, adSquadID string, drafts []domain.AdDraft) (*snapdomain.AdsResponse, error)
	RefreshToken(ctx context.Context) error
}

type SnapClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	httpClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	timeout := cfg.Snapchat.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &SnapClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		httpClient:   &http.Client{Timeout: timeout},
	}
}

func (c *SnapClient) RefreshToken(ctx context.Context) error {
	return c.TokenManager.RefreshToken(ctx)
}

func (c *SnapClient) url(path string) string {
	return c.Cfg.Snapchat.APIURL + path
}

// do sends the request with a bearer token. A 401 invalidates the token and the request is
// sent once more with a fresh one.
func (c *SnapClient) do(ctx context.Context, method, url string, body any, out any) error {
	var payload []byte
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		payload = encoded
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{"method": method, "path": url})

	for attempt := 0; ; attempt++ {
		token, err := c.TokenManager.AccessToken(ctx)
		if err != nil {
			return errors.Wrap(err, "access token")
		}

		data, err := c.send(ctx, method, url, token, payload)
		if err != nil {
			var apiErr *snapdomain.ErrorResponse
			if errors.As(err, &apiErr) {
				if apiErr.IsTokenExpired() && attempt == 0 {
					logger.Warn("snapchat: access token rejected, refreshing")
					c.TokenManager.Invalidate(token)
					continue
				}
				if apiErr.IsClientError() && decodeRejection(apiErr.Raw, out) {
					logger.WithField("status_code", apiErr.StatusCode).Info("snapchat: sub request rejected")
					return nil
				}
			}
			logger.WithError(err).Error("snapchat: request failed")
			return err
		}

		if out == nil {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return errors.Wrapf(err, "decode %s %s", method, url)
		}
		return nil
	}
}

func (c *SnapClient) send(ctx context.Context, method, url, token string, payload []byte) ([]byte, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, url)
	}
	defer resp.Body.Close()

	return handleResponse(resp)
}

func handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return body, nil
	}

	apiErr := &snapdomain.ErrorResponse{StatusCode: resp.StatusCode, Raw: body}
	if err := json.Unmarshal(body, apiErr); err != nil || (apiErr.DebugMessage == "" && apiErr.DisplayMessage == "") {
		apiErr.Body = string(body)
	}
	return nil, apiErr
}

// rejectable is a create response whose first element may carry a sub request reason
type rejectable interface {
	RejectionReason() string
}

// decodeRejection fills out from a 4xx body when it is a create envelope naming a
// sub request reason. The integrator then reports the reason like a 200 rejection.
func decodeRejection(body []byte, out any) bool {
	target, ok := out.(rejectable)
	if !ok || len(body) == 0 {
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false
	}
	return target.RejectionReason() != ""
}

type pagedResponse interface {
	NextLink() string
}

// getAllPages follows next links starting at url and hands every page to collect
func getAllPages[R pagedResponse](ctx context.Context, c *SnapClient, url string, collect func(R)) error {
	next := url
	for page := 0; next != "" && page < maxPages; page++ {
		var current R
		if err := c.do(ctx, http.MethodGet, next, nil, &current); err != nil {
			return err
		}
		collect(current)
		next = current.NextLink()
	}
	return nil
}
