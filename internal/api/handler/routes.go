package handler

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/tdhftu/snapchat-ads-tools/internal/api/handler/router"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/authenticating"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/catalog"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
	"github.com/tdhftu/snapchat-ads-tools/internal/web"
	"github.com/tdhftu/snapchat-ads-tools/pkg/middleware"
)

var operatorOnly = []func(http.Handler) http.Handler{middleware.OperatorOnly()}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(),
			Middlewares: operatorOnly,
		},
	}
}

// Snapchat exposes the Marketing API boundary used by the creation page
func Snapchat(catalogService catalog.CatalogService, platform provisioning.Platform) []router.Route {
	return []router.Route{
		{
			Path:        "/api/organizations",
			Method:      http.MethodGet,
			Handler:     ListOrganizations(catalogService),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/api/organizations/:id/adaccounts",
			Method:      http.MethodGet,
			Handler:     ListAdAccounts(catalogService),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/api/adaccounts/:id/campaigns",
			Method:      http.MethodGet,
			Handler:     ListCampaigns(catalogService),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/api/adaccounts/:id/creatives",
			Method:      http.MethodPost,
			Handler:     ListCreatives(catalogService),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/api/campaigns/create",
			Method:      http.MethodPost,
			Handler:     CreateCampaign(platform),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/api/adsquads/create",
			Method:      http.MethodPost,
			Handler:     CreateAdSquad(platform),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/api/ads/create",
			Method:      http.MethodPost,
			Handler:     CreateAd(platform),
			Middlewares: operatorOnly,
		},
	}
}

func Provisioning(service provisioning.ProvisioningService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/provisioning/runs",
			Method:      http.MethodPost,
			Handler:     SubmitRun(service),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/v1/provisioning/runs/:id",
			Method:      http.MethodGet,
			Handler:     GetRun(service),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/v1/provisioning/history",
			Method:      http.MethodGet,
			Handler:     ListRuns(service),
			Middlewares: operatorOnly,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/run/:type",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: operatorOnly,
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: operatorOnly,
		},
	}
}

func Swagger() []router.Route {
	return []router.Route{
		{
			Path:    "/swagger/*any",
			Method:  http.MethodGet,
			Handler: httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")),
		},
	}
}

// Pages mounts the server-rendered operator pages
func Pages(pages *web.Pages) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: http.RedirectHandler("/campaigns/create", http.StatusFound),
		},
		{
			Path:    middleware.LoginPath,
			Method:  http.MethodGet,
			Handler: pages.LoginForm(),
		},
		{
			Path:    middleware.LoginPath,
			Method:  http.MethodPost,
			Handler: pages.LoginSubmit(),
		},
		{
			Path:    "/logout",
			Method:  http.MethodPost,
			Handler: pages.Logout(),
		},
		{
			Path:    "/campaigns/create",
			Method:  http.MethodGet,
			Handler: pages.CreateCampaigns(),
		},
		{
			Path:    "/campaigns/create",
			Method:  http.MethodPost,
			Handler: pages.SubmitCampaigns(),
		},
		{
			Path:    "/campaigns/runs/:id",
			Method:  http.MethodGet,
			Handler: pages.RunStatus(),
		},
		{
			Path:    "/adaccounts/:id/campaigns",
			Method:  http.MethodGet,
			Handler: pages.AccountCampaigns(),
		},
		{
			Path:    "/tools/swagger",
			Method:  http.MethodGet,
			Handler: pages.SwaggerTool(),
		},
	}
}
