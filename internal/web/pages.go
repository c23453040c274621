package web

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/julienschmidt/httprouter"

	"github.com/tdhftu/snapchat-ads-tools/internal/domain"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/authenticating"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/catalog"
	"github.com/tdhftu/snapchat-ads-tools/internal/usecases/provisioning"
	"github.com/tdhftu/snapchat-ads-tools/pkg/apiErrors"
	"github.com/tdhftu/snapchat-ads-tools/pkg/log"
	"github.com/tdhftu/snapchat-ads-tools/pkg/middleware"
)

const (
	defaultNext        = "/campaigns/create"
	runRefreshInterval = 2
)

// Pages serves the operator web interface
type Pages struct {
	auth         authenticating.Authenticator
	catalog      catalog.CatalogService
	provisioning provisioning.ProvisioningService
	secureCookie bool
}

func NewPages(
	auth authenticating.Authenticator,
	catalogService catalog.CatalogService,
	provisioningService provisioning.ProvisioningService,
) *Pages {
	return &Pages{
		auth:         auth,
		catalog:      catalogService,
		provisioning: provisioningService,
		secureCookie: !log.IsDevelopment(),
	}
}

func render(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	_, signedIn := middleware.OperatorFromContext(r.Context())
	opts := LayoutOptions{Title: title, SignedIn: signedIn}
	templ.Handler(Layout(opts, body), templ.WithStatus(status)).ServeHTTP(w, r)
}

// safeNext only follows local redirects
func safeNext(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return defaultNext
	}
	return next
}

func (p *Pages) LoginForm() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := LoginView{Next: safeNext(r.URL.Query().Get("next"))}
		render(w, r, http.StatusOK, "Sign in", LoginPage(view))
	}
}

func (p *Pages) LoginSubmit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			render(w, r, http.StatusBadRequest, "Sign in", LoginPage(LoginView{Error: "invalid form"}))
			return
		}

		view := LoginView{
			Email: r.PostForm.Get("email"),
			Next:  safeNext(r.PostForm.Get("next")),
		}

		resp, err := p.auth.Login(view.Email, r.PostForm.Get("password"))
		if err != nil {
			status := http.StatusUnauthorized
			view.Error = "Invalid email or password"

			var authErr *authenticating.AuthError
			if errors.As(err, &authErr) {
				status = apiErrors.StatusFor(authErr.Code)
				if errors.Is(err, authenticating.ErrMissingRequiredData) {
					view.Error = "Email and password are required"
				} else if status >= http.StatusInternalServerError {
					view.Error = "Sign in is not available"
				}
			}

			render(w, r, status, "Sign in", LoginPage(view))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    resp.Token,
			Path:     "/",
			Expires:  time.Unix(resp.ExpiresAt, 0),
			HttpOnly: true,
			Secure:   p.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, view.Next, http.StatusSeeOther)
	}
}

func (p *Pages) Logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     middleware.SessionCookie,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   p.secureCookie,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, middleware.LoginPath, http.StatusSeeOther)
	}
}

// loadCreateView fetches organizations and a fresh board for the selected one.
// Read failures end up in the banner.
func (p *Pages) loadCreateView(ctx context.Context, organizationID string) CreateView {
	view := CreateView{
		OrganizationID: organizationID,
		Form:           provisioning.DefaultForm(),
		Selected:       map[string]bool{},
	}

	organizations, err := p.catalog.ListOrganizations(ctx)
	if err != nil {
		view.Errors = append(view.Errors, "Could not load organizations: "+err.Error())
	}
	view.Organizations = organizations

	if organizationID == "" {
		return view
	}

	accounts, err := p.catalog.ListAdAccounts(ctx, organizationID)
	if err != nil {
		view.Errors = append(view.Errors, "Could not load ad accounts: "+err.Error())
		return view
	}

	board := provisioning.NewBoard(accounts)
	view.Rows = board.Rows()
	return view
}

func (p *Pages) CreateCampaigns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view := p.loadCreateView(r.Context(), r.URL.Query().Get("organization_id"))
		render(w, r, http.StatusOK, "Create campaigns", CreatePage(view))
	}
}

func (p *Pages) SubmitCampaigns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			view := p.loadCreateView(r.Context(), "")
			view.Errors = append(view.Errors, "Invalid form submission")
			render(w, r, http.StatusBadRequest, "Create campaigns", CreatePage(view))
			return
		}

		form, parseErrs := parseForm(r.PostForm)

		view := p.loadCreateView(r.Context(), form.OrganizationID)
		view.Form = form
		for _, id := range form.AdAccountIDs {
			view.Selected[id] = true
		}

		if len(parseErrs) > 0 {
			view.FieldErrors = parseErrs
			render(w, r, http.StatusBadRequest, "Create campaigns", CreatePage(view))
			return
		}

		run, err := p.provisioning.Submit(r.Context(), form)
		if err != nil {
			status := http.StatusInternalServerError
			var provisioningErr *provisioning.ProvisioningError
			if errors.As(err, &provisioningErr) {
				status = apiErrors.StatusFor(provisioningErr.Code)
				if fields, ok := provisioningErr.Details.(map[string]string); ok {
					view.FieldErrors = fields
				} else {
					view.Errors = append(view.Errors, provisioningErr.Error())
				}
			} else {
				view.Errors = append(view.Errors, err.Error())
			}

			render(w, r, status, "Create campaigns", CreatePage(view))
			return
		}

		if run == nil {
			http.Redirect(w, r, "/campaigns/create?organization_id="+form.OrganizationID, http.StatusSeeOther)
			return
		}

		http.Redirect(w, r, "/campaigns/runs/"+run.ID, http.StatusSeeOther)
	}
}

func (p *Pages) RunStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		runID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		report, err := p.provisioning.GetRun(r.Context(), runID)
		if err != nil {
			status := http.StatusInternalServerError
			var provisioningErr *provisioning.ProvisioningError
			if errors.As(err, &provisioningErr) {
				status = apiErrors.StatusFor(provisioningErr.Code)
			}
			render(w, r, status, "Run", errorBanner([]string{err.Error()}))
			return
		}

		_, signedIn := middleware.OperatorFromContext(r.Context())
		opts := LayoutOptions{Title: "Run " + report.Run.ID, SignedIn: signedIn}
		if report.Run.State != domain.RunFinished {
			opts.RefreshSeconds = runRefreshInterval
		}
		templ.Handler(Layout(opts, RunPage(report))).ServeHTTP(w, r)
	}
}

func (p *Pages) AccountCampaigns() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adAccountID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		view := CampaignsView{AdAccountID: adAccountID}

		campaigns, err := p.catalog.ListCampaigns(r.Context(), adAccountID)
		if err != nil {
			view.Errors = []string{"Could not load campaigns: " + err.Error()}
			render(w, r, http.StatusBadGateway, "Campaigns", CampaignsPage(view))
			return
		}

		view.Campaigns = campaigns
		render(w, r, http.StatusOK, "Campaigns", CampaignsPage(view))
	}
}

func (p *Pages) SwaggerTool() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render(w, r, http.StatusOK, "API", SwaggerPage())
	}
}
