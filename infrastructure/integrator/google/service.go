package google

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	analyticsadmin "google.golang.org/api/analyticsadmin/v1beta"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"

	"github.com/marcussviniciusa/speed-funnels-sub000/internal/config"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
)

// GoogleIntegrator conecta propriedades do Google Analytics: OAuth via
// golang.org/x/oauth2, enumeração de propriedades via Admin API e métricas
// via Data API. Uma "conta de anúncio" aqui é uma propriedade GA4.
type GoogleIntegrator struct {
	cfg   *config.Config
	oauth *oauth2.Config
}

func New(cfg *config.Config) *GoogleIntegrator {
	return &GoogleIntegrator{
		cfg: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURI,
			Scopes: []string{
				analyticsadmin.AnalyticsReadonlyScope,
				oauth2api.UserinfoProfileScope,
			},
			Endpoint: googleoauth.Endpoint,
		},
	}
}

func (s *GoogleIntegrator) Provider() domain.Provider {
	return domain.ProviderGoogle
}

func (s *GoogleIntegrator) AuthorizationURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

func (s *GoogleIntegrator) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return "", errors.Wrap(err, "erro ao trocar o code pelo token do Google")
	}

	return token.AccessToken, nil
}

func (s *GoogleIntegrator) tokenSource(accessToken string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken})
}

func (s *GoogleIntegrator) Identity(ctx context.Context, accessToken string) (*domain.ProviderIdentity, error) {
	svc, err := oauth2api.NewService(ctx, option.WithTokenSource(s.tokenSource(accessToken)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o serviço de userinfo")
	}

	userinfo, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar a identidade no Google")
	}

	if userinfo.Id == "" {
		return nil, errors.New("identidade retornada pelo Google é vazia")
	}

	return &domain.ProviderIdentity{
		ID:   userinfo.Id,
		Name: userinfo.Name,
	}, nil
}

// ListAdAccounts enumera as propriedades GA4 visíveis para o token via
// account summaries da Admin API
func (s *GoogleIntegrator) ListAdAccounts(ctx context.Context, accessToken string) ([]*domain.AdAccount, error) {
	svc, err := analyticsadmin.NewService(ctx, option.WithTokenSource(s.tokenSource(accessToken)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o serviço da Admin API")
	}

	adAccounts := make([]*domain.AdAccount, 0)

	call := svc.AccountSummaries.List().PageSize(200)
	err = call.Pages(ctx, func(page *analyticsadmin.GoogleAnalyticsAdminV1betaListAccountSummariesResponse) error {
		for _, account := range page.AccountSummaries {
			for _, property := range account.PropertySummaries {
				adAccounts = append(adAccounts, &domain.AdAccount{
					// O resource name vem como properties/<id>
					ID:           strings.TrimPrefix(property.Property, "properties/"),
					Name:         property.DisplayName,
					BusinessName: account.DisplayName,
					Status:       domain.AdAccountStatusActive,
				})
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar propriedades do Google Analytics")
	}

	return adAccounts, nil
}
