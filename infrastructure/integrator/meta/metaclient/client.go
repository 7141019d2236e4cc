package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/marcussviniciusa/speed-funnels-sub000/internal/config"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"

	metadomain "github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/integrator/meta/domain"
)

type Client interface {
	BuildAuthorizationURL(state string) string
	ExchangeCode(ctx context.Context, code string) (*TokenResponse, error)
	GetLongLivedToken(ctx context.Context, shortLivedToken string) (*TokenResponse, error)
	GetIdentity(ctx context.Context, accessToken string) (*metadomain.Identity, error)
	GetAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error)
	GetCampaignsByAccountID(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error)
	GetCampaignInsights(ctx context.Context, accessToken, campaignID string, filters *domain.InsightFilters) (*metadomain.Insight, error)
	GetAccountInsights(ctx context.Context, accessToken, accountID string, filters *domain.InsightFilters) (*metadomain.Insight, error)
}

type MetaClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// APIError carrega a mensagem crua do Meta para ser traduzida na borda dos
// usecases; nunca deve vazar direto para a UI.
type APIError struct {
	StatusCode  int
	Message     string
	Code        int
	AuthFailure bool
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meta api error (status %d, code %d): %s", e.StatusCode, e.Code, e.Message)
}

// handleResponse lê o corpo e converte o envelope de erro da Graph API
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Error.Message == "" {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
		}
	}

	return nil, &APIError{
		StatusCode:  resp.StatusCode,
		Message:     errResp.Error.Message,
		Code:        errResp.Error.Code,
		AuthFailure: errResp.IsAuthError(),
	}
}

func (c *MetaClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}
