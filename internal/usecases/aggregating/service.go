package aggregating

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/repository"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/apiErrors"
)

// Fetchers de métricas ao vivo, implementados pelos integradores. Usados
// apenas quando não há registro sincronizado para o período.
type MetaMetricsFetcher interface {
	GetAccountMetrics(ctx context.Context, accessToken, accountID string, filters *domain.InsightFilters) (*domain.MetaMetrics, error)
}

type GoogleMetricsFetcher interface {
	GetAccountMetrics(ctx context.Context, accessToken, propertyID string, filters *domain.InsightFilters) (*domain.GoogleMetrics, error)
}

// ProviderMetricsResponse é o payload do endpoint de métricas por provider.
// Source indica de onde os números vieram: cache ou consulta ao vivo.
type ProviderMetricsResponse struct {
	Provider  domain.Provider       `json:"provider"`
	AccountID string                `json:"account_id"`
	Source    string                `json:"source"`
	Meta      *domain.MetaMetrics   `json:"meta,omitempty"`
	Google    *domain.GoogleMetrics `json:"google,omitempty"`
}

const (
	sourceCache = "cache"
	sourceLive  = "live"
)

type MetricsService interface {
	GetProviderMetrics(ctx context.Context, provider domain.Provider, accountID string, filters *domain.InsightFilters) (*ProviderMetricsResponse, error)
	GetCombinedMetrics(ctx context.Context, tenantID string, filters *domain.InsightFilters) (*domain.CombinedMetricsResponse, error)
}

type Service struct {
	connectionRepository repository.ConnectionRepository
	adDataRepository     repository.AdDataRepository
	metaFetcher          MetaMetricsFetcher
	googleFetcher        GoogleMetricsFetcher
}

func NewService(
	connectionRepository repository.ConnectionRepository,
	adDataRepository repository.AdDataRepository,
	metaFetcher MetaMetricsFetcher,
	googleFetcher GoogleMetricsFetcher,
) MetricsService {
	return &Service{
		connectionRepository: connectionRepository,
		adDataRepository:     adDataRepository,
		metaFetcher:          metaFetcher,
		googleFetcher:        googleFetcher,
	}
}

// GetProviderMetrics lê primeiro os registros sincronizados; sem cache para
// o período, cai para a consulta ao vivo no provider
func (s *Service) GetProviderMetrics(ctx context.Context, provider domain.Provider, accountID string, filters *domain.InsightFilters) (*ProviderMetricsResponse, error) {
	if err := filters.Validate(); err != nil {
		return nil, NewMetricsError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, err.Error())
	}

	records, err := s.adDataRepository.GetByAccountRange(accountID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("Erro ao consultar registros sincronizados")
		return nil, NewMetricsError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao consultar registros sincronizados")
	}

	response := &ProviderMetricsResponse{
		Provider:  provider,
		AccountID: accountID,
		Source:    sourceCache,
	}

	if len(records) > 0 {
		switch provider {
		case domain.ProviderMeta:
			response.Meta = metaMetricsFromRecords(accountID, records)
		case domain.ProviderGoogle:
			response.Google = googleMetricsFromRecords(accountID, records)
		default:
			return nil, NewMetricsError(ErrUnsupportedProvider, apiErrors.ErrUnsupportedProvider, string(provider))
		}
		return response, nil
	}

	return s.liveProviderMetrics(ctx, response, filters)
}

func (s *Service) liveProviderMetrics(ctx context.Context, response *ProviderMetricsResponse, filters *domain.InsightFilters) (*ProviderMetricsResponse, error) {
	connection, err := s.connectionRepository.FindActiveByProvider(response.Provider)
	if err != nil {
		return nil, NewMetricsError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao consultar a connection")
	}

	if connection == nil {
		return nil, NewMetricsError(ErrNoConnection, apiErrors.ErrConnectionNotFound, string(response.Provider))
	}

	response.Source = sourceLive

	switch response.Provider {
	case domain.ProviderMeta:
		metrics, err := s.metaFetcher.GetAccountMetrics(ctx, connection.AccessToken, response.AccountID, filters)
		if err != nil {
			return nil, NewMetricsError(ErrProviderFetch, apiErrors.ErrExternalService, err.Error())
		}
		response.Meta = metrics
	case domain.ProviderGoogle:
		metrics, err := s.googleFetcher.GetAccountMetrics(ctx, connection.AccessToken, response.AccountID, filters)
		if err != nil {
			return nil, NewMetricsError(ErrProviderFetch, apiErrors.ErrExternalService, err.Error())
		}
		response.Google = metrics
	default:
		return nil, NewMetricsError(ErrUnsupportedProvider, apiErrors.ErrUnsupportedProvider, string(response.Provider))
	}

	return response, nil
}

// GetCombinedMetrics monta o payload do dashboard a partir dos registros
// sincronizados das connections ativas do tenant. Provider sem connection
// (ou sem dados no período) contribui com zero.
func (s *Service) GetCombinedMetrics(ctx context.Context, tenantID string, filters *domain.InsightFilters) (*domain.CombinedMetricsResponse, error) {
	if err := filters.Validate(); err != nil {
		return nil, NewMetricsError(ErrInvalidPeriod, apiErrors.ErrInvalidRequest, err.Error())
	}

	metaMetrics, err := s.providerBlock(tenantID, domain.ProviderMeta, filters)
	if err != nil {
		return nil, err
	}

	googleMetrics, err := s.providerBlock(tenantID, domain.ProviderGoogle, filters)
	if err != nil {
		return nil, err
	}

	var metaBlock *domain.MetaMetrics
	var googleBlock *domain.GoogleMetrics
	if metaMetrics != nil {
		metaBlock = metaMetricsFromRecords(firstAccountID(metaMetrics), metaMetrics)
	}
	if googleMetrics != nil {
		googleBlock = googleMetricsFromRecords(firstAccountID(googleMetrics), googleMetrics)
	}

	combined := Combine(metaBlock, googleBlock)

	return &domain.CombinedMetricsResponse{
		TenantID: tenantID,
		Filters:  filters,
		Metrics:  combined,
		Charts:   ToChartSeries(combined),
	}, nil
}

// providerBlock retorna os registros sincronizados da connection ativa do
// tenant para o provider, ou nil quando não há connection
func (s *Service) providerBlock(tenantID string, provider domain.Provider, filters *domain.InsightFilters) ([]*domain.AdDataRecord, error) {
	connection, err := s.connectionRepository.GetActiveByTenantAndProvider(tenantID, provider)
	if err != nil {
		return nil, NewMetricsError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao consultar a connection do tenant")
	}

	if connection == nil {
		return nil, nil
	}

	records, err := s.adDataRepository.GetByConnectionRange(connection.ID, *filters.StartDate, *filters.EndDate)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"tenant_id":     tenantID,
			"connection_id": connection.ID,
			"error":         err.Error(),
		}).Error("Erro ao consultar registros sincronizados do tenant")
		return nil, NewMetricsError(ErrFetchRecords, apiErrors.ErrDatabaseOperation, "Falha ao consultar registros sincronizados")
	}

	return records, nil
}

func firstAccountID(records []*domain.AdDataRecord) string {
	if len(records) == 0 {
		return ""
	}
	return records[0].AdAccountID
}
