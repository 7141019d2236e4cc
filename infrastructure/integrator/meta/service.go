package meta

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	metadomain "github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/integrator/meta/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/integrator/meta/metaclient"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/config"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/utils"
)

// MetaIntegrator traduz a Graph API para o modelo de domínio: fluxo OAuth,
// enumeração de contas, entidades de sync e métricas normalizadas.
type MetaIntegrator struct {
	cfg    *config.Config
	Client metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MetaIntegrator) Provider() domain.Provider {
	return domain.ProviderMeta
}

func (s *MetaIntegrator) AuthorizationURL(state string) string {
	return s.Client.BuildAuthorizationURL(state)
}

// ExchangeCode troca o code do callback por um token e faz o upgrade para
// longa duração, já que a Connection persiste o token por semanas
func (s *MetaIntegrator) ExchangeCode(ctx context.Context, code string) (string, error) {
	shortLived, err := s.Client.ExchangeCode(ctx, code)
	if err != nil {
		return "", err
	}

	longLived, err := s.Client.GetLongLivedToken(ctx, shortLived.AccessToken)
	if err != nil {
		logrus.WithError(err).Warn("Falha ao obter token de longa duração, usando token de curta duração")
		return shortLived.AccessToken, nil
	}

	return longLived.AccessToken, nil
}

func (s *MetaIntegrator) Identity(ctx context.Context, accessToken string) (*domain.ProviderIdentity, error) {
	identity, err := s.Client.GetIdentity(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	return &domain.ProviderIdentity{
		ID:   identity.ID,
		Name: identity.Name,
	}, nil
}

func (s *MetaIntegrator) ListAdAccounts(ctx context.Context, accessToken string) ([]*domain.AdAccount, error) {
	accounts, err := s.Client.GetAdAccounts(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	adAccounts := make([]*domain.AdAccount, 0, len(accounts))
	for _, acc := range accounts {
		accountID := acc.AccountID
		if accountID == "" {
			// O campo id vem prefixado como act_<id>
			accountID = strings.TrimPrefix(acc.ID, "act_")
		}

		adAccounts = append(adAccounts, &domain.AdAccount{
			ID:           accountID,
			Name:         acc.Name,
			BusinessName: acc.Business.Name,
			Status:       domain.MapMetaAccountStatus(acc.AccountStatus),
		})
	}

	return adAccounts, nil
}

// ListEntities retorna as campanhas da conta como entidades de sincronização
func (s *MetaIntegrator) ListEntities(ctx context.Context, accessToken, accountID string) ([]*domain.SyncEntity, error) {
	campaigns, err := s.Client.GetCampaignsByAccountID(ctx, accessToken, accountID)
	if err != nil {
		return nil, err
	}

	entities := make([]*domain.SyncEntity, 0, len(campaigns))
	for _, campaign := range campaigns {
		entities = append(entities, &domain.SyncEntity{
			ID:    campaign.ID,
			Name:  campaign.Name,
			Level: domain.EntityLevelCampaign,
		})
	}

	return entities, nil
}

// FetchEntityMetrics busca e normaliza os insights de uma campanha
func (s *MetaIntegrator) FetchEntityMetrics(ctx context.Context, accessToken, accountID string, entity *domain.SyncEntity, filters *domain.InsightFilters) (*domain.EntityMetrics, error) {
	insight, err := s.Client.GetCampaignInsights(ctx, accessToken, entity.ID, filters)
	if err != nil {
		if errors.Is(err, metaclient.ErrNoInsightData) {
			// Campanha sem entrega no período: registro zerado, não é falha
			return &domain.EntityMetrics{
				EntityID:    entity.ID,
				EntityName:  entity.Name,
				EntityLevel: entity.Level,
			}, nil
		}
		return nil, err
	}

	metrics := insightToEntityMetrics(insight)
	metrics.EntityID = entity.ID
	metrics.EntityName = entity.Name
	metrics.EntityLevel = entity.Level

	return metrics, nil
}

// GetAccountMetrics monta o bloco MetaMetrics ao vivo para o dashboard
func (s *MetaIntegrator) GetAccountMetrics(ctx context.Context, accessToken, accountID string, filters *domain.InsightFilters) (*domain.MetaMetrics, error) {
	accountInsight, err := s.Client.GetAccountInsights(ctx, accessToken, accountID, filters)
	if err != nil && !errors.Is(err, metaclient.ErrNoInsightData) {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get ad account insights from API")
		return nil, err
	}

	metrics := &domain.MetaMetrics{
		AccountID: accountID,
		Campaigns: make([]domain.CampaignMetrics, 0),
	}

	if accountInsight != nil {
		account := insightToEntityMetrics(accountInsight)
		metrics.AccountName = accountInsight.AccountName
		metrics.Impressions = account.Impressions
		metrics.Clicks = account.Clicks
		metrics.Reach = account.Reach
		metrics.Frequency = account.Frequency
		metrics.Spend = account.Spend
		metrics.Conversions = account.Conversions
	}

	campaigns, err := s.Client.GetCampaignsByAccountID(ctx, accessToken, accountID)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("insights: failed to get campaigns for ad account")
		return metrics, nil
	}

	for _, campaign := range campaigns {
		insight, err := s.Client.GetCampaignInsights(ctx, accessToken, campaign.ID, filters)
		if err != nil {
			if !errors.Is(err, metaclient.ErrNoInsightData) {
				logrus.WithFields(logrus.Fields{
					"campaign_id": campaign.ID,
					"account_id":  accountID,
					"error":       err.Error(),
				}).Error("insights: failed to get campaign insights")
			}
			continue
		}

		cm := insightToEntityMetrics(insight)
		metrics.Campaigns = append(metrics.Campaigns, domain.CampaignMetrics{
			ID:                campaign.ID,
			Name:              campaign.Name,
			Impressions:       cm.Impressions,
			Clicks:            cm.Clicks,
			Spend:             cm.Spend,
			Reach:             cm.Reach,
			Conversions:       cm.Conversions,
			CTR:               cm.CTR,
			CPC:               cm.CPC,
			CostPerConversion: cm.CostPerConversion,
		})
	}

	return metrics, nil
}

// insightToEntityMetrics converte os campos string da Graph API para o
// formato normalizado. Campos ilegíveis viram zero com warning no log.
func insightToEntityMetrics(insight *metadomain.Insight) *domain.EntityMetrics {
	metrics := &domain.EntityMetrics{
		Impressions:       parseInt(insight.Impressions, "impressions"),
		Clicks:            parseInt(insight.Clicks, "clicks"),
		Reach:             parseInt(insight.Reach, "reach"),
		Spend:             parseFloat(insight.Spend, "spend"),
		Frequency:         parseFloat(insight.Frequency, "frequency"),
		CTR:               parseFloat(insight.CTR, "ctr"),
		CPC:               parseFloat(insight.CPC, "cpc"),
		CPM:               parseFloat(insight.CPM, "cpm"),
		Conversions:       insight.GetConversions(),
		CostPerConversion: utils.RoundWithTwoDecimalPlace(insight.GetCostPerConversion()),
	}

	if raw, err := json.Marshal(insight); err == nil {
		metrics.Raw = raw
	}

	return metrics
}

func parseInt(value, field string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting value to integer")
		return 0
	}

	return parsed
}

func parseFloat(value, field string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"field": field,
			"value": value,
			"error": err.Error(),
		}).Warn("insights: error converting value to float")
		return 0
	}

	return parsed
}
