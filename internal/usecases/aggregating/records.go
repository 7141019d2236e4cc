package aggregating

import (
	"encoding/json"

	"github.com/sirupsen/logrus"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/utils"
)

// metaMetricsFromRecords reconstrói o bloco do Meta a partir dos registros
// sincronizados (nível campanha)
func metaMetricsFromRecords(accountID string, records []*domain.AdDataRecord) *domain.MetaMetrics {
	metrics := &domain.MetaMetrics{
		AccountID: accountID,
		Campaigns: make([]domain.CampaignMetrics, 0),
	}

	for _, record := range records {
		if record.EntityLevel != domain.EntityLevelCampaign && record.EntityLevel != domain.EntityLevelAccount {
			continue
		}

		metrics.Impressions += record.Impressions
		metrics.Clicks += record.Clicks
		metrics.Reach += record.Reach
		metrics.Spend += record.Spend
		metrics.Conversions += record.Conversions

		if record.EntityLevel == domain.EntityLevelCampaign {
			metrics.Campaigns = append(metrics.Campaigns, domain.CampaignMetrics{
				ID:                record.EntityID,
				Name:              record.EntityName,
				Impressions:       record.Impressions,
				Clicks:            record.Clicks,
				Spend:             record.Spend,
				Reach:             record.Reach,
				Conversions:       record.Conversions,
				CTR:               record.CTR,
				CPC:               record.CPC,
				CostPerConversion: record.CostPerConversion,
			})
		}
	}

	// A frequência agregada é derivada, não somada
	metrics.Frequency = utils.RoundWithTwoDecimalPlace(
		utils.SafeDivide(float64(metrics.Impressions), float64(metrics.Reach)),
	)
	metrics.Spend = utils.RoundWithTwoDecimalPlace(metrics.Spend)

	return metrics
}

// googleMetricsFromRecords reconstrói o bloco do Google a partir dos
// registros de nível traffic_source. As métricas de canal vêm do raw_data.
func googleMetricsFromRecords(propertyID string, records []*domain.AdDataRecord) *domain.GoogleMetrics {
	metrics := &domain.GoogleMetrics{
		PropertyID:     propertyID,
		TrafficSources: make([]domain.TrafficSourceMetrics, 0),
	}

	weightedEngagement := 0.0

	for _, record := range records {
		if record.EntityLevel != domain.EntityLevelTrafficSource {
			continue
		}

		var channel domain.ChannelMetrics
		if err := json.Unmarshal(record.RawData, &channel); err != nil {
			logrus.WithFields(logrus.Fields{
				"record_id": record.ID,
				"entity_id": record.EntityID,
				"error":     err.Error(),
			}).Warn("Raw data de canal ilegível, contribuindo com zero")
			channel = domain.ChannelMetrics{Channel: record.EntityID}
		}

		metrics.Sessions += channel.Sessions
		metrics.TotalUsers += channel.TotalUsers
		metrics.NewUsers += channel.NewUsers
		metrics.Conversions += channel.Conversions
		weightedEngagement += channel.EngagementRate * float64(channel.Sessions)

		metrics.TrafficSources = append(metrics.TrafficSources, domain.TrafficSourceMetrics{
			Source:         channel.Channel,
			Sessions:       channel.Sessions,
			Users:          channel.TotalUsers,
			Conversions:    channel.Conversions,
			EngagementRate: channel.EngagementRate,
		})
	}

	// Média de engajamento ponderada pelas sessões de cada canal
	metrics.EngagementRate = utils.RoundWithTwoDecimalPlace(
		utils.SafeDivide(weightedEngagement, float64(metrics.Sessions)),
	)

	return metrics
}
