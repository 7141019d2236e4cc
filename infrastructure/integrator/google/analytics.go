package google

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"

	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/utils"
)

// Métricas consultadas na Data API, na ordem em que são lidas das linhas
var reportMetrics = []*analyticsdata.Metric{
	{Name: "sessions"},
	{Name: "totalUsers"},
	{Name: "newUsers"},
	{Name: "engagementRate"},
	{Name: "conversions"},
}

func (s *GoogleIntegrator) dataService(ctx context.Context, accessToken string) (*analyticsdata.Service, error) {
	svc, err := analyticsdata.NewService(ctx, option.WithTokenSource(s.tokenSource(accessToken)))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar o serviço da Data API")
	}
	return svc, nil
}

func dateRange(filters *domain.InsightFilters) []*analyticsdata.DateRange {
	return []*analyticsdata.DateRange{{
		StartDate: filters.StartDate.Format(time.DateOnly),
		EndDate:   filters.EndDate.Format(time.DateOnly),
	}}
}

// ListEntities enumera os canais de aquisição da propriedade no período
// padrão de sincronização. Cada canal vira uma entidade de nível
// traffic_source.
func (s *GoogleIntegrator) ListEntities(ctx context.Context, accessToken, propertyID string) ([]*domain.SyncEntity, error) {
	svc, err := s.dataService(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	end := time.Now()
	start := end.AddDate(0, 0, -s.cfg.Sync.LookbackDays)

	response, err := svc.Properties.RunReport("properties/"+propertyID, &analyticsdata.RunReportRequest{
		DateRanges: []*analyticsdata.DateRange{{
			StartDate: start.Format(time.DateOnly),
			EndDate:   end.Format(time.DateOnly),
		}},
		Dimensions: []*analyticsdata.Dimension{{Name: "sessionDefaultChannelGroup"}},
		Metrics:    []*analyticsdata.Metric{{Name: "sessions"}},
	}).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar canais da propriedade")
	}

	entities := make([]*domain.SyncEntity, 0, len(response.Rows))
	for _, row := range response.Rows {
		if len(row.DimensionValues) == 0 {
			continue
		}

		channel := row.DimensionValues[0].Value
		entities = append(entities, &domain.SyncEntity{
			ID:    channel,
			Name:  channel,
			Level: domain.EntityLevelTrafficSource,
		})
	}

	return entities, nil
}

// FetchEntityMetrics busca as métricas de um canal no período. As métricas
// do GA não têm colunas próprias no registro: vão serializadas em Raw, com
// as conversões espelhadas na coluna numérica.
func (s *GoogleIntegrator) FetchEntityMetrics(ctx context.Context, accessToken, propertyID string, entity *domain.SyncEntity, filters *domain.InsightFilters) (*domain.EntityMetrics, error) {
	svc, err := s.dataService(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	response, err := svc.Properties.RunReport("properties/"+propertyID, &analyticsdata.RunReportRequest{
		DateRanges: dateRange(filters),
		Dimensions: []*analyticsdata.Dimension{{Name: "sessionDefaultChannelGroup"}},
		Metrics:    reportMetrics,
		DimensionFilter: &analyticsdata.FilterExpression{
			Filter: &analyticsdata.Filter{
				FieldName: "sessionDefaultChannelGroup",
				StringFilter: &analyticsdata.StringFilter{
					MatchType: "EXACT",
					Value:     entity.ID,
				},
			},
		},
	}).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar métricas do canal %s", entity.ID)
	}

	channel := domain.ChannelMetrics{Channel: entity.ID}
	if len(response.Rows) > 0 {
		channel = rowToChannelMetrics(entity.ID, response.Rows[0])
	}

	metrics := &domain.EntityMetrics{
		EntityID:    entity.ID,
		EntityName:  entity.Name,
		EntityLevel: entity.Level,
		Conversions: channel.Conversions,
	}

	if raw, err := json.Marshal(channel); err == nil {
		metrics.Raw = raw
	}

	return metrics, nil
}

// GetAccountMetrics monta o bloco GoogleMetrics ao vivo para o dashboard:
// totais da propriedade, quebra por canal e tendência diária de sessões.
func (s *GoogleIntegrator) GetAccountMetrics(ctx context.Context, accessToken, propertyID string, filters *domain.InsightFilters) (*domain.GoogleMetrics, error) {
	svc, err := s.dataService(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	property := "properties/" + propertyID

	totals, err := svc.Properties.RunReport(property, &analyticsdata.RunReportRequest{
		DateRanges: dateRange(filters),
		Metrics:    reportMetrics,
	}).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar totais da propriedade")
	}

	metrics := &domain.GoogleMetrics{
		PropertyID:     propertyID,
		TrafficSources: make([]domain.TrafficSourceMetrics, 0),
	}

	if len(totals.Rows) > 0 {
		total := rowToChannelMetrics("", totals.Rows[0])
		metrics.Sessions = total.Sessions
		metrics.TotalUsers = total.TotalUsers
		metrics.NewUsers = total.NewUsers
		metrics.EngagementRate = total.EngagementRate
		metrics.Conversions = total.Conversions
	}

	byChannel, err := svc.Properties.RunReport(property, &analyticsdata.RunReportRequest{
		DateRanges: dateRange(filters),
		Dimensions: []*analyticsdata.Dimension{{Name: "sessionDefaultChannelGroup"}},
		Metrics:    reportMetrics,
	}).Context(ctx).Do()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"error":       err.Error(),
		}).Error("analytics: failed to get channel breakdown")
		return metrics, nil
	}

	for _, row := range byChannel.Rows {
		if len(row.DimensionValues) == 0 {
			continue
		}

		channel := rowToChannelMetrics(row.DimensionValues[0].Value, row)
		metrics.TrafficSources = append(metrics.TrafficSources, domain.TrafficSourceMetrics{
			Source:         channel.Channel,
			Sessions:       channel.Sessions,
			Users:          channel.TotalUsers,
			Conversions:    channel.Conversions,
			EngagementRate: channel.EngagementRate,
		})
	}

	byDate, err := svc.Properties.RunReport(property, &analyticsdata.RunReportRequest{
		DateRanges: dateRange(filters),
		Dimensions: []*analyticsdata.Dimension{{Name: "date"}},
		Metrics:    reportMetrics,
		OrderBys: []*analyticsdata.OrderBy{{
			Dimension: &analyticsdata.DimensionOrderBy{DimensionName: "date"},
		}},
	}).Context(ctx).Do()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"property_id": propertyID,
			"error":       err.Error(),
		}).Error("analytics: failed to get daily trend")
		return metrics, nil
	}

	for _, row := range byDate.Rows {
		if len(row.DimensionValues) == 0 {
			continue
		}

		point := rowToChannelMetrics("", row)
		metrics.Trend = append(metrics.Trend, domain.TrendPoint{
			// A dimensão date vem como YYYYMMDD
			Date:        formatReportDate(row.DimensionValues[0].Value),
			Sessions:    point.Sessions,
			Conversions: point.Conversions,
		})
	}

	return metrics, nil
}

func rowToChannelMetrics(channel string, row *analyticsdata.Row) domain.ChannelMetrics {
	metrics := domain.ChannelMetrics{Channel: channel}

	for i, value := range row.MetricValues {
		if i >= len(reportMetrics) {
			break
		}

		switch reportMetrics[i].Name {
		case "sessions":
			metrics.Sessions = parseMetricInt(value.Value)
		case "totalUsers":
			metrics.TotalUsers = parseMetricInt(value.Value)
		case "newUsers":
			metrics.NewUsers = parseMetricInt(value.Value)
		case "engagementRate":
			metrics.EngagementRate = utils.RoundWithTwoDecimalPlace(parseMetricFloat(value.Value))
		case "conversions":
			// A Data API retorna conversões como float
			metrics.Conversions = int(parseMetricFloat(value.Value))
		}
	}

	return metrics
}

func parseMetricInt(value string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"value": value,
			"error": err.Error(),
		}).Warn("analytics: error converting metric value to integer")
		return 0
	}

	return parsed
}

func parseMetricFloat(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"value": value,
			"error": err.Error(),
		}).Warn("analytics: error converting metric value to float")
		return 0
	}

	return parsed
}

func formatReportDate(value string) string {
	parsed, err := time.Parse("20060102", value)
	if err != nil {
		return value
	}
	return parsed.Format(time.DateOnly)
}
