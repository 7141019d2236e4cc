package aggregating

import (
	"sort"

	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/pkg/utils"
)

// Combine funde os blocos dos providers no modelo único do dashboard.
// É uma função pura: fontes ausentes (nil) contribuem com zero e nenhuma
// métrica derivada produz NaN/Inf.
func Combine(meta *domain.MetaMetrics, google *domain.GoogleMetrics) *domain.CombinedMetrics {
	combined := &domain.CombinedMetrics{
		Campaigns:      make([]domain.CampaignMetrics, 0),
		TrafficSources: make([]domain.TrafficSourceMetrics, 0),
		Trend:          make([]domain.TrendPoint, 0),
	}

	if meta != nil {
		combined.Acquisition.Impressions = meta.Impressions
		combined.Acquisition.Reach = meta.Reach
		combined.Acquisition.Clicks = meta.Clicks
		combined.Engagement.Frequency = meta.Frequency
		combined.Cost.Spend = meta.Spend
		combined.Conversion.Conversions += meta.Conversions
		combined.Campaigns = append(combined.Campaigns, meta.Campaigns...)
	}

	if google != nil {
		combined.Acquisition.Sessions = google.Sessions
		combined.Acquisition.NewUsers = google.NewUsers
		combined.Engagement.EngagementRate = google.EngagementRate
		combined.Engagement.TotalUsers = google.TotalUsers
		combined.Conversion.Conversions += google.Conversions
		combined.TrafficSources = append(combined.TrafficSources, google.TrafficSources...)
	}

	clicks := float64(combined.Acquisition.Clicks)
	impressions := float64(combined.Acquisition.Impressions)
	conversions := float64(combined.Conversion.Conversions)
	spend := combined.Cost.Spend

	combined.Engagement.CTR = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(clicks, impressions) * 100)
	combined.Conversion.ConversionRate = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(conversions, clicks) * 100)
	combined.Cost.CPC = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(spend, clicks))
	combined.Cost.CPM = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(spend, impressions) * 1000)
	combined.Cost.CostPerConversion = utils.RoundWithTwoDecimalPlace(utils.SafeDivide(spend, conversions))

	combined.Trend = mergeTrends(meta, google)

	return combined
}

// mergeTrends junta as séries diárias dos dois providers pela data,
// sempre em ordem cronológica
func mergeTrends(meta *domain.MetaMetrics, google *domain.GoogleMetrics) []domain.TrendPoint {
	byDate := make(map[string]*domain.TrendPoint)

	if meta != nil {
		for _, point := range meta.Trend {
			merged := getOrCreatePoint(byDate, point.Date)
			merged.Impressions += point.Impressions
			merged.Clicks += point.Clicks
			merged.Spend += point.Spend
			merged.Conversions += point.Conversions
		}
	}

	if google != nil {
		for _, point := range google.Trend {
			merged := getOrCreatePoint(byDate, point.Date)
			merged.Sessions += point.Sessions
			merged.Conversions += point.Conversions
		}
	}

	trend := make([]domain.TrendPoint, 0, len(byDate))
	for _, point := range byDate {
		trend = append(trend, *point)
	}

	sort.Slice(trend, func(i, j int) bool {
		return trend[i].Date < trend[j].Date
	})

	return trend
}

func getOrCreatePoint(byDate map[string]*domain.TrendPoint, date string) *domain.TrendPoint {
	if point, ok := byDate[date]; ok {
		return point
	}
	point := &domain.TrendPoint{Date: date}
	byDate[date] = point
	return point
}

// ToChartSeries deriva as séries dos gráficos do dashboard. A ordem das
// labels é estável entre chamadas com a mesma entrada: canais e campanhas
// ficam em ordem alfabética, a tendência em ordem cronológica.
func ToChartSeries(combined *domain.CombinedMetrics) *domain.DashboardCharts {
	charts := &domain.DashboardCharts{}

	sources := append([]domain.TrafficSourceMetrics(nil), combined.TrafficSources...)
	sort.Slice(sources, func(i, j int) bool {
		return sources[i].Source < sources[j].Source
	})

	sourceLabels := make([]string, 0, len(sources))
	sessionValues := make([]float64, 0, len(sources))
	for _, source := range sources {
		sourceLabels = append(sourceLabels, source.Source)
		sessionValues = append(sessionValues, float64(source.Sessions))
	}

	charts.TrafficSourceChart = domain.Chart{
		Labels: sourceLabels,
		Datasets: []domain.ChartDataset{
			{Label: "Sessões", Data: sessionValues},
		},
	}

	campaigns := append([]domain.CampaignMetrics(nil), combined.Campaigns...)
	sort.Slice(campaigns, func(i, j int) bool {
		if campaigns[i].Name == campaigns[j].Name {
			return campaigns[i].ID < campaigns[j].ID
		}
		return campaigns[i].Name < campaigns[j].Name
	})

	campaignLabels := make([]string, 0, len(campaigns))
	spendValues := make([]float64, 0, len(campaigns))
	conversionValues := make([]float64, 0, len(campaigns))
	for _, campaign := range campaigns {
		campaignLabels = append(campaignLabels, campaign.Name)
		spendValues = append(spendValues, campaign.Spend)
		conversionValues = append(conversionValues, float64(campaign.Conversions))
	}

	charts.CampaignPerformanceChart = domain.Chart{
		Labels: campaignLabels,
		Datasets: []domain.ChartDataset{
			{Label: "Investimento", Data: spendValues},
			{Label: "Conversões", Data: conversionValues},
		},
	}

	trendLabels := make([]string, 0, len(combined.Trend))
	trendSpend := make([]float64, 0, len(combined.Trend))
	for _, point := range combined.Trend {
		trendLabels = append(trendLabels, point.Date)
		trendSpend = append(trendSpend, point.Spend)
	}

	charts.SpendTrendChart = domain.Chart{
		Labels: trendLabels,
		Datasets: []domain.ChartDataset{
			{Label: "Investimento diário", Data: trendSpend},
		},
	}

	return charts
}
