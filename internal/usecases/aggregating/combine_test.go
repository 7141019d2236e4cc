package aggregating

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
)

func TestCombine_BothSourcesNil(t *testing.T) {
	combined := Combine(nil, nil)

	// Fontes ausentes contribuem com zero, nunca nulo
	assert.Equal(t, 0, combined.Acquisition.Impressions)
	assert.Equal(t, 0, combined.Acquisition.Sessions)
	assert.Equal(t, 0, combined.Conversion.Conversions)
	assert.Zero(t, combined.Cost.Spend)
	assert.NotNil(t, combined.Campaigns)
	assert.NotNil(t, combined.TrafficSources)
	assert.NotNil(t, combined.Trend)
}

func TestCombine_DivisionByZeroGuards(t *testing.T) {
	// Gasto sem cliques nem conversões: taxas zeradas, nunca NaN/Inf
	combined := Combine(&domain.MetaMetrics{Spend: 150.0}, nil)

	assert.Zero(t, combined.Engagement.CTR)
	assert.Zero(t, combined.Conversion.ConversionRate)
	assert.Zero(t, combined.Cost.CPC)
	assert.Zero(t, combined.Cost.CPM)
	assert.Zero(t, combined.Cost.CostPerConversion)

	assert.False(t, math.IsNaN(combined.Cost.CostPerConversion))
	assert.False(t, math.IsInf(combined.Cost.CPC, 0))
}

func TestCombine_MetaCampaignWithoutGoogleData(t *testing.T) {
	meta := &domain.MetaMetrics{
		AccountID:   "act-1",
		Impressions: 10000,
		Clicks:      200,
		Reach:       8000,
		Spend:       500.0,
		Conversions: 20,
		Campaigns: []domain.CampaignMetrics{
			{ID: "camp-a", Name: "Campanha A", Impressions: 10000, Clicks: 200, Spend: 500.0, Conversions: 20},
		},
	}

	combined := Combine(meta, nil)

	require.Len(t, combined.Campaigns, 1)
	assert.Equal(t, "Campanha A", combined.Campaigns[0].Name)

	// Lado Google zerado
	assert.Zero(t, combined.Acquisition.Sessions)
	assert.Zero(t, combined.Engagement.EngagementRate)
	assert.Empty(t, combined.TrafficSources)

	// Derivadas calculadas só com o lado Meta
	assert.Equal(t, 2.0, combined.Engagement.CTR)           // 200/10000 * 100
	assert.Equal(t, 2.5, combined.Cost.CPC)                 // 500/200
	assert.Equal(t, 50.0, combined.Cost.CPM)                // 500/10000 * 1000
	assert.Equal(t, 25.0, combined.Cost.CostPerConversion)  // 500/20
	assert.Equal(t, 10.0, combined.Conversion.ConversionRate) // 20/200 * 100
}

func TestCombine_ConversionsSumAcrossProviders(t *testing.T) {
	combined := Combine(
		&domain.MetaMetrics{Conversions: 12},
		&domain.GoogleMetrics{Conversions: 8},
	)

	assert.Equal(t, 20, combined.Conversion.Conversions)
}

func TestCombine_TrendMergedByDate(t *testing.T) {
	meta := &domain.MetaMetrics{
		Trend: []domain.TrendPoint{
			{Date: "2026-08-02", Spend: 30.0, Clicks: 15},
			{Date: "2026-08-01", Spend: 20.0, Clicks: 10},
		},
	}
	google := &domain.GoogleMetrics{
		Trend: []domain.TrendPoint{
			{Date: "2026-08-01", Sessions: 100},
			{Date: "2026-08-03", Sessions: 50},
		},
	}

	combined := Combine(meta, google)

	require.Len(t, combined.Trend, 3)
	assert.Equal(t, "2026-08-01", combined.Trend[0].Date)
	assert.Equal(t, "2026-08-02", combined.Trend[1].Date)
	assert.Equal(t, "2026-08-03", combined.Trend[2].Date)

	// O dia presente nos dois providers funde as métricas
	assert.Equal(t, 20.0, combined.Trend[0].Spend)
	assert.Equal(t, 100, combined.Trend[0].Sessions)
}

func TestToChartSeries_StableOrdering(t *testing.T) {
	first := Combine(nil, &domain.GoogleMetrics{
		TrafficSources: []domain.TrafficSourceMetrics{
			{Source: "Organic Search", Sessions: 300},
			{Source: "Direct", Sessions: 200},
			{Source: "Paid Social", Sessions: 100},
		},
	})

	// Mesmos canais em ordem de entrada diferente
	second := Combine(nil, &domain.GoogleMetrics{
		TrafficSources: []domain.TrafficSourceMetrics{
			{Source: "Paid Social", Sessions: 100},
			{Source: "Direct", Sessions: 200},
			{Source: "Organic Search", Sessions: 300},
		},
	})

	chartsA := ToChartSeries(first)
	chartsB := ToChartSeries(second)

	expected := []string{"Direct", "Organic Search", "Paid Social"}
	assert.Equal(t, expected, chartsA.TrafficSourceChart.Labels)
	assert.Equal(t, chartsA.TrafficSourceChart.Labels, chartsB.TrafficSourceChart.Labels)
	assert.Equal(t, chartsA.TrafficSourceChart.Datasets, chartsB.TrafficSourceChart.Datasets)
}

func TestToChartSeries_CampaignDatasets(t *testing.T) {
	combined := Combine(&domain.MetaMetrics{
		Campaigns: []domain.CampaignMetrics{
			{ID: "c2", Name: "Remarketing", Spend: 80.0, Conversions: 4},
			{ID: "c1", Name: "Aquisição", Spend: 120.0, Conversions: 10},
		},
	}, nil)

	charts := ToChartSeries(combined)

	require.Equal(t, []string{"Aquisição", "Remarketing"}, charts.CampaignPerformanceChart.Labels)
	require.Len(t, charts.CampaignPerformanceChart.Datasets, 2)
	assert.Equal(t, []float64{120.0, 80.0}, charts.CampaignPerformanceChart.Datasets[0].Data)
	assert.Equal(t, []float64{10, 4}, charts.CampaignPerformanceChart.Datasets[1].Data)
}
