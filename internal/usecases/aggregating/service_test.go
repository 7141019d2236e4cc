package aggregating

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	repomocks "github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/repository/mocks"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/usecases/aggregating/mocks"
)

func periodFilters(t *testing.T) *domain.InsightFilters {
	t.Helper()

	start, err := time.Parse(time.DateOnly, "2026-08-01")
	require.NoError(t, err)
	end, err := time.Parse(time.DateOnly, "2026-08-07")
	require.NoError(t, err)

	return &domain.InsightFilters{StartDate: &start, EndDate: &end}
}

func campaignRecord(entityID, name string, impressions, clicks int, spend float64) *domain.AdDataRecord {
	return &domain.AdDataRecord{
		ID:           "rec-" + entityID,
		ConnectionID: "conn-1",
		AdAccountID:  "act-1",
		EntityID:     entityID,
		EntityName:   name,
		EntityLevel:  domain.EntityLevelCampaign,
		Impressions:  impressions,
		Clicks:       clicks,
		Spend:        spend,
	}
}

func channelRecord(t *testing.T, channel string, sessions, conversions int) *domain.AdDataRecord {
	t.Helper()

	raw, err := json.Marshal(domain.ChannelMetrics{
		Channel:        channel,
		Sessions:       sessions,
		TotalUsers:     sessions,
		Conversions:    conversions,
		EngagementRate: 0.5,
	})
	require.NoError(t, err)

	return &domain.AdDataRecord{
		ID:           "rec-" + channel,
		ConnectionID: "conn-2",
		AdAccountID:  "prop-1",
		EntityID:     channel,
		EntityName:   channel,
		EntityLevel:  domain.EntityLevelTrafficSource,
		Conversions:  conversions,
		RawData:      raw,
	}
}

func TestGetProviderMetrics_CacheHit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	adDataRepo := repomocks.NewMockAdDataRepository(ctrl)
	// Sem EXPECT nos fetchers: cache presente nunca consulta o provider
	metaFetcher := mocks.NewMockMetaMetricsFetcher(ctrl)
	googleFetcher := mocks.NewMockGoogleMetricsFetcher(ctrl)

	filters := periodFilters(t)

	adDataRepo.EXPECT().
		GetByAccountRange("act-1", *filters.StartDate, *filters.EndDate).
		Return([]*domain.AdDataRecord{
			campaignRecord("camp-1", "Campanha 1", 1000, 50, 100.0),
			campaignRecord("camp-2", "Campanha 2", 2000, 100, 200.0),
		}, nil)

	service := NewService(nil, adDataRepo, metaFetcher, googleFetcher)

	response, err := service.GetProviderMetrics(context.Background(), domain.ProviderMeta, "act-1", filters)
	require.NoError(t, err)

	assert.Equal(t, "cache", response.Source)
	require.NotNil(t, response.Meta)
	assert.Equal(t, 3000, response.Meta.Impressions)
	assert.Equal(t, 150, response.Meta.Clicks)
	assert.Equal(t, 300.0, response.Meta.Spend)
	assert.Len(t, response.Meta.Campaigns, 2)
}

func TestGetProviderMetrics_LiveFallback(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	adDataRepo := repomocks.NewMockAdDataRepository(ctrl)
	metaFetcher := mocks.NewMockMetaMetricsFetcher(ctrl)

	filters := periodFilters(t)

	adDataRepo.EXPECT().
		GetByAccountRange("act-1", *filters.StartDate, *filters.EndDate).
		Return([]*domain.AdDataRecord{}, nil)

	connectionRepo.EXPECT().
		FindActiveByProvider(domain.ProviderMeta).
		Return(&domain.Connection{ID: "conn-1", AccessToken: "token", Status: domain.ConnectionStatusActive}, nil)

	metaFetcher.EXPECT().
		GetAccountMetrics(gomock.Any(), "token", "act-1", filters).
		Return(&domain.MetaMetrics{AccountID: "act-1", Impressions: 500}, nil)

	service := NewService(connectionRepo, adDataRepo, metaFetcher, nil)

	response, err := service.GetProviderMetrics(context.Background(), domain.ProviderMeta, "act-1", filters)
	require.NoError(t, err)

	assert.Equal(t, "live", response.Source)
	assert.Equal(t, 500, response.Meta.Impressions)
}

func TestGetProviderMetrics_NoConnection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	adDataRepo := repomocks.NewMockAdDataRepository(ctrl)

	filters := periodFilters(t)

	adDataRepo.EXPECT().
		GetByAccountRange("act-1", *filters.StartDate, *filters.EndDate).
		Return(nil, nil)
	connectionRepo.EXPECT().
		FindActiveByProvider(domain.ProviderMeta).
		Return(nil, nil)

	service := NewService(connectionRepo, adDataRepo, nil, nil)

	_, err := service.GetProviderMetrics(context.Background(), domain.ProviderMeta, "act-1", filters)
	assert.ErrorIs(t, err, ErrNoConnection)
}

func TestGetProviderMetrics_InvalidPeriod(t *testing.T) {
	service := NewService(nil, nil, nil, nil)

	start, _ := time.Parse(time.DateOnly, "2026-08-07")
	end, _ := time.Parse(time.DateOnly, "2026-08-01")

	_, err := service.GetProviderMetrics(context.Background(), domain.ProviderMeta, "act-1", &domain.InsightFilters{
		StartDate: &start,
		EndDate:   &end,
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestGetCombinedMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	adDataRepo := repomocks.NewMockAdDataRepository(ctrl)

	filters := periodFilters(t)

	connectionRepo.EXPECT().
		GetActiveByTenantAndProvider("tenant-1", domain.ProviderMeta).
		Return(&domain.Connection{ID: "conn-1", Status: domain.ConnectionStatusActive}, nil)
	connectionRepo.EXPECT().
		GetActiveByTenantAndProvider("tenant-1", domain.ProviderGoogle).
		Return(&domain.Connection{ID: "conn-2", Status: domain.ConnectionStatusActive}, nil)

	adDataRepo.EXPECT().
		GetByConnectionRange("conn-1", *filters.StartDate, *filters.EndDate).
		Return([]*domain.AdDataRecord{
			campaignRecord("camp-1", "Campanha 1", 1000, 50, 100.0),
		}, nil)
	adDataRepo.EXPECT().
		GetByConnectionRange("conn-2", *filters.StartDate, *filters.EndDate).
		Return([]*domain.AdDataRecord{
			channelRecord(t, "Organic Search", 400, 6),
			channelRecord(t, "Direct", 100, 2),
		}, nil)

	service := NewService(connectionRepo, adDataRepo, nil, nil)

	response, err := service.GetCombinedMetrics(context.Background(), "tenant-1", filters)
	require.NoError(t, err)

	assert.Equal(t, "tenant-1", response.TenantID)
	assert.Equal(t, 1000, response.Metrics.Acquisition.Impressions)
	assert.Equal(t, 500, response.Metrics.Acquisition.Sessions)
	assert.Equal(t, 8, response.Metrics.Conversion.Conversions)
	assert.Len(t, response.Metrics.TrafficSources, 2)

	require.NotNil(t, response.Charts)
	assert.Equal(t, []string{"Direct", "Organic Search"}, response.Charts.TrafficSourceChart.Labels)
}

func TestGetCombinedMetrics_OnlyMetaConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
	adDataRepo := repomocks.NewMockAdDataRepository(ctrl)

	filters := periodFilters(t)

	connectionRepo.EXPECT().
		GetActiveByTenantAndProvider("tenant-1", domain.ProviderMeta).
		Return(&domain.Connection{ID: "conn-1", Status: domain.ConnectionStatusActive}, nil)
	connectionRepo.EXPECT().
		GetActiveByTenantAndProvider("tenant-1", domain.ProviderGoogle).
		Return(nil, nil)

	adDataRepo.EXPECT().
		GetByConnectionRange("conn-1", *filters.StartDate, *filters.EndDate).
		Return([]*domain.AdDataRecord{
			campaignRecord("camp-1", "Campanha 1", 1000, 50, 100.0),
		}, nil)

	service := NewService(connectionRepo, adDataRepo, nil, nil)

	response, err := service.GetCombinedMetrics(context.Background(), "tenant-1", filters)
	require.NoError(t, err)

	// Provider sem connection contribui com zero
	assert.Equal(t, 1000, response.Metrics.Acquisition.Impressions)
	assert.Zero(t, response.Metrics.Acquisition.Sessions)
	assert.Empty(t, response.Metrics.TrafficSources)
}
