package metaclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	metadomain "github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/integrator/meta/domain"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
)

type ResponseInsight struct {
	Data   []metadomain.Insight `json:"data"`
	Paging metadomain.Paging    `json:"paging"`
}

// ErrNoInsightData indica período sem entrega de anúncios (não é falha)
var ErrNoInsightData = errors.New("nenhum insight para o período")

const campaignInsightFields = "account_id,account_name,campaign_id,campaign_name,objective," +
	"impressions,clicks,spend,reach,frequency,ctr,cpc,cpm,actions,cost_per_action_type"

const accountInsightFields = "account_id,account_name,objective," +
	"impressions,clicks,spend,reach,frequency,ctr,cpc,cpm,actions,cost_per_action_type"

// GetCampaignInsights busca os insights de uma campanha no período
func (c *MetaClient) GetCampaignInsights(ctx context.Context, accessToken, campaignID string, filters *domain.InsightFilters) (*metadomain.Insight, error) {
	return c.getInsights(ctx, accessToken, campaignID, campaignInsightFields, filters)
}

// GetAccountInsights busca os insights agregados da conta no período
func (c *MetaClient) GetAccountInsights(ctx context.Context, accessToken, accountID string, filters *domain.InsightFilters) (*metadomain.Insight, error) {
	return c.getInsights(ctx, accessToken, "act_"+accountID, accountInsightFields, filters)
}

func (c *MetaClient) getInsights(ctx context.Context, accessToken, objectID, fields string, filters *domain.InsightFilters) (*metadomain.Insight, error) {
	timeRange := fmt.Sprintf(
		"{\"since\":\"%s\",\"until\":\"%s\"}",
		filters.StartDate.Format(time.DateOnly),
		filters.EndDate.Format(time.DateOnly),
	)

	params := url.Values{}
	params.Add("fields", fields)
	params.Add("time_range", timeRange)
	params.Add("access_token", accessToken)

	body, err := c.get(ctx, fmt.Sprintf("%s/%s/insights?%s", c.Cfg.Meta.URL, objectID, params.Encode()))
	if err != nil {
		return nil, err
	}

	var response ResponseInsight
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	if len(response.Data) == 0 {
		return nil, ErrNoInsightData
	}

	return &response.Data[0], nil
}
