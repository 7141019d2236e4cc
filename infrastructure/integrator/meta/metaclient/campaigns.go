package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/integrator/meta/domain"
)

type ResponseCampaign struct {
	Data   []metadomain.Campaign `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetCampaignsByAccountID lista as campanhas de uma conta de anúncio
func (c *MetaClient) GetCampaignsByAccountID(ctx context.Context, accessToken, accountID string) ([]metadomain.Campaign, error) {
	params := url.Values{}
	params.Add("fields", "id,name,status")
	params.Add("limit", "100")
	params.Add("access_token", accessToken)

	body, err := c.get(ctx, fmt.Sprintf("%s/act_%s/campaigns?%s", c.Cfg.Meta.URL, accountID, params.Encode()))
	if err != nil {
		return nil, err
	}

	var response ResponseCampaign
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return response.Data, nil
}
