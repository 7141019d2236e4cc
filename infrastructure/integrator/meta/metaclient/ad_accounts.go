package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/integrator/meta/domain"
)

type ResponseAdAccount struct {
	Data   []metadomain.AdAccount `json:"data"`
	Paging metadomain.Paging      `json:"paging"`
}

// GetAdAccounts lista as contas de anúncio visíveis para o token
// TODO paginar quando o usuário tiver mais de 100 contas
func (c *MetaClient) GetAdAccounts(ctx context.Context, accessToken string) ([]metadomain.AdAccount, error) {
	params := url.Values{}
	params.Add("fields", "id,account_id,name,account_status,business{id,name}")
	params.Add("limit", "100")
	params.Add("access_token", accessToken)

	body, err := c.get(ctx, fmt.Sprintf("%s/me/adaccounts?%s", c.Cfg.Meta.URL, params.Encode()))
	if err != nil {
		return nil, err
	}

	var response ResponseAdAccount
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	if response.Data == nil {
		return nil, fmt.Errorf("nenhuma conta de anúncio retornada")
	}

	return response.Data, nil
}
