package metaclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	metadomain "github.com/marcussviniciusa/speed-funnels-sub000/infrastructure/integrator/meta/domain"
)

// GetIdentity consulta o endpoint /me para validar o token e obter a
// identidade da conta autenticada
func (c *MetaClient) GetIdentity(ctx context.Context, accessToken string) (*metadomain.Identity, error) {
	if accessToken == "" {
		return nil, fmt.Errorf("token não pode ser vazio")
	}

	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("access_token", accessToken)

	body, err := c.get(ctx, fmt.Sprintf("%s/me?%s", c.Cfg.Meta.URL, params.Encode()))
	if err != nil {
		return nil, err
	}

	var identity metadomain.Identity
	if err := json.Unmarshal(body, &identity); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	if identity.ID == "" {
		return nil, fmt.Errorf("identidade retornada pela API é vazia")
	}

	return &identity, nil
}
