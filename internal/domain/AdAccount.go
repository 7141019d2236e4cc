package domain

type AdAccountStatus string

const (
	AdAccountStatusActive   AdAccountStatus = "ACTIVE"
	AdAccountStatusDisabled AdAccountStatus = "DISABLED"
	AdAccountStatusPending  AdAccountStatus = "PENDING"
	AdAccountStatusUnknown  AdAccountStatus = "UNKNOWN"
)

// AdAccount é uma conta de anúncio enumerada sob uma Connection.
// Não é persistida: sempre consultada ao vivo no provider.
type AdAccount struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	BusinessName string          `json:"business_name,omitempty"`
	Status       AdAccountStatus `json:"status"`
}

// MapMetaAccountStatus converte o account_status numérico da Graph API.
// 1 e 2 são operáveis para leitura e tratados como ativas; 3 indica conta
// desabilitada; 101 indica fechamento pendente.
func MapMetaAccountStatus(code int) AdAccountStatus {
	switch code {
	case 1, 2:
		return AdAccountStatusActive
	case 3:
		return AdAccountStatusDisabled
	case 101:
		return AdAccountStatusPending
	default:
		return AdAccountStatusUnknown
	}
}

// FilterActiveAdAccounts mantém apenas contas cujo status mapeado é ACTIVE
func FilterActiveAdAccounts(accounts []*AdAccount) []*AdAccount {
	active := make([]*AdAccount, 0, len(accounts))
	for _, acc := range accounts {
		if acc.Status == AdAccountStatusActive {
			active = append(active, acc)
		}
	}
	return active
}

// SelectDefaultAdAccount retorna a única conta ativa quando existe exatamente
// uma; caso contrário retorna nil e a escolha fica com o usuário.
func SelectDefaultAdAccount(accounts []*AdAccount) *AdAccount {
	active := FilterActiveAdAccounts(accounts)
	if len(active) == 1 {
		return active[0]
	}
	return nil
}

type AdAccountListResponse struct {
	ConnectionID   string       `json:"connection_id"`
	Accounts       []*AdAccount `json:"accounts"`
	DefaultAccount *AdAccount   `json:"default_account,omitempty"`
}
