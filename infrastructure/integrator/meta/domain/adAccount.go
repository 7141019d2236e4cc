package metadomain

// AdAccount é a conta de anúncio como retornada pela Graph API.
// AccountStatus é o código numérico do Meta (1, 2, 3, 101...).
type AdAccount struct {
	ID            string   `json:"id"`
	AccountID     string   `json:"account_id"`
	Name          string   `json:"name"`
	AccountStatus int      `json:"account_status"`
	Business      Business `json:"business"`
}

type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Identity é a resposta do endpoint /me
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
