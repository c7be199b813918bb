package domain

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
)

// Account é uma loja/cliente do painel. Cada conta aponta para um cadastro
// no Bling (via CNPJ e nome do secret com o token de acesso) e, quando a
// loja vende online, para uma loja na Nuvemshop.
type Account struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Nickname    *string       `json:"nickname"`
	CNPJ        *string       `json:"cnpj"`
	SecretName  *string       `json:"secret_name"`
	StoreID     *string       `json:"store_id"`
	Status      AccountStatus `json:"status"`
	B2BSellers  []string      `json:"b2b_sellers,omitempty"`
	HistoryDays int           `json:"history_days,omitempty"`
}

type AccountResponse struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Nickname *string       `json:"nickname"`
	CNPJ     *string       `json:"cnpj"`
	HasToken bool          `json:"hasToken"`
	Status   AccountStatus `json:"status"`
}

type UpdateAccountRequest struct {
	ID         string  `json:"id"`
	Nickname   *string `json:"nickname,omitempty"`
	CNPJ       *string `json:"cnpj,omitempty"`
	SecretName *string `json:"secret_name,omitempty"`
	StoreID    *string `json:"store_id,omitempty"`
	Status     *string `json:"status,omitempty"`

	// Token do Bling enviado pelo painel. É validado contra a API antes de
	// ser aceito e nunca é persistido no banco.
	Token *string `json:"token,omitempty"`
}

type UpdateAccountResponse struct {
	ID         string  `json:"id"`
	Nickname   *string `json:"nickname,omitempty"`
	CNPJ       *string `json:"cnpj,omitempty"`
	SecretName *string `json:"secret_name,omitempty"`
	StoreID    *string `json:"store_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}
