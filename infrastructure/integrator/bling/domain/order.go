package blingdomain

import (
	"encoding/json"
	"time"
)

// Order é um pedido de venda como o Bling devolve: datas em dd/mm/yyyy e
// documento do cliente com pontuação. O payload original fica retido em Raw
// para a resolução de identidade de último recurso.
type Order struct {
	ID       int     `json:"id,omitempty"`
	Number   int     `json:"numero,omitempty"`
	Date     string  `json:"data,omitempty"`
	Total    float64 `json:"total,omitempty"`
	Status   string  `json:"situacao,omitempty"`
	Contact  Contact `json:"contato,omitempty"`
	Seller   Seller  `json:"vendedor,omitempty"`
	Items    []Item  `json:"itens,omitempty"`
	StoreKey string  `json:"loja,omitempty"`

	Raw map[string]any `json:"-"`
}

// UnmarshalJSON decodifica os campos tipados e guarda o payload bruto.
func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	var typed alias

	if err := json.Unmarshal(data, &typed); err != nil {
		return err
	}

	*o = Order(typed)
	return json.Unmarshal(data, &o.Raw)
}

type Contact struct {
	ID             int    `json:"id,omitempty"`
	Name           string `json:"nome,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"telefone,omitempty"`
	DocumentNumber string `json:"numeroDocumento,omitempty"`
	Type           string `json:"tipo,omitempty"`
}

type Seller struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"nome,omitempty"`
}

type Item struct {
	Code        string  `json:"codigo,omitempty"`
	Description string  `json:"descricao,omitempty"`
	Quantity    float64 `json:"quantidade,omitempty"`
	Value       float64 `json:"valor,omitempty"`
}

type GetOrdersParams struct {
	CNPJ       string
	SecretName string
}

type CheckConnectionParams struct {
	CNPJ      string
	Token     string
	StartDate time.Time
	EndDate   time.Time
}
