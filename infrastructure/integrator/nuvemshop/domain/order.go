package nuvemshopdomain

import "encoding/json"

// Order é um pedido como a Nuvemshop devolve: datas ISO 8601 e valores
// monetários serializados como string. O payload original fica retido em
// Raw para a resolução de identidade de último recurso.
type Order struct {
	ID        int       `json:"id,omitempty"`
	CreatedAt string    `json:"created_at,omitempty"`
	Total     string    `json:"total,omitempty"`
	Status    string    `json:"status,omitempty"`
	Customer  Customer  `json:"customer,omitempty"`
	Products  []Product `json:"products,omitempty"`

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

type Customer struct {
	ID             int    `json:"id,omitempty"`
	Name           string `json:"name,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Identification string `json:"identification,omitempty"`
}

type Product struct {
	SKU      string `json:"sku,omitempty"`
	Name     string `json:"name,omitempty"`
	Quantity int    `json:"quantity,omitempty"`
	Price    string `json:"price,omitempty"`
}
