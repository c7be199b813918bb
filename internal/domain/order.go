package domain

// Tags de origem dos pedidos. A unicidade de um pedido é garantida pela
// combinação (origem, id local) e nunca pelo id sozinho, já que as duas
// plataformas reutilizam o mesmo espaço numérico de ids.
const (
	SourceBling     = "bling"
	SourceNuvemshop = "nuvemshop"
)

// Order é um pedido bruto recebido de uma das origens. Todos os campos de
// identificação do cliente são opcionais e podem estar ausentes de forma
// independente, dependendo da versão da API e do nível de enriquecimento
// do cadastro na plataforma de origem.
type Order struct {
	ID     string  `json:"id"`
	Source string  `json:"source"`
	Date   string  `json:"date"`
	Total  float64 `json:"total"`
	Status string  `json:"status"`

	// CustomerKey é uma identidade pré-computada pela origem, quando existe.
	// Pode ser um valor sintético genérico ("unknown_*", "wake_customer_*").
	CustomerKey     string `json:"customer_key,omitempty"`
	CustomerCpfCnpj string `json:"customer_cpf_cnpj,omitempty"`
	CustomerName    string `json:"customer_name,omitempty"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	CustomerPhone   string `json:"customer_phone,omitempty"`
	Seller          string `json:"seller,omitempty"`

	Items []OrderItem `json:"items,omitempty"`

	// Raw carrega o payload original da origem. Usado apenas como última
	// alternativa na resolução de identidade, nunca como fonte primária.
	Raw map[string]any `json:"raw,omitempty"`
}

// OrderItem é um item de pedido, usado apenas pela curva ABC de produtos.
type OrderItem struct {
	SKU         string  `json:"sku"`
	Description string  `json:"description,omitempty"`
	Quantity    float64 `json:"quantity"`
	Total       float64 `json:"total"`
}
