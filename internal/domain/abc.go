package domain

// Classes da curva ABC de produtos.
const (
	ABCClassA = "A"
	ABCClassB = "B"
	ABCClassC = "C"
)

// ABCProduct é a posição de um produto na curva ABC de receita do período.
type ABCProduct struct {
	SKU           string  `json:"sku"`
	Description   string  `json:"description,omitempty"`
	Revenue       float64 `json:"revenue"`
	Quantity      float64 `json:"quantity"`
	RevenueShare  float64 `json:"revenue_share"`
	CumulativePct float64 `json:"cumulative_pct"`
	Class         string  `json:"class"`
}
