package rfm

import (
	"sort"
	"time"

	"github.com/vfg2006/commerce-insights-api/internal/domain"
	"github.com/vfg2006/commerce-insights-api/internal/usecases/identity"
	"github.com/vfg2006/commerce-insights-api/pkg/utils"
)

// Score neutro devolvido quando a população de referência está vazia, para
// nunca dividir por zero.
const emptyPopulationScore = 2

// customerAccumulator agrega os pedidos de uma mesma identidade durante uma
// execução. Vive só dentro de Compute.
type customerAccumulator struct {
	key       string
	name      string
	email     string
	phone     string
	lastOrder time.Time
	frequency int
	monetary  float64
}

// Compute calcula Recência/Frequência/Valor por cliente sobre o conjunto de
// pedidos informado, usando o relógio de parede como referência de recência.
func Compute(orders []domain.Order) []*domain.CustomerRFM {
	return ComputeAt(orders, time.Now())
}

// ComputeAt é a variante com instante de referência explícito, usada pelos
// testes e pelos snapshots retroativos.
//
// Os quartis são recalculados a cada execução contra a população do próprio
// conjunto analisado: RFM é relativo à coorte, não a um corte fixo de
// negócio, e muda quando o período ou o filtro de canal muda.
func ComputeAt(orders []domain.Order, now time.Time) []*domain.CustomerRFM {
	if len(orders) == 0 {
		return []*domain.CustomerRFM{}
	}

	accumulators := groupByIdentity(orders)

	customers := make([]*domain.CustomerRFM, 0, len(accumulators))
	for _, acc := range accumulators {
		recency := int(now.Sub(acc.lastOrder).Hours() / 24)
		if recency < 0 {
			recency = 0
		}

		name := acc.name
		if name == "" {
			name = "Cliente"
		}

		customers = append(customers, &domain.CustomerRFM{
			Key:           acc.key,
			Name:          name,
			Email:         acc.email,
			Phone:         acc.phone,
			LastOrderDate: acc.lastOrder,
			RecencyDays:   recency,
			Frequency:     acc.frequency,
			Monetary:      utils.RoundWithTwoDecimalPlace(acc.monetary),
			TicketAvg:     utils.RoundWithTwoDecimalPlace(acc.monetary / float64(acc.frequency)),
		})
	}

	scoreCustomers(customers)

	// Ordena por valor monetário para a tabela do painel; empates por chave
	// mantêm a saída estável entre execuções.
	sort.Slice(customers, func(i, j int) bool {
		if customers[i].Monetary != customers[j].Monetary {
			return customers[i].Monetary > customers[j].Monetary
		}
		return customers[i].Key < customers[j].Key
	})

	return customers
}

func groupByIdentity(orders []domain.Order) []*customerAccumulator {
	byKey := make(map[string]*customerAccumulator)
	ordered := make([]*customerAccumulator, 0)

	for _, order := range orders {
		key := identity.Key(order)

		acc, ok := byKey[key]
		if !ok {
			acc = &customerAccumulator{key: key}
			byKey[key] = acc
			ordered = append(ordered, acc)
		}

		// Dados de exibição vêm do primeiro pedido que os fornecer.
		if acc.name == "" {
			if name := identity.DisplayName(order); name != "Cliente" {
				acc.name = name
			}
		}
		if acc.email == "" {
			acc.email = identity.Email(order)
		}
		if acc.phone == "" {
			acc.phone = identity.Phone(order)
		}

		orderDate, _ := identity.OrderDate(order)
		if orderDate.After(acc.lastOrder) {
			acc.lastOrder = orderDate
		}

		acc.frequency++
		acc.monetary += order.Total
	}

	return ordered
}

// scoreCustomers atribui os scores 1-4 por quartil. Recência é invertida:
// quem comprou há menos dias pontua mais alto, via 5-quartil com clamp.
func scoreCustomers(customers []*domain.CustomerRFM) {
	recencies := make([]float64, 0, len(customers))
	frequencies := make([]float64, 0, len(customers))
	monetaries := make([]float64, 0, len(customers))

	for _, c := range customers {
		recencies = append(recencies, float64(c.RecencyDays))
		frequencies = append(frequencies, float64(c.Frequency))
		monetaries = append(monetaries, float64(c.Monetary))
	}

	for _, c := range customers {
		c.R = clampScore(5 - quartileScore(float64(c.RecencyDays), recencies))
		c.F = clampScore(quartileScore(float64(c.Frequency), frequencies))
		c.M = clampScore(quartileScore(c.Monetary, monetaries))
	}
}

// quartileScore devolve o quartil (1-4) de value dentro da população, pela
// fração da população ordenada que fica igual ou abaixo dele.
func quartileScore(value float64, population []float64) int {
	if len(population) == 0 {
		return emptyPopulationScore
	}

	atOrBelow := 0
	for _, v := range population {
		if v <= value {
			atOrBelow++
		}
	}

	fraction := float64(atOrBelow) / float64(len(population))
	switch {
	case fraction <= 0.25:
		return 1
	case fraction <= 0.50:
		return 2
	case fraction <= 0.75:
		return 3
	default:
		return 4
	}
}

func clampScore(score int) int {
	if score < 1 {
		return 1
	}
	if score > 4 {
		return 4
	}
	return score
}
