package merging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/commerce-insights-api/internal/domain"
)

func TestMerge_DeduplicatesByCompositeKey(t *testing.T) {
	erpOrders := []domain.Order{
		{ID: "1", Source: domain.SourceBling, Total: 100},
		{ID: "1", Source: domain.SourceBling, Total: 150}, // mesma chave, última vence
	}
	shopOrders := []domain.Order{
		{ID: "1", Source: domain.SourceNuvemshop, Total: 200}, // mesmo id local, origem diferente
	}

	merged := Merge(erpOrders, shopOrders)

	assert.Len(t, merged, 2)
	assert.Equal(t, 150.0, merged[0].Total, "a última ocorrência da mesma origem deve vencer")
	assert.Equal(t, 200.0, merged[1].Total, "ids iguais de origens diferentes não colidem")
}

func TestMerge_PreservesInsertionPosition(t *testing.T) {
	erpOrders := []domain.Order{
		{ID: "a", Source: domain.SourceBling, Total: 1},
		{ID: "b", Source: domain.SourceBling, Total: 2},
		{ID: "a", Source: domain.SourceBling, Total: 9}, // sobrescreve na posição original
	}

	merged := Merge(erpOrders, nil)

	assert.Len(t, merged, 2)
	assert.Equal(t, "a", merged[0].ID)
	assert.Equal(t, 9.0, merged[0].Total)
	assert.Equal(t, "b", merged[1].ID)
}

func TestMerge_DropsOrdersWithoutID(t *testing.T) {
	erpOrders := []domain.Order{
		{ID: "", Total: 100},
		{ID: "1", Source: domain.SourceBling, Total: 50},
	}
	shopOrders := []domain.Order{
		{ID: "", Total: 30},
	}

	merged := Merge(erpOrders, shopOrders)

	assert.Len(t, merged, 1)
	assert.Equal(t, "1", merged[0].ID)
}

func TestMerge_FillsMissingSource(t *testing.T) {
	erpOrders := []domain.Order{{ID: "1"}}
	shopOrders := []domain.Order{{ID: "2"}}

	merged := Merge(erpOrders, shopOrders)

	assert.Len(t, merged, 2)
	assert.Equal(t, domain.SourceBling, merged[0].Source)
	assert.Equal(t, domain.SourceNuvemshop, merged[1].Source)
}

func TestMerge_EmptyInputs(t *testing.T) {
	assert.Empty(t, Merge(nil, nil))
	assert.Empty(t, Merge([]domain.Order{}, []domain.Order{}))
}
