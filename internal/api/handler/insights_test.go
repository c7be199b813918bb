package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseInsightFilters(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		wantErr bool
	}{
		{
			name:  "Período completo",
			query: "start_date=2024-06-01&end_date=2024-06-30",
		},
		{
			name:    "Sem start_date",
			query:   "end_date=2024-06-30",
			wantErr: true,
		},
		{
			name:    "Sem end_date",
			query:   "start_date=2024-06-01",
			wantErr: true,
		},
		{
			name:    "Sem nenhuma data",
			query:   "",
			wantErr: true,
		},
		{
			name:    "Data malformada",
			query:   "start_date=01/06/2024&end_date=2024-06-30",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/v1/accounts/ACC001/insights?"+tt.query, nil)

			filters, err := parseInsightFilters(r)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, filters)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, "2024-06-01", filters.StartDate.Format(time.DateOnly))
			assert.Equal(t, "2024-06-30", filters.EndDate.Format(time.DateOnly))
		})
	}
}

func TestWriteJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/v1/accounts/ACC001/insights", nil)
	w := httptest.NewRecorder()

	writeJSON(w, r, map[string]any{"total_revenue": 31.02})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"total_revenue": 31.02}`, w.Body.String())
}
