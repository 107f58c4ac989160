package payment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransaction_HasAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount any
		want   bool
	}{
		{"absent", nil, false},
		{"zero number", json.Number("0"), false},
		{"zero decimal", json.Number("0.00"), false},
		{"empty string", "", false},
		{"false", false, false},
		{"number", json.Number("100"), true},
		{"string", "100", true},
		{"string zero", "0", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &Transaction{Amount: tt.amount}
			assert.Equal(t, tt.want, tx.HasAmount())
		})
	}
}

func TestTransaction_AmountString(t *testing.T) {
	tests := []struct {
		amount any
		want   string
	}{
		{json.Number("100"), "100"},
		{json.Number("100.0"), "100"},
		{json.Number("100.50"), "100.5"},
		{json.Number("1e2"), "100"},
		{json.Number("-7.25"), "-7.25"},
		{"100.00", "100.00"},
		{true, "true"},
	}

	for _, tt := range tests {
		tx := &Transaction{Amount: tt.amount}
		assert.Equal(t, tt.want, tx.AmountString())
	}
}

func TestTransaction_StatusString(t *testing.T) {
	assert.Equal(t, "", (&Transaction{}).StatusString())
	assert.Equal(t, "success", (&Transaction{Status: "SUCCESS"}).StatusString())
	assert.Equal(t, "success_pending_settlement", (&Transaction{Status: "Success_Pending_Settlement"}).StatusString())
	assert.Equal(t, "1", (&Transaction{Status: json.Number("1")}).StatusString())
}

func TestTransaction_Reference(t *testing.T) {
	assert.False(t, (&Transaction{}).HasReference())
	assert.True(t, (&Transaction{Reference: "R1"}).HasReference())
	assert.Equal(t, "12345", (&Transaction{Reference: json.Number("12345")}).ReferenceString())
}
