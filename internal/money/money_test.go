package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/bolao/internal/money"
)

func TestParseBRL(t *testing.T) {
	type testCase struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}

	tests := []testCase{
		{name: "Currency prefix", input: "R$ 30,00", want: 3000},
		{name: "Thousands", input: "R$ 1.234,56", want: 123456},
		{name: "Large", input: "1.234.567,89", want: 123456789},
		{name: "Negative", input: "-588,74", want: -58874},
		{name: "Negative after symbol", input: "R$ -5,00", want: -500},
		{name: "Dot decimal", input: "30.00", want: 3000},
		{name: "Single decimal digit", input: "12,5", want: 1250},
		{name: "Integer", input: "R$ 30", want: 3000},
		{name: "Dot thousands without comma", input: "1.234", want: 123400},
		{name: "Debit marker", input: "45,00 D", want: -4500},
		{name: "Debit marker with symbol", input: "R$ 1.045,00D", want: -104500},
		{name: "Credit marker", input: "45,00 C", want: 4500},
		{name: "Parenthesized", input: "(45,00)", want: -4500},
		{name: "Parenthesized after symbol", input: "R$ (45,00)", want: -4500},
		{name: "Marker only", input: "D", wantErr: true},
		{name: "Empty", input: "", wantErr: true},
		{name: "Symbol only", input: "R$", wantErr: true},
		{name: "Text", input: "abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := money.ParseBRL(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, money.ErrInvalidAmount)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatBRL(t *testing.T) {
	assert.Equal(t, "R$ 30,00", money.FormatBRL(3000))
	assert.Equal(t, "R$ 12,50", money.FormatBRL(1250))
	assert.Equal(t, "R$ 0,05", money.FormatBRL(5))
	assert.Equal(t, "R$ 1.234,56", money.FormatBRL(123456))
	assert.Equal(t, "R$ 1.234.567,89", money.FormatBRL(123456789))
	assert.Equal(t, "R$ -10,00", money.FormatBRL(-1000))
}

func TestString(t *testing.T) {
	assert.Equal(t, "30", money.String(3000))
	assert.Equal(t, "12.5", money.String(1250))
	assert.Equal(t, "0.01", money.String(1))
}

func TestFloatConversions(t *testing.T) {
	assert.Equal(t, int64(3000), money.FromFloat(30.0))
	assert.Equal(t, int64(1999), money.FromFloat(19.99))
	assert.Equal(t, int64(1250), money.FromFloat(12.499999))
	assert.InDelta(t, 30.0, money.ToFloat(3000), 0.0001)
}
