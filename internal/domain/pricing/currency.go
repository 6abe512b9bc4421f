package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/depastori/clinica-psi/internal/httperr"
)

const (
	CurrencyBRL = "BRL"
	CurrencyEUR = "EUR"
)

// valor padrão da hora quando nada foi configurado
var fallbackRates = map[string]decimal.Decimal{
	CurrencyBRL: decimal.NewFromInt(150),
	CurrencyEUR: decimal.NewFromInt(80),
}

// NormalizeCurrency aceita BRL/EUR em qualquer caixa; vazio vira def.
func NormalizeCurrency(s, def string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(s))
	if c == "" {
		c = def
	}
	if _, ok := fallbackRates[c]; !ok {
		return "", httperr.ErrValidation("invalid_currency", "Moeda inválida. Use BRL ou EUR.")
	}
	return c, nil
}

// RoundMoney arredonda para centavos, a escala das colunas numeric(12,2).
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

func FallbackRate(currency string) decimal.Decimal {
	if r, ok := fallbackRates[currency]; ok {
		return r
	}
	return fallbackRates[CurrencyBRL]
}

func Symbol(currency string) string {
	if currency == CurrencyEUR {
		return "€"
	}
	return "R$"
}
