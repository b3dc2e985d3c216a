// Package currency отвечает за пересчёт и форматирование цен в валюте отображения.
package currency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrUnknownCurrency возвращается при запросе валюты, отсутствующей в таблице курсов.
var ErrUnknownCurrency = errors.New("unknown currency")

// Converter хранит таблицу курсов относительно базовой валюты каталога (USD)
// и выбранную валюту отображения.
type Converter struct {
	display string
	rates   map[string]decimal.Decimal
	symbols map[string]string
}

// NewConverter создаёт конвертер с валютой отображения display.
func NewConverter(display string) (*Converter, error) {
	c := &Converter{
		display: display,
		rates: map[string]decimal.Decimal{
			"USD": decimal.NewFromInt(1),
			"EUR": decimal.RequireFromString("0.92"),
			"GBP": decimal.RequireFromString("0.79"),
			"RUB": decimal.RequireFromString("91.50"),
		},
		symbols: map[string]string{
			"USD": "$",
			"EUR": "€",
			"GBP": "£",
			"RUB": "₽",
		},
	}

	if _, ok := c.rates[display]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCurrency, display)
	}

	return c, nil
}

// Display возвращает код валюты отображения.
func (c *Converter) Display() string {
	return c.display
}

// Convert пересчитывает сумму из базовой валюты каталога в валюту отображения.
func (c *Converter) Convert(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(c.rates[c.display]).Round(2)
}

// Format пересчитывает сумму и возвращает строку для показа пользователю.
func (c *Converter) Format(amount decimal.Decimal) string {
	return c.symbols[c.display] + c.Convert(amount).StringFixed(2)
}
