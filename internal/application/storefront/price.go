package storefront

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PriceFormatter formatea precios para display según locale y moneda de la
// tienda. Los montos siguen viajando como decimal en el JSON; el string
// formateado es solo presentación.
type PriceFormatter struct {
	printer *message.Printer
	unit    currency.Unit
}

// NewPriceFormatter construye el formateador. Locale o moneda inválidos caen
// a en-US / USD.
func NewPriceFormatter(locale, currencyCode string) *PriceFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.AmericanEnglish
	}
	unit, err := currency.ParseISO(currencyCode)
	if err != nil {
		unit = currency.USD
	}
	return &PriceFormatter{printer: message.NewPrinter(tag), unit: unit}
}

// Format devuelve el precio con símbolo de moneda, ej. "$ 80.00".
func (f *PriceFormatter) Format(amount decimal.Decimal) string {
	v, _ := amount.Float64()
	return f.printer.Sprintf("%v", currency.Symbol(f.unit.Amount(v)))
}
