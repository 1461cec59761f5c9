package marketv1

// Market is the static metadata of one trading pair.
type Market struct {
	Symbol          string `json:"symbol"`
	BaseCurrency    string `json:"baseCurrency"`
	QuoteCurrency   string `json:"quoteCurrency"`
	PricePrecision  int    `json:"pricePrecision"`
	AmountPrecision int    `json:"amountPrecision"`
	Active          bool   `json:"active"`
}
