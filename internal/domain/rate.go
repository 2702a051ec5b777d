package domain

// DefaultCurrency is used when a rate is configured without a currency code.
const DefaultCurrency = "USD"

// Rate is an hourly billing rate for a project. Currencies are recorded
// verbatim and never converted; reports total per currency code.
type Rate struct {
	Hourly   float64
	Currency string
}

// RateTable maps project names to their configured rates. A project absent
// from the table simply has no wage computed.
type RateTable map[string]Rate

// Lookup returns the rate for a project with the currency defaulted.
func (rt RateTable) Lookup(project string) (Rate, bool) {
	rate, ok := rt[project]
	if !ok {
		return Rate{}, false
	}
	if rate.Currency == "" {
		rate.Currency = DefaultCurrency
	}
	return rate, true
}
