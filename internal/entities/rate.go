package entities

// ExchangeRateRecord is one base/date/rates snapshot as stored in the
// exchange_rates collection. Records are read-only: filtering always builds
// a new value and never touches the original.
type ExchangeRateRecord struct {
	Base  string             `json:"base" firestore:"base"`
	Date  string             `json:"date" firestore:"date"`
	Rates map[string]float64 `json:"rates" firestore:"rates"`
}
