package entities

type MarketPrice struct {
	NameKey string  `json:"nameKey"`
	Price   float64 `json:"price"`
	Change  float64 `json:"change"` // percent vs. yesterday
	Unit    string  `json:"unit"`
}
