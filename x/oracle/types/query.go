package types

type GetAllCurrencyPairsRequest struct{}

type GetAllCurrencyPairsResponse struct {
	CurrencyPairs []CurrencyPair `json:"currency_pairs"`
}

type GetPriceRequest struct {
	CurrencyPair CurrencyPair `json:"currency_pair"`
}

type GetPriceResponse struct {
	Price    QuotePrice `json:"price"`
	Nonce    uint64     `json:"nonce"`
	Decimals uint64     `json:"decimals"`
	Id       uint64     `json:"id"`
}

// GetPricesRequest selects pairs by their "BASE/QUOTE" names.
type GetPricesRequest struct {
	CurrencyPairIds []string `json:"currency_pair_ids"`
}

type GetPricesResponse struct {
	Prices []GetPriceResponse `json:"prices"`
}

type GetCurrencyPairMappingRequest struct{}

// CurrencyPairMapping pairs a numeric id with its currency pair.
type CurrencyPairMapping struct {
	Id           uint64       `json:"id"`
	CurrencyPair CurrencyPair `json:"currency_pair"`
}

// GetCurrencyPairMappingResponse lists the id mapping ordered by id.
type GetCurrencyPairMappingResponse struct {
	CurrencyPairMapping []CurrencyPairMapping `json:"currency_pair_mapping"`
}
