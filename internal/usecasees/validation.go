package usecasees

import (
	"unicode"
	"unicode/utf8"

	"futuresbot/internal/usecasees/structs"
)

const (
	minSymbolLength = 3

	reasonSymbol         = "Invalid symbol format"
	reasonQuantity       = "Quantity must be positive"
	reasonPrice          = "Price must be positive"
	reasonPriceStopPrice = "Price and stop price must be positive"
	reasonAllPrices      = "All prices must be positive"
	reasonDurationSlices = "Duration and slices must be positive"
	reasonGridPrices     = "Prices, grids must be positive"
	reasonGridBounds     = "Lower price must be less than upper price"
)

// Rules run in a fixed order and stop at the first failure:
// quantity, price family, grid bounds, then symbol shape for market and limit orders.

func ValidateMarket(r *structs.MarketOrderRequest) error {
	if err := checkQuantity(r.Quantity); err != nil {
		return err
	}

	return checkSymbol(r.Symbol)
}

func ValidateLimit(r *structs.LimitOrderRequest) error {
	if err := checkQuantity(r.Quantity); err != nil {
		return err
	}

	if err := checkPrices(reasonPrice, priceField{"price", r.Price}); err != nil {
		return err
	}

	return checkSymbol(r.Symbol)
}

func ValidateStopLimit(r *structs.StopLimitOrderRequest) error {
	if err := checkQuantity(r.Quantity); err != nil {
		return err
	}

	return checkPrices(reasonPriceStopPrice,
		priceField{"price", r.Price},
		priceField{"stop_price", r.StopPrice},
	)
}

func ValidateOCO(r *structs.OCOOrderRequest) error {
	if err := checkQuantity(r.Quantity); err != nil {
		return err
	}

	return checkPrices(reasonAllPrices,
		priceField{"limit_price", r.LimitPrice},
		priceField{"stop_price", r.StopPrice},
		priceField{"stop_limit_price", r.StopLimitPrice},
	)
}

func ValidateTWAP(r *structs.TWAPOrderRequest) error {
	if err := checkQuantity(r.Quantity); err != nil {
		return err
	}

	if err := checkPrices(reasonPrice, priceField{"price", r.Price}); err != nil {
		return err
	}

	return checkCounts(reasonDurationSlices,
		countField{"duration", r.Duration},
		countField{"slices", r.Slices},
	)
}

func ValidateGrid(r *structs.GridOrderRequest) error {
	if err := checkQuantity(r.Quantity); err != nil {
		return err
	}

	if err := checkPrices(reasonGridPrices,
		priceField{"lower_price", r.LowerPrice},
		priceField{"upper_price", r.UpperPrice},
	); err != nil {
		return err
	}

	if err := checkCounts(reasonGridPrices, countField{"grids", r.Grids}); err != nil {
		return err
	}

	if *r.LowerPrice >= *r.UpperPrice {
		return structs.NewValidationError("lower_price", reasonGridBounds)
	}

	return nil
}

type priceField struct {
	name  string
	value *float64
}

type countField struct {
	name  string
	value *int
}

func checkQuantity(q *float64) error {
	return checkPrices(reasonQuantity, priceField{"quantity", q})
}

func checkPrices(reason string, fields ...priceField) error {
	for _, f := range fields {
		if f.value == nil || !(*f.value > 0) {
			return structs.NewValidationError(f.name, reason)
		}
	}

	return nil
}

func checkCounts(reason string, fields ...countField) error {
	for _, f := range fields {
		if f.value == nil || *f.value <= 0 {
			return structs.NewValidationError(f.name, reason)
		}
	}

	return nil
}

// checkSymbol accepts letters only, at least minSymbolLength of them.
func checkSymbol(symbol string) error {
	if utf8.RuneCountInString(symbol) < minSymbolLength {
		return structs.NewValidationError("symbol", reasonSymbol)
	}

	for _, r := range symbol {
		if !unicode.IsLetter(r) {
			return structs.NewValidationError("symbol", reasonSymbol)
		}
	}

	return nil
}
