package models

import "github.com/shopspring/decimal"

// Money math goes through decimals so repeated add/remove cycles can't
// accumulate float drift in the displayed totals.

// LineSubtotal returns price × quantity for one cart or order line.
func LineSubtotal(price float64, quantity int) float64 {
	sub := decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
	f, _ := sub.Round(2).Float64()
	return f
}

// CartTotal sums price × quantity over all line items.
func CartTotal(items []CartItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.ProductPrice).
			Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	f, _ := total.Round(2).Float64()
	return f
}

// OrderTotal is CartTotal over order lines.
func OrderTotal(items []OrderItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(decimal.NewFromFloat(item.ProductPrice).
			Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	f, _ := total.Round(2).Float64()
	return f
}

// CartCount is the number of units in the cart (badge count), not the number
// of lines.
func CartCount(items []CartItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// FormatPrice renders an amount as display text, e.g. "$499.99".
func FormatPrice(amount float64) string {
	return "$" + decimal.NewFromFloat(amount).StringFixed(2)
}
