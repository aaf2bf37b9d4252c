// Package profitcalc holds the money arithmetic of the profit allocation
// engine: expected profit, target capping and referral gross-up. Pure
// functions, no I/O, so every rule is unit-testable without a database.
//
// Amounts move through the system as float64 over decimal(18,2) columns;
// every function here rounds its result to 2 decimal places, half up.
package profitcalc

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Round2 rounds x to two decimal places, half up.
func Round2(x float64) float64 {
	f, _ := decimal.NewFromFloat(x).Round(2).Float64()
	return f
}

// ExpectedProfit is the investor's share of an order total: total*pct/100.
func ExpectedProfit(total, pct float64) float64 {
	d := decimal.NewFromFloat(total).
		Mul(decimal.NewFromFloat(pct)).
		Div(hundred)
	f, _ := d.Round(2).Float64()
	return f
}

// Commission owed to a referral partner on an adjusted amount, at ratePct.
func Commission(adjusted, ratePct float64) float64 {
	return ExpectedProfit(adjusted, ratePct)
}

// CapByTarget limits amount to the capacity left under a positive target.
// A target of 0 means unlimited and leaves amount unchanged. Callers must
// reject a result <= 0: it means the investor has no capacity left.
func CapByTarget(amount, target, earned float64) float64 {
	if target <= 0 {
		return amount
	}
	remaining := Round2(target - earned)
	if remaining < amount {
		return remaining
	}
	return amount
}

// GrossUpForReferrals inflates amount so that after referral commissions
// (totalRefRatePct, summed over all partners) are deducted, the net credited
// to the investor still fits inside remaining:
//
//	adjusted = min(amount, remaining / (1 - totalRefRatePct/100))
//
// A combined rate of 100% or more makes the gross-up undefined; the amount
// is then capped at remaining directly.
func GrossUpForReferrals(amount, remaining, totalRefRatePct float64) float64 {
	denom := 1 - totalRefRatePct/100
	if denom <= 0 {
		if remaining < amount {
			return remaining
		}
		return amount
	}
	g, _ := decimal.NewFromFloat(remaining).
		Div(decimal.NewFromFloat(denom)).
		Round(2).
		Float64()
	if g < amount {
		return g
	}
	return amount
}
