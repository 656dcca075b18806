package domain

import (
	"context"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// decimalFraction is the fixed point scale of math.LegacyDec.
var decimalFraction = new(big.Int).Exp(big.NewInt(10), big.NewInt(math.LegacyPrecision), nil)

// ComputeTreasuryTax returns the tax the ledger charges on top of a native transfer of amount:
// amount - amount / (1 + rate), truncated, and capped at taxCap when one is given.
func ComputeTreasuryTax(amount math.Uint, rate math.LegacyDec, taxCap *math.Uint) (math.Uint, error) {
	if rate.IsNil() || rate.IsNegative() {
		return math.Uint{}, fmt.Errorf("invalid tax rate (%s)", rate)
	}

	denominator := new(big.Int).Add(decimalFraction, rate.BigInt())
	net := new(big.Int).Mul(amount.BigInt(), decimalFraction)
	net.Quo(net, denominator)

	tax, err := CheckedSub(amount, math.NewUintFromBigInt(net))
	if err != nil {
		return math.Uint{}, err
	}

	if taxCap != nil && tax.GT(*taxCap) {
		return *taxCap, nil
	}
	return tax, nil
}

// TaxPolicy holds the ledger's tax parameters.
type TaxPolicy struct {
	Rate         math.LegacyDec
	Caps         map[string]math.Uint
	ExemptDenoms map[string]struct{}
}

var _ TaxQuerier = TaxPolicy{}

// NewTaxPolicy parses the tax section of the config.
// An empty rate means no tax. A denom without a cap is not capped.
func NewTaxPolicy(cfg TaxConfig) (TaxPolicy, error) {
	policy := TaxPolicy{
		Rate:         math.LegacyZeroDec(),
		Caps:         make(map[string]math.Uint, len(cfg.Caps)),
		ExemptDenoms: make(map[string]struct{}, len(cfg.ExemptDenoms)),
	}

	if cfg.Rate != "" {
		rate, err := math.LegacyNewDecFromStr(cfg.Rate)
		if err != nil {
			return TaxPolicy{}, fmt.Errorf("failed to parse tax rate: %w", err)
		}
		if rate.IsNegative() {
			return TaxPolicy{}, fmt.Errorf("tax rate (%s) must not be negative", rate)
		}
		policy.Rate = rate
	}

	for denom, capStr := range cfg.Caps {
		taxCap, err := math.ParseUint(capStr)
		if err != nil {
			return TaxPolicy{}, fmt.Errorf("failed to parse tax cap for %s: %w", denom, err)
		}
		policy.Caps[denom] = taxCap
	}

	for _, denom := range cfg.ExemptDenoms {
		policy.ExemptDenoms[denom] = struct{}{}
	}

	return policy, nil
}

// ComputeTax implements TaxQuerier.
func (p TaxPolicy) ComputeTax(_ context.Context, denom string, amount math.Uint) (math.Uint, error) {
	if _, ok := p.ExemptDenoms[denom]; ok {
		return math.ZeroUint(), nil
	}

	var taxCap *math.Uint
	if c, ok := p.Caps[denom]; ok {
		taxCap = &c
	}

	return ComputeTreasuryTax(amount, p.Rate, taxCap)
}
