package mocks

import (
	"context"

	"cosmossdk.io/math"

	"github.com/prismswap/swaprouter/domain"
)

var _ domain.Querier = &QuerierMock{}

type QuerierMock struct {
	QueryBalanceFunc      func(ctx context.Context, holder string, denom string) (math.Uint, error)
	QueryTokenBalanceFunc func(ctx context.Context, tokenAddr string, holder string) (math.Uint, error)
	QueryPairInfoFunc     func(ctx context.Context, registryAddr string, assetInfos [2]domain.AssetInfo) (domain.PairInfo, error)
	QueryTokenSymbolFunc  func(ctx context.Context, tokenAddr string) (string, error)
	ComputeTaxFunc        func(ctx context.Context, denom string, amount math.Uint) (math.Uint, error)
}

// QueryBalance implements domain.Querier.
func (m *QuerierMock) QueryBalance(ctx context.Context, holder string, denom string) (math.Uint, error) {
	if m.QueryBalanceFunc != nil {
		return m.QueryBalanceFunc(ctx, holder, denom)
	}
	panic("unimplemented")
}

// QueryTokenBalance implements domain.Querier.
func (m *QuerierMock) QueryTokenBalance(ctx context.Context, tokenAddr string, holder string) (math.Uint, error) {
	if m.QueryTokenBalanceFunc != nil {
		return m.QueryTokenBalanceFunc(ctx, tokenAddr, holder)
	}
	panic("unimplemented")
}

// QueryPairInfo implements domain.Querier.
func (m *QuerierMock) QueryPairInfo(ctx context.Context, registryAddr string, assetInfos [2]domain.AssetInfo) (domain.PairInfo, error) {
	if m.QueryPairInfoFunc != nil {
		return m.QueryPairInfoFunc(ctx, registryAddr, assetInfos)
	}
	panic("unimplemented")
}

// QueryTokenSymbol implements domain.Querier.
func (m *QuerierMock) QueryTokenSymbol(ctx context.Context, tokenAddr string) (string, error) {
	if m.QueryTokenSymbolFunc != nil {
		return m.QueryTokenSymbolFunc(ctx, tokenAddr)
	}
	panic("unimplemented")
}

// ComputeTax implements domain.Querier.
func (m *QuerierMock) ComputeTax(ctx context.Context, denom string, amount math.Uint) (math.Uint, error) {
	if m.ComputeTaxFunc != nil {
		return m.ComputeTaxFunc(ctx, denom, amount)
	}
	panic("unimplemented")
}

var _ domain.AddressValidator = &AddressValidatorMock{}

type AddressValidatorMock struct {
	AddrValidateFunc func(addr string) (string, error)
}

// AddrValidate implements domain.AddressValidator.
func (m *AddressValidatorMock) AddrValidate(addr string) (string, error) {
	if m.AddrValidateFunc != nil {
		return m.AddrValidateFunc(addr)
	}
	return addr, nil
}
