package domain

import (
	"context"
)

// PairInfo is the registry record of a pool. Asset order is fixed at pool creation.
type PairInfo struct {
	AssetInfos     [2]AssetInfo `json:"asset_infos"`
	ContractAddr   string       `json:"contract_addr"`
	LiquidityToken string       `json:"liquidity_token"`
}

// QueryPools returns the pool contract's balance of each of its assets.
func (p PairInfo) QueryPools(ctx context.Context, querier BalanceQuerier) ([2]Asset, error) {
	var pools [2]Asset
	for i, assetInfo := range p.AssetInfos {
		amount, err := assetInfo.QueryBalance(ctx, querier, p.ContractAddr)
		if err != nil {
			return [2]Asset{}, err
		}
		pools[i] = NewAsset(assetInfo, amount)
	}
	return pools, nil
}
