package domain

import (
	"context"
	"fmt"
	"strings"
)

// we need 6 for xPRISM
const tokenSymbolMaxLength = 6

// FormatLPTokenSymbol derives the liquidity token symbol of a pair: both short symbols
// joined as "{a}-{b}-LP" and upper-cased. Native assets use their denom, tokens their
// queried symbol, each truncated to six characters.
func FormatLPTokenSymbol(ctx context.Context, querier TokenQuerier, assetInfos [2]AssetInfo) (string, error) {
	var shortSymbols [2]string
	for i, assetInfo := range assetInfos {
		var symbol string
		switch assetInfo.Kind {
		case NativeAsset:
			symbol = assetInfo.Value
		case TokenAsset:
			tokenSymbol, err := querier.QueryTokenSymbol(ctx, assetInfo.Value)
			if err != nil {
				return "", err
			}
			symbol = tokenSymbol
		default:
			return "", InvalidAssetInfoError{Kind: assetInfo.Kind, Value: assetInfo.Value}
		}
		shortSymbols[i] = truncateSymbol(symbol)
	}

	return strings.ToUpper(fmt.Sprintf("%s-%s-LP", shortSymbols[0], shortSymbols[1])), nil
}

func truncateSymbol(symbol string) string {
	runes := []rune(symbol)
	if len(runes) > tokenSymbolMaxLength {
		runes = runes[:tokenSymbolMaxLength]
	}
	return string(runes)
}
