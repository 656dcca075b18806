package domain

import (
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"
)

// ValidateLowercaseAddress rejects addresses that are not already lower-case and
// then delegates to the host's format validation.
func ValidateLowercaseAddress(api AddressValidator, addr string) (string, error) {
	if strings.ToLower(addr) != addr {
		return "", InvalidAddressError{Address: addr, Reason: "address should be lowercase"}
	}
	return api.AddrValidate(addr)
}

// Bech32AddressValidator validates bech32 account addresses with a fixed human readable prefix.
type Bech32AddressValidator struct {
	Prefix string
}

var _ AddressValidator = Bech32AddressValidator{}

// AddrValidate implements AddressValidator.
func (v Bech32AddressValidator) AddrValidate(addr string) (string, error) {
	if addr == "" {
		return "", InvalidAddressError{Address: addr, Reason: "empty address"}
	}

	hrp, bz, err := bech32.DecodeAndConvert(addr)
	if err != nil {
		return "", InvalidAddressError{Address: addr, Reason: err.Error()}
	}

	if hrp != v.Prefix {
		return "", InvalidAddressError{Address: addr, Reason: "invalid bech32 prefix; expected " + v.Prefix + ", got " + hrp}
	}

	if err := sdk.VerifyAddressFormat(bz); err != nil {
		return "", InvalidAddressError{Address: addr, Reason: err.Error()}
	}

	return addr, nil
}
