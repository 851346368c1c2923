package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/scrypt"
)

const (
	// scrypt work factor is N = 2^costParam.
	//
	// DefaultCostParam=18 (~256MB RAM, 0.5-2s per key) keeps brute force of a
	// partly leaked paper secret expensive while still running on laptops.
	// MinCostParam=14 (~16MB) is the floor accepted anywhere.
	MinCostParam     = 14
	DefaultCostParam = 18
	MaxCostParam     = 22

	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

// ErrCostTooLow is returned for a cost parameter below MinCostParam.
var ErrCostTooLow = errors.New("scrypt cost parameter too low")

// ValidateCost checks that costParam is within [MinCostParam, MaxCostParam].
func ValidateCost(costParam uint8) error {
	if costParam < MinCostParam {
		return fmt.Errorf("%w: %d < %d", ErrCostTooLow, costParam, MinCostParam)
	}
	if costParam > MaxCostParam {
		return fmt.Errorf("scrypt cost parameter too high: %d > %d", costParam, MaxCostParam)
	}
	return nil
}

// deriveKey returns scrypt(secret, address, 2^costParam, 8, 1, 32).
// Salting with the address gives every key its own symmetric key.
func deriveKey(secret []byte, address string, costParam uint8) ([]byte, error) {
	if err := ValidateCost(costParam); err != nil {
		return nil, err
	}
	if len(secret) == 0 {
		return nil, errors.New("secret cannot be empty")
	}
	if address == "" {
		return nil, errors.New("address cannot be empty")
	}

	key, err := scrypt.Key(secret, []byte(address), 1<<costParam, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return key, nil
}
