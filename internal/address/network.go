package address

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network selects the version bytes keys and addresses are encoded for.
// There is deliberately no default: every operation names its network.
type Network struct {
	Name           string
	PrivateVersion byte
	PublicVersion  byte
}

// NetworkFromParams takes the private key and pay-to-pubkey-hash version
// bytes from chain parameters.
func NetworkFromParams(params *chaincfg.Params) Network {
	return Network{
		Name:           params.Name,
		PrivateVersion: params.PrivateKeyID,
		PublicVersion:  params.PubKeyHashAddrID,
	}
}

var knownParams = []*chaincfg.Params{
	&chaincfg.MainNetParams,
	&chaincfg.TestNet3Params,
	&chaincfg.RegressionNetParams,
	&chaincfg.SimNetParams,
	&chaincfg.SigNetParams,
}

// ParseNetwork looks a network up by its chaincfg name ("mainnet", "testnet3", ...).
func ParseNetwork(name string) (Network, error) {
	for _, p := range knownParams {
		if p.Name == name {
			return NetworkFromParams(p), nil
		}
	}
	return Network{}, fmt.Errorf("unknown network %q", name)
}
