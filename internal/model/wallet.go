package model

// WalletFileVersion is the current .cwallet layout.
const WalletFileVersion = 1

// WalletFile represents .cwallet file structure.
// The master secret is never stored here; it lives on paper only.
type WalletFile struct {
	Version    int        `json:"version"`
	Network    string     `json:"network"`
	CostParam  uint8      `json:"costParam"`
	BlockCount int        `json:"blockCount"`
	CreatedAt  string     `json:"createdAt"`
	Keys       []KeyEntry `json:"keys"`
}

// KeyEntry is one address with its encrypted private key
type KeyEntry struct {
	Address string `json:"address"`
	KeyCode string `json:"keyCode"`
	QR      string `json:"QR,omitempty"` // base64 PNG of the address
}

// Addresses returns the addresses in file order
func (w *WalletFile) Addresses() []string {
	out := make([]string, len(w.Keys))
	for i, k := range w.Keys {
		out[i] = k.Address
	}
	return out
}

// Find returns the entry for address, or nil
func (w *WalletFile) Find(address string) *KeyEntry {
	for i := range w.Keys {
		if w.Keys[i].Address == address {
			return &w.Keys[i]
		}
	}
	return nil
}
