package model

// GenerateResult is what the generate command shows the user.
// Blocks must be copied onto paper; they are not written to disk.
type GenerateResult struct {
	FilePath  string   `json:"filePath"`
	Network   string   `json:"network"`
	Blocks    []string `json:"blocks"`
	Addresses []string `json:"addresses"`
}
