package model

// Signing configures detached artifact signatures.
type Signing struct {
	Activation
	Armored     bool
	KeyRingFile string
	Passphrase  string
}
