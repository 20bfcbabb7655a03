package domain

// Solana mint addresses are base58 strings between 32 and 44 characters.
// Base58 excludes 0, O, I and l to avoid visual ambiguity.
var base58Alphabet = func() [256]bool {
	var ok [256]bool
	for _, c := range "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz" {
		ok[c] = true
	}
	return ok
}()

// ValidMintAddress reports whether s is a plausible Solana mint address.
// It checks shape only, not on-chain existence.
func ValidMintAddress(s string) bool {
	if len(s) < 32 || len(s) > 44 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !base58Alphabet[s[i]] {
			return false
		}
	}
	return true
}
