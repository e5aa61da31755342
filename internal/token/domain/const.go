package domain

// Mode represents the cipher mode used for token encryption.
//
// AESCBC is the compatibility mode: it reproduces the record format the
// service has always issued (hex token, hex key, hex IV, PKCS#7 padding) but
// carries no integrity check of its own. AESGCM and ChaCha20 are authenticated
// modes that reject any tampered ciphertext outright; new deployments should
// prefer one of them.
type Mode string

const (
	// AESCBC represents AES-256 in CBC mode with PKCS#7 padding.
	AESCBC Mode = "aes-cbc"

	// AESGCM represents the AES-256-GCM authenticated encryption algorithm.
	AESGCM Mode = "aes-gcm"

	// ChaCha20 represents the ChaCha20-Poly1305 authenticated encryption algorithm.
	ChaCha20 Mode = "chacha20-poly1305"
)

const (
	// KeySize is the symmetric key size in bytes (256 bits).
	KeySize = 32

	// IVSize is the initialization vector size in bytes (128 bits).
	IVSize = 16

	// BlockSize is the AES block size in bytes.
	BlockSize = 16
)
