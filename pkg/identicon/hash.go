package identicon

import "crypto/md5" //nolint:gosec // the digest is a fingerprint, not a security boundary

// HashBytes is the digest every other stage reads from.
type HashBytes []byte

// RawHash is the output of the hashing stage.
type RawHash struct {
	Input string
	Bytes HashBytes
}

// Hash returns the 16 bytes MD5 digest of input.
func Hash(input string) RawHash {
	sum := md5.Sum([]byte(input)) //nolint:gosec
	return NewRawHash(input, sum[:])
}

// NewRawHash wraps an already computed digest. The bytes are copied.
func NewRawHash(input string, b []byte) RawHash {
	return RawHash{
		Input: input,
		Bytes: append(HashBytes(nil), b...),
	}
}
