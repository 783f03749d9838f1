package storage

import (
	"crypto/md5" //nolint:gosec // only used to shorten long names
	"strings"

	"github.com/tv42/zbase32"
)

const (
	// Extension is appended to every file name.
	Extension = ".png"
	// MaxNameLength is the longest base name kept, most file systems allow 255 bytes.
	MaxNameLength = 200
	// EncodedPrefix starts the name of an input encoded with z-base-32.
	EncodedPrefix = "+"
	// HashedPrefix starts the name of an input named after its MD5.
	HashedPrefix = "+_"
)

// FileName returns the file name of the identicon of input.
//
// Inputs made of letters, digits, '.', '_' and '-' that do not start with a dot keep their name, "banana" is
// written to "banana.png". Any other input is encoded with z-base-32 behind EncodedPrefix so it can never escape
// the output directory. The empty input and inputs whose encoding is too long are named after the z-base-32 of
// their MD5 behind HashedPrefix.
//
// A safe name never starts with '+' and '_' is not a z-base-32 character, so the three forms never collide.
func FileName(input string) string {
	if isSafeName(input) {
		return input + Extension
	}

	encoded := EncodedPrefix + zbase32.EncodeToString([]byte(input))
	if input == "" || len(encoded) > MaxNameLength {
		sum := md5.Sum([]byte(input)) //nolint:gosec
		encoded = HashedPrefix + zbase32.EncodeToString(sum[:])
	}

	return encoded + Extension
}

// RawFileName returns input followed by the extension, without any check.
func RawFileName(input string) string {
	return input + Extension
}

func isSafeName(input string) bool {
	if input == "" || len(input) > MaxNameLength || strings.HasPrefix(input, ".") {
		return false
	}

	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '.', r == '_', r == '-':
		default:
			return false
		}
	}

	return true
}
