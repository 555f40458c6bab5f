package pipeline

import (
	"crypto/md5" // #nosec G501 -- content addressing, not a security boundary
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// ErrUnknownDigest indicates an unsupported digest algorithm name.
var ErrUnknownDigest = errors.New("unknown digest algorithm")

// Digest algorithm names accepted by DigestFor.
const (
	DigestMD5    = "md5"
	DigestBLAKE3 = "blake3"
)

// DigestFunc returns the lowercase hex digest of data.
type DigestFunc func(data []byte) string

// DigestFor returns the digest function registered under name.
// An empty name selects md5.
func DigestFor(name string) (DigestFunc, error) {
	switch strings.ToLower(name) {
	case "", DigestMD5:
		return md5Hex, nil
	case DigestBLAKE3:
		return blake3Hex, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownDigest, name, strings.Join(DigestNames(), ", "))
	}
}

// DigestNames lists supported algorithms in display order.
func DigestNames() []string {
	return []string{DigestMD5, DigestBLAKE3}
}

func md5Hex(data []byte) string {
	sum := md5.Sum(data) // #nosec G401
	return hex.EncodeToString(sum[:])
}

func blake3Hex(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
