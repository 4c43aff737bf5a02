// Package fingerprint computes content digests used to verify byte-for-byte
// identity of source files.
package fingerprint

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
)

// chunkSize is the read size used while streaming a file through both
// digests. Files are never loaded into memory whole.
const chunkSize = 8 * 1024

// Fingerprint holds a fast digest for cheap comparisons alongside a
// cryptographic digest for integrity verification. Both are hex encoded.
type Fingerprint struct {
	XXH64  string `json:"xxh64"`
	SHA256 string `json:"sha256"`
}

// Compute streams the file at path through both digest algorithms in a
// single pass and returns the resulting pair. The fingerprint depends only
// on the file's bytes, never on its location or metadata.
func Compute(path string) (Fingerprint, error) {
	f, err := os.Open(path)
	if err != nil {
		return Fingerprint{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fast := xxhash.New()
	strong := sha256.New()

	buf := make([]byte, chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			// Hash writes never fail.
			fast.Write(buf[:n])
			strong.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Fingerprint{}, fmt.Errorf("read %s: %w", path, err)
		}
	}

	return Fingerprint{
		XXH64:  fmt.Sprintf("%016x", fast.Sum64()),
		SHA256: hex.EncodeToString(strong.Sum(nil)),
	}, nil
}
