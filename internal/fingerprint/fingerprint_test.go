package fingerprint

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestComputeEmptyFile(t *testing.T) {
	path := writeFile(t, "empty.bin", nil)

	fp, err := Compute(path)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	// Known digests of the empty input.
	wantSHA := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	wantXXH := "ef46db3751d8e999"
	if fp.SHA256 != wantSHA {
		t.Errorf("SHA256 = %s, want %s", fp.SHA256, wantSHA)
	}
	if fp.XXH64 != wantXXH {
		t.Errorf("XXH64 = %s, want %s", fp.XXH64, wantXXH)
	}
}

func TestComputeIsPureFunctionOfContent(t *testing.T) {
	data := bytes.Repeat([]byte("asset-prep fingerprint test data "), 1000)

	a := writeFile(t, "a.bin", data)
	b := writeFile(t, "b.bin", data)

	fpA, err := Compute(a)
	if err != nil {
		t.Fatalf("Compute(a) error: %v", err)
	}
	fpB, err := Compute(b)
	if err != nil {
		t.Fatalf("Compute(b) error: %v", err)
	}

	// Same bytes, different locations: identical pair.
	if fpA != fpB {
		t.Errorf("fingerprints differ for identical content: %+v vs %+v", fpA, fpB)
	}

	// Re-running on an unchanged file yields identical digests.
	again, err := Compute(a)
	if err != nil {
		t.Fatalf("Compute(a) again error: %v", err)
	}
	if again != fpA {
		t.Errorf("fingerprint not stable across runs: %+v vs %+v", again, fpA)
	}
}

func TestComputeSensitiveToSingleByte(t *testing.T) {
	// Size chosen to cross several 8 KiB chunk boundaries.
	data := make([]byte, 20000)
	for i := range data {
		data[i] = byte(i % 251)
	}

	orig := writeFile(t, "orig.bin", data)
	fpOrig, err := Compute(orig)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	// Flip one byte in the last partial chunk.
	data[19999] ^= 0x01
	changed := writeFile(t, "changed.bin", data)
	fpChanged, err := Compute(changed)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}

	if fpOrig.XXH64 == fpChanged.XXH64 {
		t.Error("XXH64 unchanged after flipping a byte")
	}
	if fpOrig.SHA256 == fpChanged.SHA256 {
		t.Error("SHA256 unchanged after flipping a byte")
	}
}

func TestComputeDigestLengths(t *testing.T) {
	path := writeFile(t, "small.bin", []byte("hello"))

	fp, err := Compute(path)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if len(fp.XXH64) != 16 {
		t.Errorf("len(XXH64) = %d, want 16 hex chars", len(fp.XXH64))
	}
	if len(fp.SHA256) != 64 {
		t.Errorf("len(SHA256) = %d, want 64 hex chars", len(fp.SHA256))
	}
}

func TestComputeMissingFile(t *testing.T) {
	if _, err := Compute(filepath.Join(t.TempDir(), "nope.bin")); err == nil {
		t.Error("Compute() = nil error for missing file")
	}
}
