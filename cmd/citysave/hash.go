package main

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"lukechampine.com/blake3"
)

// hashFile returns the 32-byte BLAKE3 digest of the file at path.
func hashFile(path string) ([]byte, error) {
	hasher := blake3.New(32, nil)

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open file before hashing")
	}
	defer file.Close()

	if _, err := io.Copy(hasher, file); err != nil {
		return nil, errors.Wrap(err, "hash file")
	}

	return hasher.Sum(nil), nil
}
