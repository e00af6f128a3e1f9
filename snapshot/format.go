package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"path/filepath"

	"github.com/hupe1980/eulerkit/prime"
)

const (
	// magicNumber identifies prime set snapshot files (ASCII: "PRS1").
	magicNumber = 0x50525331
	// version is the current file format version.
	version = 0x00010000
)

var (
	ErrInvalidMagic       = errors.New("snapshot: invalid magic number")
	ErrInvalidVersion     = errors.New("snapshot: unsupported version")
	ErrInvalidCompression = errors.New("snapshot: invalid compression type")
	ErrChecksumMismatch   = errors.New("snapshot: payload checksum mismatch")
)

// fileHeader is the fixed-size header at the start of every snapshot.
type fileHeader struct {
	Magic       uint32
	Version     uint32
	Compression uint8
	Padding     [3]byte
	Limit       uint64 // Exclusive sieve bound of the stored set
	RawSize     uint32 // Payload size before compression
	StoredSize  uint32 // Payload size as stored
	Checksum    uint32 // CRC32 (IEEE) of the stored payload
}

// Write serializes the prime set to w, compressing the payload with the
// requested compression. Incompressible payloads fall back to raw storage;
// the header records the compression actually in effect.
func Write(w io.Writer, s *prime.Set, compression Compression) error {
	payload, err := s.MarshalBinary()
	if err != nil {
		return fmt.Errorf("snapshot: marshal prime set: %w", err)
	}

	stored, effective, err := compress(payload, compression)
	if err != nil {
		return err
	}

	header := fileHeader{
		Magic:       magicNumber,
		Version:     version,
		Compression: uint8(effective),
		Limit:       s.Limit(),
		RawSize:     uint32(len(payload)),
		StoredSize:  uint32(len(stored)),
		Checksum:    crc32.ChecksumIEEE(stored),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	_, err = w.Write(stored)
	return err
}

// Read deserializes a prime set written by Write, verifying the payload
// checksum before decoding.
func Read(r io.Reader) (*prime.Set, error) {
	var header fileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, err
	}
	if header.Magic != magicNumber {
		return nil, ErrInvalidMagic
	}
	if header.Version != version {
		return nil, fmt.Errorf("%w: %#x", ErrInvalidVersion, header.Version)
	}

	stored := make([]byte, header.StoredSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, err
	}
	if crc32.ChecksumIEEE(stored) != header.Checksum {
		return nil, ErrChecksumMismatch
	}

	payload, err := decompress(stored, Compression(header.Compression), header.RawSize)
	if err != nil {
		return nil, err
	}

	var s prime.Set
	if err := s.UnmarshalBinary(payload); err != nil {
		return nil, fmt.Errorf("snapshot: unmarshal prime set: %w", err)
	}
	if s.Limit() != header.Limit {
		return nil, fmt.Errorf("snapshot: limit mismatch: header %d, payload %d", header.Limit, s.Limit())
	}
	return &s, nil
}

// Save writes the prime set to a file, replacing any existing snapshot
// atomically via a rename.
func Save(path string, s *prime.Set, compression Compression) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".snapshot-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, s, compression); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Load reads a prime set from a file written by Save.
func Load(path string) (*prime.Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
