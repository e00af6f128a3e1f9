package snapshot

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the block compression applied to the snapshot payload.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = 0
	// CompressionLZ4 applies LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD applies zstd block compression (better ratio).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// zstd encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// compress compresses data with the requested algorithm. It returns the
// stored bytes and the compression actually in effect: if compression does
// not pay for itself (ratio above 0.9) the payload is stored raw.
func compress(data []byte, compression Compression) ([]byte, Compression, error) {
	if compression == CompressionNone || len(data) == 0 {
		return data, CompressionNone, nil
	}

	var compressed []byte
	switch compression {
	case CompressionLZ4:
		buf := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, CompressionNone, err
		}
		if n == 0 {
			// Incompressible.
			return data, CompressionNone, nil
		}
		compressed = buf[:n]
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, CompressionNone, fmt.Errorf("%w: %d", ErrInvalidCompression, compression)
	}

	if float64(len(compressed)) > float64(len(data))*0.9 {
		return data, CompressionNone, nil
	}
	return compressed, compression, nil
}

// decompress expands stored bytes back to rawSize bytes of payload.
func decompress(stored []byte, compression Compression, rawSize uint32) ([]byte, error) {
	switch compression {
	case CompressionNone:
		return stored, nil
	case CompressionLZ4:
		result := make([]byte, rawSize)
		n, err := lz4.UncompressBlock(stored, result)
		if err != nil {
			return nil, err
		}
		if uint32(n) != rawSize {
			return nil, fmt.Errorf("snapshot: lz4 payload expanded to %d bytes, want %d", n, rawSize)
		}
		return result, nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		result, err := dec.DecodeAll(stored, make([]byte, 0, rawSize))
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, err
		}
		if uint32(len(result)) != rawSize {
			return nil, fmt.Errorf("snapshot: zstd payload expanded to %d bytes, want %d", len(result), rawSize)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidCompression, compression)
	}
}
