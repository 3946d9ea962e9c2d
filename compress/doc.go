// Package compress provides the compression codecs applied to key set payloads.
//
// A key set payload is a run of length-prefixed tuple encodings sorted by byte
// order. Neighbouring keys usually share long prefixes (the same table name,
// the same tenant id), so general-purpose compressors do well on it.
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): the payload is stored as is
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced speed and ratio
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Zstd uses the pure Go implementation from klauspost/compress unless the
// module is built with cgo and the gozstd build tag, in which case the
// valyala/gozstd bindings are used. Both produce standard zstd frames, so
// key sets written by one build decode with the other.
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressionS2)
//	if err != nil {
//	    return err
//	}
//	packed, err := codec.Compress(payload)
//	...
//	payload, err = codec.Decompress(packed)
//
// # Thread Safety
//
// All codecs are stateless values backed by pooled encoder state and are safe
// for concurrent use.
package compress
