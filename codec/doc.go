// Package codec implements the order-preserving tuple encoding.
//
// An encoded tuple is the plain concatenation of its encoded elements. Every
// element starts with a type code (see package format) followed by a payload
// whose length is implied by the code:
//
//	null        0x00
//	bytes       0x01 <escaped payload> 0x00
//	text        0x02 <escaped UTF-8 payload> 0x00
//	integer     0x0c..0x1c <n big-endian bytes>, n = |code - 0x14|
//	big integer 0x1d <n> <n bytes> | 0x0b <^n> <n complemented bytes>
//	float32     0x20 <4 bytes>
//	float64     0x21 <8 bytes>
//	bool        0x26 | 0x27
//	uuid        0x30 <16 bytes>
//
// Inside byte and text payloads every 0x00 is written as 0x00 0xFF, so the
// first 0x00 not followed by 0xFF terminates the payload.
//
// Negative integers store (2^(8n) - 1) + value, which is the one's complement
// of the magnitude; floats store a sign-transformed bit pattern. Together with
// the centered integer codes this makes bytes.Compare over two encodings agree
// with element.CompareSlices over the values they encode.
//
// # Canonical Encoding
//
// The encoder always picks the narrowest integer representation, so Int32(5),
// Int64(5) and BigInt(5) encode to the same bytes. The decoder returns the
// narrowest kind that holds the decoded value.
//
// # Errors
//
// All errors wrap one of the sentinels in package errs and report the byte
// offset at which decoding failed. A failed Decode returns no elements.
//
// # Thread Safety
//
// Encode, Append, Decode and Classify are stateless and safe for concurrent
// use. A Decoder must be used by a single goroutine.
package codec
