// Package keyset stores a sorted, de-duplicated run of encoded tuples in a
// single self-describing blob.
//
// Because tuple encodings sort the same way as the tuples they represent, a
// key set decoded from a blob can answer lower-bound and membership queries
// with a binary search over raw bytes.
//
// # Blob Layout
//
// A blob is a 24-byte little-endian header followed by the stored payload:
//
//	offset  size  field
//	0       2     magic number (0xEC10)
//	2       1     compression type
//	3       1     reserved, always zero
//	4       4     key count
//	8       4     raw payload size
//	12      4     stored payload size
//	16      8     xxHash64 of the raw payload
//
// The raw payload holds each key as a uvarint length followed by the encoded
// tuple bytes, keys strictly ascending by bytes.Compare. The stored payload is
// the raw payload after compression.
//
// # Usage
//
//	w, err := keyset.NewWriter(keyset.WithCompression(format.CompressionZstd))
//	if err != nil {
//	    return err
//	}
//	w.Add(tuple.MustNew(element.Text("users"), element.Int(42)))
//	blob, err := w.Finish()
//
//	ks, err := keyset.Decode(blob)
//	if err != nil {
//	    return err
//	}
//	pos := ks.Seek(tuple.MustNew(element.Text("users")))
package keyset
