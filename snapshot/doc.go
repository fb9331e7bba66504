// Package snapshot serializes container contents to a framed record stream.
//
// The containers themselves have no wire format; snapshot is an external
// consumer that walks a container and writes one record per item.
//
// Stream layout:
//
//	magic (4) | version (1) | compression (1)
//	records: uvarint(len+1) | payload, repeated
//	uvarint(0) terminator | crc32c of all payloads (4, little endian)
//
// Everything after the header passes through the configured compressor
// (none, zstd, or lz4). The trailing CRC32C is validated on read.
package snapshot
