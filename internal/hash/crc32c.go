package hash

import (
	"hash"
	"hash/crc32"
)

// Snapshot trailers use the Castagnoli polynomial rather than IEEE: it has
// hardware support on x86 (SSE4.2) and ARM, and the table only needs to be
// built once.
var crc32cTable = crc32.MakeTable(crc32.Castagnoli)

// CRC32C returns the CRC32-Castagnoli checksum of data in one shot.
func CRC32C(data []byte) uint32 {
	return crc32.Checksum(data, crc32cTable)
}

// NewCRC32C returns a running CRC32-Castagnoli hash for incremental writes.
func NewCRC32C() hash.Hash32 {
	return crc32.New(crc32cTable)
}
