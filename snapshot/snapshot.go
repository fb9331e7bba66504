package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"hash"
	"io"
	"log/slog"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	ihash "github.com/hupe1980/cowgo/internal/hash"
)

// Compression selects the codec applied to the record stream.
type Compression uint8

const (
	// CompressionNone stores records uncompressed.
	CompressionNone Compression = iota
	// CompressionZstd compresses with zstd (the default).
	CompressionZstd
	// CompressionLZ4 compresses with the LZ4 frame format.
	CompressionLZ4
)

const version = 1

// maxRecordSize caps a single record payload. A length above it is treated as
// stream corruption and rejected before any allocation happens.
const maxRecordSize = 100 << 20

var magic = [4]byte{'c', 'o', 'w', 's'}

var (
	// ErrBadMagic is returned when the stream does not start with the
	// snapshot magic.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrBadVersion is returned for an unsupported format version.
	ErrBadVersion = errors.New("snapshot: unsupported version")
	// ErrUnknownCompression is returned for an unrecognized compression byte.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
	// ErrChecksum is returned when the trailing CRC32C does not match the
	// record payloads.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
	// ErrRecordTooLarge is returned when a record length exceeds
	// maxRecordSize, which indicates a corrupt or hostile stream.
	ErrRecordTooLarge = errors.New("snapshot: record too large")
)

// Options configures a Writer.
type Options struct {
	Compression Compression
	Logger      *slog.Logger
}

// WithCompression selects the stream codec.
func WithCompression(c Compression) func(*Options) {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithLogger attaches a logger; completion is logged at debug level.
func WithLogger(logger *slog.Logger) func(*Options) {
	return func(o *Options) {
		o.Logger = logger
	}
}

// Writer writes a framed, checksummed record stream.
type Writer struct {
	w       io.Writer // record layer, possibly compressed
	zw      *zstd.Encoder
	lw      *lz4.Writer
	crc     hash.Hash32
	scratch [binary.MaxVarintLen64]byte
	records int
	logger  *slog.Logger
}

// NewWriter writes the stream header to w and returns a Writer. Close must be
// called to flush the compressor and write the checksum trailer.
func NewWriter(w io.Writer, optFns ...func(*Options)) (*Writer, error) {
	opts := Options{Compression: CompressionZstd}
	for _, fn := range optFns {
		fn(&opts)
	}

	header := []byte{magic[0], magic[1], magic[2], magic[3], version, byte(opts.Compression)}
	if _, err := w.Write(header); err != nil {
		return nil, fmt.Errorf("snapshot: write header: %w", err)
	}

	sw := &Writer{logger: opts.Logger, crc: ihash.NewCRC32C()}

	switch opts.Compression {
	case CompressionNone:
		sw.w = w
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("snapshot: init zstd: %w", err)
		}
		sw.zw = zw
		sw.w = zw
	case CompressionLZ4:
		sw.lw = lz4.NewWriter(w)
		sw.w = sw.lw
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, opts.Compression)
	}
	return sw, nil
}

// WriteRecord appends one record. The payload may be empty.
func (w *Writer) WriteRecord(p []byte) error {
	n := binary.PutUvarint(w.scratch[:], uint64(len(p))+1)
	if _, err := w.w.Write(w.scratch[:n]); err != nil {
		return fmt.Errorf("snapshot: write record length: %w", err)
	}
	if _, err := w.w.Write(p); err != nil {
		return fmt.Errorf("snapshot: write record: %w", err)
	}
	_, _ = w.crc.Write(p)
	w.records++
	return nil
}

// Close writes the terminator and checksum trailer and flushes the
// compressor. The compressor is released even when the trailer cannot be
// written, so Close is also the cleanup path after a failed WriteRecord.
// The underlying writer is not closed.
func (w *Writer) Close() error {
	err := w.writeTrailer()
	if w.zw != nil {
		if cerr := w.zw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("snapshot: close zstd: %w", cerr)
		}
	}
	if w.lw != nil {
		if cerr := w.lw.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("snapshot: close lz4: %w", cerr)
		}
	}
	if err != nil {
		return err
	}
	if w.logger != nil {
		w.logger.Debug("snapshot written", slog.Int("records", w.records))
	}
	return nil
}

func (w *Writer) writeTrailer() error {
	n := binary.PutUvarint(w.scratch[:], 0)
	if _, err := w.w.Write(w.scratch[:n]); err != nil {
		return fmt.Errorf("snapshot: write terminator: %w", err)
	}
	var sum [4]byte
	binary.LittleEndian.PutUint32(sum[:], w.crc.Sum32())
	if _, err := w.w.Write(sum[:]); err != nil {
		return fmt.Errorf("snapshot: write checksum: %w", err)
	}
	return nil
}

// Reader reads a stream produced by Writer.
type Reader struct {
	br   *byteReader
	zr   *zstd.Decoder
	crc  hash.Hash32
	buf  []byte
	done bool
}

// NewReader consumes the stream header from r and returns a Reader.
func NewReader(r io.Reader) (*Reader, error) {
	var header [6]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if [4]byte(header[:4]) != magic {
		return nil, ErrBadMagic
	}
	if header[4] != version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, header[4])
	}

	sr := &Reader{crc: ihash.NewCRC32C()}

	switch Compression(header[5]) {
	case CompressionNone:
		sr.br = newByteReader(r)
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("snapshot: init zstd: %w", err)
		}
		sr.zr = zr
		sr.br = newByteReader(zr)
	case CompressionLZ4:
		sr.br = newByteReader(lz4.NewReader(r))
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownCompression, header[5])
	}
	return sr, nil
}

// Next returns the next record payload, or io.EOF after the last record has
// been read and the checksum verified. The returned slice is reused by the
// following call.
func (r *Reader) Next() ([]byte, error) {
	if r.done {
		return nil, io.EOF
	}
	u, err := binary.ReadUvarint(r.br)
	if err != nil {
		return nil, fmt.Errorf("snapshot: read record length: %w", err)
	}
	if u == 0 {
		var sum [4]byte
		if _, err := io.ReadFull(r.br, sum[:]); err != nil {
			return nil, fmt.Errorf("snapshot: read checksum: %w", err)
		}
		r.done = true
		if r.zr != nil {
			r.zr.Close()
		}
		if binary.LittleEndian.Uint32(sum[:]) != r.crc.Sum32() {
			return nil, ErrChecksum
		}
		return nil, io.EOF
	}
	if u-1 > maxRecordSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrRecordTooLarge, u-1)
	}
	n := int(u - 1)
	if cap(r.buf) < n {
		r.buf = make([]byte, n)
	}
	r.buf = r.buf[:n]
	if _, err := io.ReadFull(r.br, r.buf); err != nil {
		return nil, fmt.Errorf("snapshot: read record: %w", err)
	}
	_, _ = r.crc.Write(r.buf)
	return r.buf, nil
}

// byteReader adds the io.ByteReader ReadUvarint needs on top of a plain
// io.Reader without pulling the whole stream through bufio buffering
// semantics the decompressors already provide.
type byteReader struct {
	r   io.Reader
	one [1]byte
}

func newByteReader(r io.Reader) *byteReader {
	return &byteReader{r: r}
}

func (b *byteReader) Read(p []byte) (int, error) {
	return b.r.Read(p)
}

func (b *byteReader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(b.r, b.one[:]); err != nil {
		return 0, err
	}
	return b.one[0], nil
}
