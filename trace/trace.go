package trace

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/quantmesh/randgen/core"
)

// Stream header: magic, format version, flags.
var magic = [4]byte{'R', 'G', 'T', 'R'}

const (
	formatVersion  = 1
	flagCompressed = 1 << 0

	recordSize = 1 + 8 // kind byte + float64 bits
)

var (
	// ErrClosed is returned when recording to a closed Recorder.
	ErrClosed = errors.New("recorder is closed")

	// ErrBadHeader is returned when a stream does not start with a valid header.
	ErrBadHeader = errors.New("invalid trace header")
)

// ErrBadRecord indicates a record with an unknown kind byte.
type ErrBadRecord struct {
	Kind byte
}

func (e *ErrBadRecord) Error() string {
	return fmt.Sprintf("invalid trace record kind: %d", e.Kind)
}

// Record is one captured draw.
type Record struct {
	Kind  core.Kind
	Value float64
}

// Options configures a Recorder.
type Options struct {
	// Compress enables zstd compression of the record stream.
	Compress bool

	// CompressionLevel is the zstd level (1-19) used when Compress is set.
	CompressionLevel int
}

// DefaultOptions provides sensible defaults for trace recording.
var DefaultOptions = Options{
	Compress:         true,
	CompressionLevel: 3,
}

// Recorder writes draw records to an underlying writer. It is safe for
// concurrent use so that multiple generators may share one trace stream.
type Recorder struct {
	mu     sync.Mutex
	buf    *bufio.Writer
	enc    *zstd.Encoder
	closed bool
}

// NewRecorder creates a Recorder writing to w. The header is written
// immediately; records follow, compressed when enabled.
func NewRecorder(w io.Writer, optFns ...func(o *Options)) (*Recorder, error) {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	header := make([]byte, 6)
	copy(header, magic[:])
	header[4] = formatVersion
	if opts.Compress {
		header[5] = flagCompressed
	}
	if _, err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write trace header: %w", err)
	}

	r := &Recorder{}
	if opts.Compress {
		level := zstd.EncoderLevelFromZstd(opts.CompressionLevel)
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(level))
		if err != nil {
			return nil, fmt.Errorf("create trace compressor: %w", err)
		}
		r.enc = enc
		r.buf = bufio.NewWriter(enc)
	} else {
		r.buf = bufio.NewWriter(w)
	}
	return r, nil
}

// Record appends one draw to the stream.
func (r *Recorder) Record(kind core.Kind, value float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}

	var rec [recordSize]byte
	rec[0] = byte(kind)
	binary.LittleEndian.PutUint64(rec[1:], math.Float64bits(value))
	if _, err := r.buf.Write(rec[:]); err != nil {
		return fmt.Errorf("write trace record: %w", err)
	}
	return nil
}

// Close flushes buffered records and finalizes the compressed stream.
// It does not close the underlying writer.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	if err := r.buf.Flush(); err != nil {
		return fmt.Errorf("flush trace records: %w", err)
	}
	if r.enc != nil {
		if err := r.enc.Close(); err != nil {
			return fmt.Errorf("close trace compressor: %w", err)
		}
	}
	return nil
}

// Reader replays a recorded stream.
type Reader struct {
	br  *bufio.Reader
	dec *zstd.Decoder
}

// NewReader creates a Reader for a stream produced by a Recorder. The header
// determines whether the record stream is compressed.
func NewReader(r io.Reader) (*Reader, error) {
	header := make([]byte, 6)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadHeader, err)
	}
	if [4]byte(header[:4]) != magic || header[4] != formatVersion {
		return nil, ErrBadHeader
	}

	tr := &Reader{}
	if header[5]&flagCompressed != 0 {
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("create trace decompressor: %w", err)
		}
		tr.dec = dec
		tr.br = bufio.NewReader(dec)
	} else {
		tr.br = bufio.NewReader(r)
	}
	return tr, nil
}

// Next returns the next record, or io.EOF at the end of the stream.
func (r *Reader) Next() (Record, error) {
	var rec [recordSize]byte
	if _, err := io.ReadFull(r.br, rec[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return Record{}, io.EOF
		}
		return Record{}, fmt.Errorf("read trace record: %w", err)
	}

	kind := core.Kind(rec[0])
	if !kind.Valid() {
		return Record{}, &ErrBadRecord{Kind: rec[0]}
	}
	return Record{
		Kind:  kind,
		Value: math.Float64frombits(binary.LittleEndian.Uint64(rec[1:])),
	}, nil
}

// Replay calls fn for every record until the end of the stream or the first
// error returned by fn.
func (r *Reader) Replay(fn func(rec Record) error) error {
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
}

// Close releases decompressor resources. It does not close the underlying
// reader.
func (r *Reader) Close() {
	if r.dec != nil {
		r.dec.Close()
	}
}
