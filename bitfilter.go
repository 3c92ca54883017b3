package bitfilter

import (
	"context"
	"fmt"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dewaka/bitfilter/internal/bitset"
	"golang.org/x/sync/errgroup"
)

// cancelCheckInterval is how many elements InsertAll processes between
// context checks.
const cancelCheckInterval = 1024

// maxEncodeBuf caps the scratch buffers returned to the pool.
const maxEncodeBuf = 64 << 10

// Filter is a single-hash probabilistic membership filter over a fixed array
// of 64-bit words.
//
// ContainsMaybe never returns false for an element passed to Insert. It may
// return true for elements never inserted.
//
// A Filter created without WithConcurrent must not be written concurrently
// with any other call. With WithConcurrent every method is safe for
// concurrent use.
type Filter[T any] struct {
	words      bitset.Words
	n          uint64
	layout     Layout
	hasher     Hasher
	enc        Encoder[T]
	concurrent bool
	workers    int
	logger     *Logger
	metrics    MetricsCollector

	inserted atomic.Uint64
	bufPool  sync.Pool
}

// New creates a filter with the given number of 64-bit storage words.
//
// words must be positive; otherwise the returned error wraps
// ErrInvalidCapacity.
func New[T any](words int, enc Encoder[T], opts ...Option) (*Filter[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newFilter(words, enc, o)
}

// NewString creates a filter over strings using StringEncoder.
func NewString(words int, opts ...Option) (*Filter[string], error) {
	return New[string](words, StringEncoder, opts...)
}

// NewBytes creates a filter over byte slices using BytesEncoder.
func NewBytes(words int, opts ...Option) (*Filter[[]byte], error) {
	return New[[]byte](words, BytesEncoder, opts...)
}

// NewUint64 creates a filter over uint64 keys using Uint64Encoder.
func NewUint64(words int, opts ...Option) (*Filter[uint64], error) {
	return New[uint64](words, Uint64Encoder, opts...)
}

// NewWithEstimate creates a filter sized by WordsFor so that, after expected
// distinct inserts, the false positive rate is at most fpRate.
func NewWithEstimate[T any](expected int, fpRate float64, enc Encoder[T], opts ...Option) (*Filter[T], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	words, err := WordsFor(expected, fpRate, o.layout)
	if err != nil {
		return nil, err
	}
	o.logger.LogSizing(context.Background(), expected, fpRate, words)

	return newFilter(words, enc, o)
}

func newFilter[T any](words int, enc Encoder[T], o options) (*Filter[T], error) {
	if enc == nil {
		return nil, ErrNilEncoder
	}
	if !o.layout.valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidLayout, o.layout)
	}
	if words <= 0 {
		return nil, fmt.Errorf("%w: word count %d must be positive", ErrInvalidCapacity, words)
	}
	if uint64(words) > math.MaxUint64>>o.layout.shift() {
		return nil, fmt.Errorf("%w: word count %d overflows bit index", ErrInvalidCapacity, words)
	}

	f := &Filter[T]{
		n:          uint64(words),
		layout:     o.layout,
		hasher:     o.hasher,
		enc:        enc,
		concurrent: o.concurrent,
		workers:    o.workers,
		logger:     o.logger.WithWords(words).WithLayout(o.layout),
		metrics:    o.metricsCollector,
	}
	if o.concurrent {
		f.words = bitset.NewAtomic(words)
	} else {
		f.words = bitset.NewPlain(words)
	}
	f.bufPool.New = func() any {
		b := make([]byte, 0, 64)
		return &b
	}

	f.logger.LogCreate(context.Background(), f.AddressableBits(), hasherName(f.hasher), f.concurrent)

	return f, nil
}

// Hash returns the 64-bit digest that determines v's bit position.
func (f *Filter[T]) Hash(v T) uint64 {
	bp := f.bufPool.Get().(*[]byte)
	buf := f.enc((*bp)[:0], v)
	h := f.hasher.Sum64(buf)
	if cap(buf) <= maxEncodeBuf {
		*bp = buf
		f.bufPool.Put(bp)
	}
	return h
}

// locate returns the word index and single-bit mask addressed by v.
func (f *Filter[T]) locate(v T) (int, uint64) {
	word, bit := f.layout.locate(f.Hash(v), f.n)
	return int(word), 1 << bit
}

// Insert adds v to the filter. Inserting the same element again is a no-op.
func (f *Filter[T]) Insert(v T) {
	f.insert(v)
	f.metrics.RecordInsert()
}

func (f *Filter[T]) insert(v T) {
	word, mask := f.locate(v)
	f.words.Or(word, mask)
	f.inserted.Add(1)
}

// ContainsMaybe reports whether v may have been inserted.
//
// false means v was definitely never inserted; true means it probably was.
func (f *Filter[T]) ContainsMaybe(v T) bool {
	word, mask := f.locate(v)
	maybe := f.words.Test(word, mask)
	f.metrics.RecordQuery(maybe)
	return maybe
}

// InsertAll inserts every element of vs.
//
// On a concurrent filter the slice is split across the configured number of
// workers. Cancellation is observed between chunks of elements; elements
// inserted before cancellation stay inserted. The returned error is ctx.Err()
// in that case.
func (f *Filter[T]) InsertAll(ctx context.Context, vs []T) error {
	if len(vs) == 0 {
		return nil
	}

	start := time.Now()
	workers := 1
	if f.concurrent {
		workers = min(f.workers, len(vs))
	}

	var (
		done atomic.Int64
		err  error
	)
	if workers <= 1 {
		err = f.insertRange(ctx, vs, &done)
	} else {
		g, gctx := errgroup.WithContext(ctx)
		chunk := (len(vs) + workers - 1) / workers
		for lo := 0; lo < len(vs); lo += chunk {
			part := vs[lo:min(lo+chunk, len(vs))]
			g.Go(func() error {
				return f.insertRange(gctx, part, &done)
			})
		}
		err = g.Wait()
	}

	elapsed := time.Since(start)
	f.metrics.RecordBatchInsert(int(done.Load()), elapsed, err)
	f.logger.LogBatchInsert(ctx, int(done.Load()), workers, elapsed, err)

	return err
}

func (f *Filter[T]) insertRange(ctx context.Context, vs []T, done *atomic.Int64) error {
	for i, v := range vs {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		f.insert(v)
		done.Add(1)
	}
	return nil
}

// WordCount returns the number of 64-bit storage words.
func (f *Filter[T]) WordCount() int { return int(f.n) }

// TotalBits returns the number of allocated bits (WordCount * 64).
func (f *Filter[T]) TotalBits() uint64 { return f.n * 64 }

// AddressableBits returns the number of bits an element can map to.
// Equal to TotalBits under LayoutWord and TotalBits/8 under LayoutByte.
func (f *Filter[T]) AddressableBits() uint64 { return f.n * f.layout.SlotsPerWord() }

// Layout returns the bit layout in use.
func (f *Filter[T]) Layout() Layout { return f.layout }

// Concurrent reports whether the filter uses atomic storage.
func (f *Filter[T]) Concurrent() bool { return f.concurrent }

// Inserted returns the number of insert calls, duplicates included.
func (f *Filter[T]) Inserted() uint64 { return f.inserted.Load() }

// OnesCount returns the number of set bits.
func (f *Filter[T]) OnesCount() int { return f.words.OnesCount() }

// FillRatio returns the fraction of addressable bits that are set.
func (f *Filter[T]) FillRatio() float64 {
	return float64(f.OnesCount()) / float64(f.AddressableBits())
}

// EstimatedFalsePositiveRate returns the probability that an element never
// inserted is reported present, given the current contents. With one hash
// function this is exactly the fill ratio.
func (f *Filter[T]) EstimatedFalsePositiveRate() float64 {
	return f.FillRatio()
}

// Words returns a copy of the underlying storage words.
func (f *Filter[T]) Words() []uint64 { return f.words.Snapshot() }
