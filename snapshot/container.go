package snapshot

import (
	"cmp"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/cowgo/seq"
	"github.com/hupe1980/cowgo/sortedmap"
)

// WriteList writes one record per visible item of list. marshal appends the
// encoding of v to dst and returns the extended slice.
func WriteList[T any](w io.Writer, list *seq.List[T], marshal func(dst []byte, v T) []byte, optFns ...func(*Options)) error {
	sw, err := NewWriter(w, optFns...)
	if err != nil {
		return err
	}
	var scratch []byte
	for v := range list.Values() {
		scratch = marshal(scratch[:0], v)
		if err := sw.WriteRecord(scratch); err != nil {
			_ = sw.Close()
			return err
		}
	}
	return sw.Close()
}

// ReadList rebuilds a list written by WriteList.
func ReadList[T any](r io.Reader, unmarshal func(p []byte) (T, error)) (*seq.List[T], error) {
	sr, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	list := seq.New[T]()
	for {
		rec, err := sr.Next()
		if errors.Is(err, io.EOF) {
			return list, nil
		}
		if err != nil {
			return nil, err
		}
		v, err := unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("snapshot: unmarshal record: %w", err)
		}
		list.Append(v)
	}
}

// WriteSortedMap writes one record per entry in ascending key order.
func WriteSortedMap[K cmp.Ordered, V any](w io.Writer, m *sortedmap.Map[K, V], marshal func(dst []byte, key K, value V) []byte, optFns ...func(*Options)) error {
	sw, err := NewWriter(w, optFns...)
	if err != nil {
		return err
	}
	var scratch []byte
	for k, v := range m.All() {
		scratch = marshal(scratch[:0], k, v)
		if err := sw.WriteRecord(scratch); err != nil {
			_ = sw.Close()
			return err
		}
	}
	return sw.Close()
}

// ReadSortedMap rebuilds a map written by WriteSortedMap.
func ReadSortedMap[K cmp.Ordered, V any](r io.Reader, unmarshal func(p []byte) (K, V, error)) (*sortedmap.Map[K, V], error) {
	sr, err := NewReader(r)
	if err != nil {
		return nil, err
	}
	m := sortedmap.New[K, V]()
	for {
		rec, err := sr.Next()
		if errors.Is(err, io.EOF) {
			return m, nil
		}
		if err != nil {
			return nil, err
		}
		k, v, err := unmarshal(rec)
		if err != nil {
			return nil, fmt.Errorf("snapshot: unmarshal record: %w", err)
		}
		m.Set(k, v)
	}
}
