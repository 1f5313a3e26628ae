package historical

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"unsafe"

	"golang.org/x/exp/mmap"
)

var ErrEof = errors.New("EOF")

// Source reads fixed-size binary records out of a memory-mapped experiment
// log by index.
type Source[T any] struct {
	dataSourceName string
	recordSize     int64
	reader         *mmap.ReaderAt
	bufferPool     *sync.Pool
}

func NewSource[T any](dataSourceName string) *Source[T] {
	recordSize := int64(unsafe.Sizeof(*new(T)))
	return &Source[T]{
		dataSourceName: dataSourceName,
		recordSize:     recordSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				buffer := make([]byte, recordSize)
				return &buffer
			},
		},
	}
}

func (s *Source[T]) Open() error {
	var err error
	s.reader, err = mmap.Open(s.dataSourceName)
	if err != nil {
		return fmt.Errorf("unable to open data source %q: %w", s.dataSourceName, err)
	}
	if int64(s.reader.Len())%s.recordSize != 0 {
		_ = s.reader.Close()
		s.reader = nil
		return fmt.Errorf("data source %q size is not a multiple of the record size", s.dataSourceName)
	}
	return nil
}

func (s *Source[T]) Close() {
	if s.reader != nil {
		_ = s.reader.Close()
	}
}

func (s *Source[T]) Read(index int64, data *T) error {
	buffer := s.bufferPool.Get().(*[]byte)
	defer s.bufferPool.Put(buffer)

	n, err := s.reader.ReadAt(*buffer, index*s.recordSize)
	if err != nil && err != io.EOF {
		return fmt.Errorf("unable to read record %d: %w", index, err)
	}
	if int64(n) < s.recordSize {
		return ErrEof
	}

	*data = *(*T)(unsafe.Pointer(&(*buffer)[0])) // #nosec G103
	return nil
}

func (s *Source[T]) EntryCount() (int64, error) {
	if s.reader == nil {
		return 0, fmt.Errorf("data source %q is not open", s.dataSourceName)
	}
	return int64(s.reader.Len()) / s.recordSize, nil
}
