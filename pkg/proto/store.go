package proto

import (
	"strings"
)

// Mode selects how a Store accumulates fragments. It is fixed for the life of
// the store.
type Mode int

const (
	// Single keeps only the last appended fragment.
	Single Mode = iota
	// Batched keeps every fragment and wraps them in a command list.
	Batched
)

func (m Mode) String() string {
	if m == Batched {
		return "batched"
	}
	return "single"
}

const (
	batchHead = `{"Command":"` + CommandBatchExecute + `","CommandList":[`
	batchTail = `]}`
)

// Store accumulates serialized command fragments until Finalize turns them
// into one request body. A store must not be appended to after Finalize.
type Store interface {
	Mode() Mode
	Append(fragment string)
	Finalize() (count int, payload string)
}

func NewStore(mode Mode) Store {
	if mode == Batched {
		return &batchedStore{}
	}
	return &singleStore{}
}

type singleStore struct {
	fragment string
	count    int
	final    bool
}

func (s *singleStore) Mode() Mode {
	return Single
}

func (s *singleStore) Append(fragment string) {
	if s.final {
		panic("proto: append to finalized store")
	}
	s.fragment = fragment
	s.count = 0
	if fragment != "" {
		s.count = 1
	}
}

func (s *singleStore) Finalize() (int, string) {
	if s.final {
		panic("proto: store finalized twice")
	}
	s.final = true

	payload := s.fragment
	s.fragment = ""
	return s.count, payload
}

// batchedStore writes the delimiter as fragments arrive, the envelope is only
// added by Finalize.
type batchedStore struct {
	buf   strings.Builder
	count int
	final bool
}

func (s *batchedStore) Mode() Mode {
	return Batched
}

func (s *batchedStore) Append(fragment string) {
	if s.final {
		panic("proto: append to finalized store")
	}
	if s.count > 0 {
		s.buf.WriteByte(',')
	}
	s.buf.WriteString(fragment)
	s.count++
}

func (s *batchedStore) Finalize() (int, string) {
	if s.final {
		panic("proto: store finalized twice")
	}
	s.final = true

	var out strings.Builder
	out.Grow(len(batchHead) + s.buf.Len() + len(batchTail))
	out.WriteString(batchHead)
	out.WriteString(s.buf.String())
	out.WriteString(batchTail)

	s.buf.Reset()
	return s.count, out.String()
}
