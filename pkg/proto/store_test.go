package proto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleStoreKeepsLast(t *testing.T) {
	s := NewStore(Single)
	assert.Equal(t, Single, s.Mode())

	s.Append(`{"Command":"A"}`)
	s.Append(`{"Command":"B"}`)

	count, payload := s.Finalize()
	assert.Equal(t, 1, count)
	assert.Equal(t, `{"Command":"B"}`, payload)
}

func TestSingleStoreEmpty(t *testing.T) {
	count, payload := NewStore(Single).Finalize()
	assert.Equal(t, 0, count)
	assert.Equal(t, "", payload)
}

func TestSingleStoreEmptyFragment(t *testing.T) {
	s := NewStore(Single)
	s.Append(`{"Command":"A"}`)
	s.Append("")

	count, payload := s.Finalize()
	assert.Equal(t, 0, count)
	assert.Equal(t, "", payload)
}

func TestBatchedStoreWrapsInOrder(t *testing.T) {
	s := NewStore(Batched)
	s.Append(`{"Command":"A"}`)
	s.Append(`{"Command":"B"}`)

	count, payload := s.Finalize()
	assert.Equal(t, 2, count)

	var env struct {
		Command     string
		CommandList []map[string]string
	}
	require.NoError(t, json.Unmarshal([]byte(payload), &env))
	assert.Equal(t, CommandBatchExecute, env.Command)
	assert.Equal(t, []map[string]string{{"Command": "A"}, {"Command": "B"}}, env.CommandList)
}

func TestBatchedStoreWrapsSingleFragment(t *testing.T) {
	s := NewStore(Batched)
	s.Append(`{"Command":"A"}`)

	count, payload := s.Finalize()
	assert.Equal(t, 1, count)
	assert.Equal(t, `{"Command":"Draw/CommandList","CommandList":[{"Command":"A"}]}`, payload)
}

func TestStoreRejectsAppendAfterFinalize(t *testing.T) {
	for _, mode := range []Mode{Single, Batched} {
		s := NewStore(mode)
		s.Append("{}")
		s.Finalize()

		assert.Panics(t, func() { s.Append("{}") }, mode.String())
		assert.Panics(t, func() { s.Finalize() }, mode.String())
	}
}
