package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plorth-go/plorth/internal/dictionary"
)

type entry struct {
	id  string
	val int
}

func (e entry) Identifier() string { return e.id }

func TestInsertAndFind(t *testing.T) {
	d := dictionary.New[entry]()
	d.Insert(entry{"a", 1})
	d.Insert(entry{"b", 2})

	got, ok := d.Find("a")
	require.True(t, ok)
	assert.Equal(t, 1, got.val)

	_, ok = d.Find("missing")
	assert.False(t, ok)
	assert.Equal(t, 2, d.Size())
}

func TestRedefinitionKeepsPosition(t *testing.T) {
	d := dictionary.New[entry]()
	d.Insert(entry{"a", 1})
	d.Insert(entry{"b", 2})
	d.Insert(entry{"a", 99})

	words := d.Words()
	require.Len(t, words, 2)
	assert.Equal(t, "a", words[0].id)
	assert.Equal(t, 99, words[0].val)
	assert.Equal(t, "b", words[1].id)
}
