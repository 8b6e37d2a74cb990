package errors_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"

	plorthErrors "github.com/plorth-go/plorth/errors"
	"github.com/plorth-go/plorth/internal/position"
	"github.com/plorth-go/plorth/internal/value"
)

func TestFlatWithoutPosition(t *testing.T) {
	err := value.NewError(value.ErrType, "Expected number, got string instead")
	assert.Equal(t, "Error: type - Expected number, got string instead", plorthErrors.Flat(err))
}

func TestFlatWithFilename(t *testing.T) {
	err := value.NewErrorAt(value.ErrReference, "Unrecognized word: 'nope'", position.New("main.plorth", 3, 7))
	assert.Equal(t, "Error: main.plorth:3:7:reference - Unrecognized word: 'nope'", plorthErrors.Flat(err))
}

func TestFormatRendersCaretUnderColumn(t *testing.T) {
	source := "1 2\n  )"
	err := value.NewErrorAt(value.ErrSyntax, "Unexpected ')'; Missing value", position.New("", 2, 3))

	out := plorthErrors.Format(err, source)
	snaps.MatchSnapshot(t, "syntax-error-caret", out)
}

func TestFormatRendersDoubleWidthCaretAlignment(t *testing.T) {
	source := "\"漢字\" x"
	err := value.NewErrorAt(value.ErrReference, "Unrecognized word: 'x'", position.New("greeting.plorth", 1, 6))

	out := plorthErrors.Format(err, source)
	snaps.MatchSnapshot(t, "double-width-caret", out)
}

func TestFormatWithoutPositionOmitsLocationBlock(t *testing.T) {
	err := value.NewError(value.ErrUnknown, "custom failure")
	out := plorthErrors.Format(err, "irrelevant source")
	assert.Equal(t, "unknown - custom failure", out)
}
