package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindAndUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Parsing("Parse", "bad html", cause)

	var e *Error
	assert.True(t, errors.As(err, &e))
	assert.Equal(t, KindParsing, e.Kind())
	assert.ErrorIs(t, err, cause)
}

func TestIs(t *testing.T) {
	err := Extraction("grabArticle", "retry ladder exhausted", nil)
	assert.True(t, Is(err, KindExtraction))
	assert.False(t, Is(err, KindMetadata))
}

func TestMetadataSentinel(t *testing.T) {
	err := Metadata("harvestMetadata", "no title recovered", ErrNoMetadata)
	assert.ErrorIs(t, err, ErrNoMetadata)
	assert.True(t, Is(err, KindMetadata))
}
