package errs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsWrapSentinels(t *testing.T) {
	assert.ErrorIs(t, NotFound("venue %d", 7), ErrNotFound)
	assert.EqualError(t, NotFound("venue %d", 7), "record not found: venue 7")
	assert.ErrorIs(t, Constraint("name is required"), ErrConstraint)
}

func TestWriteFailure(t *testing.T) {
	assert.Nil(t, WriteFailure("create venue", nil))

	err := WriteFailure("create venue", errors.New("connection reset"))
	assert.ErrorIs(t, err, ErrWriteFailure)
	assert.EqualError(t, err, "write failure: create venue: connection reset")

	notFound := NotFound("venue 1")
	assert.Same(t, notFound, WriteFailure("delete venue", notFound))

	constraint := Constraint("artist 2 does not exist")
	assert.Same(t, constraint, WriteFailure("create show", constraint))
	assert.NotErrorIs(t, WriteFailure("create show", constraint), ErrWriteFailure)
}
