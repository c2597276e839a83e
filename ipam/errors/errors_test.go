package errors

import (
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// These mostly guard the formatting paths: variadic args that are not
// expanded, or format verbs without arguments, show up here first.

func TestErrInvalidArgument(t *testing.T) {
	t.Parallel()

	err := ErrInvalidArgument("%v must not be empty", "identifier")
	require.EqualError(t, err, "invalid argument: identifier must not be empty")
	require.True(t, IsErrInvalidArgument(err))
	require.False(t, IsErrBadState(err))

	err2 := ErrInvalidArgument("records are nil")
	require.EqualError(t, err2, "invalid argument: records are nil")
	require.True(t, IsErrInvalidArgument(err2))
}

func TestErrNotFound(t *testing.T) {
	t.Parallel()

	err := ErrNotFound("grid", "100")
	require.EqualError(t, err, "grid 100 not found")
	require.True(t, IsErrNotFound(err))
	require.False(t, IsErrAlreadyExists(err))
}

func TestErrAlreadyExists(t *testing.T) {
	t.Parallel()

	err := ErrAlreadyExists("member", "gm.example.com")
	require.EqualError(t, err, "member gm.example.com already exists")
	require.True(t, IsErrAlreadyExists(err))
}

func TestErrBadState(t *testing.T) {
	t.Parallel()

	err := ErrBadState("row %v has a broken %v column", 100, "grid_connection")
	require.EqualError(t, err, "an invalid state was encountered: row 100 has a broken grid_connection column")
	require.True(t, IsErrBadState(err))

	err2 := ErrBadState("totally busted")
	require.EqualError(t, err2, "an invalid state was encountered: totally busted")
	require.True(t, IsErrBadState(err2))
}

func TestErrInvalidConfig(t *testing.T) {
	t.Parallel()

	err := ErrInvalidConfig("wapi_version", "%q has no major version", "x.1")
	require.EqualError(t, err, "config option wapi_version is invalid: \"x.1\" has no major version")
	require.True(t, IsErrInvalidConfig(err))

	err2 := ErrInvalidConfig("grid_master_host", "required")
	require.EqualError(t, err2, "config option grid_master_host is invalid: required")
	require.True(t, IsErrInvalidConfig(err2))
}

func TestWrappedErrors(t *testing.T) {
	t.Parallel()

	err := pkgerrors.Wrap(ErrBadState("blob is not json"), "loading grid 100")
	require.EqualError(t, err, "loading grid 100: an invalid state was encountered: blob is not json")
	require.True(t, IsErrBadState(err))
	require.False(t, IsErrNotFound(err))
}
