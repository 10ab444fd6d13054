package option

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSome(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	o := Some("x")
	require.True(o.IsSome())
	require.False(o.IsNone())

	v, ok := o.Unwrap()
	require.True(ok)
	require.Equal("x", v)
	require.Equal("x", o.UnwrapOr("y"))
}

func TestNone(t *testing.T) {
	t.Parallel()
	require := require.New(t)

	o := None[int]()
	require.True(o.IsNone())
	require.False(o.IsSome())

	v, ok := o.Unwrap()
	require.False(ok)
	require.Zero(v)
	require.Equal(7, o.UnwrapOr(7))
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var o Option[string]
	require.True(t, o.IsNone())
}
