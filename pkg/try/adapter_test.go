package try

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOf_Success(t *testing.T) {
	t.Parallel()

	out := Of(func() (int, error) { return 42, nil })

	require.True(t, out.IsSuccess())
	assert.Equal(t, 42, out.GetOrElse(0))
}

func TestOf_ErrorBecomesFailure(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out := Of(func() (int, error) { return 0, boom })

	require.True(t, out.IsFailure())
	assert.Same(t, boom, out.Err())
}

func TestOf_PanicWithErrorIsCaptured(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	out := Of(func() (int, error) { panic(boom) })

	require.True(t, out.IsFailure())
	assert.Same(t, boom, out.Err())
}

func TestOf_PanicWithValueIsWrapped(t *testing.T) {
	t.Parallel()

	out := Of(func() (int, error) { panic("bad state") })

	require.True(t, out.IsFailure())
	require.EqualError(t, out.Err(), "panic: bad state")

	var pe *PanicError
	require.ErrorAs(t, out.Err(), &pe)
	assert.Equal(t, "bad state", pe.Value)
}

func TestTry_WrapperNeverFails(t *testing.T) {
	t.Parallel()

	wrapped := Try(func() (int, error) { return 42, nil })

	out := wrapped()
	require.True(t, out.IsSuccess())
	assert.Equal(t, 42, out.GetOrElse(0))
}

func TestTry1(t *testing.T) {
	t.Parallel()

	atoi := Try1(strconv.Atoi)

	out := atoi("5")
	require.True(t, out.IsSuccess())
	assert.Equal(t, 5, out.GetOrElse(0))

	out = atoi("bad")
	require.True(t, out.IsFailure())
	var numErr *strconv.NumError
	require.ErrorAs(t, out.Err(), &numErr)
}

func TestTry2(t *testing.T) {
	t.Parallel()

	div := Try2(func(a, b int) (int, error) {
		if b == 0 {
			return 0, errors.New("division by zero")
		}
		return a / b, nil
	})

	out := div(10, 2)
	require.True(t, out.IsSuccess())
	assert.Equal(t, 5, out.GetOrElse(0))

	out = div(10, 0)
	require.True(t, out.IsFailure())
	require.EqualError(t, out.Err(), "division by zero")
}
