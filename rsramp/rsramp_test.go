package rsramp

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/sss/scheme"
)

func randomSecret(t *testing.T, n int) *scheme.Array[uint8] {
	t.Helper()
	b := make([]byte, n)
	_, err := rand.Read(b)
	require.NoError(t, err)
	a, err := scheme.NewArray(b)
	require.NoError(t, err)
	return a
}

func subsets(n, k int) [][]int {
	var out [][]int
	var rec func(start int, cur []int)
	rec = func(start int, cur []int) {
		if len(cur) == k {
			out = append(out, append([]int(nil), cur...))
			return
		}
		for i := start; i < n; i++ {
			rec(i+1, append(cur, i))
		}
	}
	rec(0, nil)
	return out
}

func TestRoundTrip(t *testing.T) {
	params := []struct{ threshold, ramp, num int }{
		{1, 1, 2},
		{2, 1, 3},
		{3, 2, 5},
		{3, 3, 4},
		{4, 2, 6},
	}

	for _, p := range params {
		secret := randomSecret(t, 24)

		s := New()
		require.NoError(t, s.Initialize(p.threshold, p.ramp, p.num))
		require.NoError(t, s.SetSecret(secret))
		require.NoError(t, s.GenerateShares())
		shares, err := s.Shares()
		require.NoError(t, err)
		indices, err := s.ShareIndices()
		require.NoError(t, err)
		require.Len(t, shares, p.num)

		for _, subset := range subsets(p.num, p.threshold) {
			picked := make([]*scheme.Array[uint8], len(subset))
			pickedIdx := make([]int, len(subset))
			for i, k := range subset {
				picked[i] = shares[k]
				pickedIdx[i] = indices[k]
			}

			r := New()
			require.NoError(t, r.Initialize(p.threshold, p.ramp, p.num))
			require.NoError(t, r.SetExternalShares(picked, pickedIdx))
			got, err := r.ReconstructSecret(secret.Size())
			require.NoError(t, err)
			require.Equal(t, secret.Data, got.Data, "T=%d R=%d N=%d subset=%v", p.threshold, p.ramp, p.num, subset)
		}
	}
}

func TestShareSize(t *testing.T) {
	s := New(scheme.WithPadding())
	require.NoError(t, s.Initialize(4, 3, 6))
	require.NoError(t, s.SetSecret(randomSecret(t, 10)))
	require.NoError(t, s.GenerateShares())

	shares, err := s.Shares()
	require.NoError(t, err)
	for _, sh := range shares {
		assert.Equal(t, 4, sh.Size())
	}

	m := s.RandomMatrix()
	require.NotNil(t, m)
	assert.Equal(t, 1, m.Rows)
	assert.Equal(t, 4, m.Cols)

	got, err := s.ReconstructSecret(0)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Size())
}

func TestSharesHideSecretPieces(t *testing.T) {
	secret := randomSecret(t, 32)
	s := New()
	require.NoError(t, s.Initialize(3, 1, 5))
	require.NoError(t, s.SetSecret(secret))
	require.NoError(t, s.GenerateShares())

	shares, err := s.Shares()
	require.NoError(t, err)
	for _, sh := range shares {
		assert.NotEqual(t, secret.Data, sh.Data)
	}
}

func TestFreshRandomness(t *testing.T) {
	s := New()
	require.NoError(t, s.Initialize(2, 1, 3))
	require.NoError(t, s.SetSecret(randomSecret(t, 16)))

	require.NoError(t, s.GenerateShares())
	first, err := s.Shares()
	require.NoError(t, err)
	require.NoError(t, s.GenerateShares())
	second, err := s.Shares()
	require.NoError(t, err)

	assert.NotEqual(t, first[0].Data, second[0].Data)
}

func TestErrors(t *testing.T) {
	t.Run("TooManyShards", func(t *testing.T) {
		s := New()
		assert.ErrorIs(t, s.Initialize(10, 1, 247), scheme.ErrInvalidParameter)
		assert.NoError(t, s.Initialize(10, 1, 246))
	})

	t.Run("BadOrdering", func(t *testing.T) {
		s := New()
		assert.ErrorIs(t, s.Initialize(2, 3, 5), scheme.ErrInvalidParameter)
	})

	t.Run("GenerateBeforeInitialize", func(t *testing.T) {
		assert.ErrorIs(t, New().GenerateShares(), scheme.ErrNotInitialized)
	})

	t.Run("GenerateBeforeSetSecret", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Initialize(3, 2, 5))
		assert.ErrorIs(t, s.GenerateShares(), scheme.ErrNotInitialized)
	})

	t.Run("ReconstructBeforeInitialize", func(t *testing.T) {
		_, err := New().ReconstructSecret(4)
		assert.ErrorIs(t, err, scheme.ErrNotInitialized)
	})

	t.Run("InconsistentShareLengths", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Initialize(2, 1, 3))
		a, _ := scheme.NewArray([]uint8{1, 2})
		b, _ := scheme.NewArray([]uint8{1, 2, 3})
		require.NoError(t, s.SetExternalShares([]*scheme.Array[uint8]{a, b}, []int{1, 2}))
		_, err := s.ReconstructSecret(2)
		assert.ErrorIs(t, err, scheme.ErrReconstruction)
	})

	t.Run("MismatchedLists", func(t *testing.T) {
		s := New()
		require.NoError(t, s.Initialize(2, 1, 3))
		a, _ := scheme.NewArray([]uint8{1, 2})
		err := s.SetExternalShares([]*scheme.Array[uint8]{a}, []int{1, 2})
		assert.ErrorIs(t, err, scheme.ErrShareCountMismatch)
	})
}
