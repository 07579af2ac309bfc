package session

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/f3rmion/sss/rsramp"
	"github.com/f3rmion/sss/scheme"
	"github.com/f3rmion/sss/shamir"
)

func secretArray(t *testing.T, s string) *scheme.Array[uint8] {
	t.Helper()
	a, err := scheme.NewArray([]byte(s))
	require.NoError(t, err)
	return a
}

func TestDealAndRecover(t *testing.T) {
	secret := secretArray(t, "correct horse battery staple")

	cases := []struct {
		name    string
		dealer  func() scheme.Scheme[uint8]
		ramp    int
		subsets [][]int
	}{
		{"ShamirGF256", func() scheme.Scheme[uint8] { return shamir.NewGF256() }, 1, [][]int{{0, 1, 2}, {4, 2, 0}, {1, 3, 4}}},
		{"ShamirGF256Ramp", func() scheme.Scheme[uint8] { return shamir.NewGF256() }, 2, [][]int{{0, 1, 2}, {2, 3, 4}}},
		{"ReedSolomon", func() scheme.Scheme[uint8] { return rsramp.New() }, 2, [][]int{{0, 3, 4}, {1, 2, 3}}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := NewDealer(c.dealer(), 3, c.ramp, 5)
			require.NoError(t, err)
			shares, err := d.Deal(secret)
			require.NoError(t, err)
			require.Len(t, shares, 5)

			for _, subset := range c.subsets {
				r, err := NewRecovery(c.dealer(), 3, c.ramp, 5, secret.Size())
				require.NoError(t, err)

				for i, k := range subset {
					done, err := r.Submit(shares[k])
					require.NoError(t, err)
					assert.Equal(t, i == len(subset)-1, done)
				}

				got, err := r.Secret()
				require.NoError(t, err)
				assert.Equal(t, secret.Data, got.Data)
			}
		})
	}
}

func TestDealerIsOneShot(t *testing.T) {
	d, err := NewDealer[uint8](shamir.NewGF256(), 2, 1, 3)
	require.NoError(t, err)

	_, err = d.Deal(secretArray(t, "first"))
	require.NoError(t, err)
	_, err = d.Deal(secretArray(t, "second"))
	assert.ErrorIs(t, err, ErrAlreadyDealt)
}

func TestDealerRetriesAfterFailure(t *testing.T) {
	d, err := NewDealer[uint8](shamir.NewGF256(), 3, 2, 4)
	require.NoError(t, err)

	_, err = d.Deal(secretArray(t, "odd"))
	assert.ErrorIs(t, err, scheme.ErrInvalidSecret)

	shares, err := d.Deal(secretArray(t, "even"))
	require.NoError(t, err)
	assert.Len(t, shares, 4)
}

func TestNewDealerRejectsParameters(t *testing.T) {
	_, err := NewDealer[uint8](shamir.NewGF256(), 2, 3, 5)
	assert.ErrorIs(t, err, scheme.ErrInvalidParameter)

	_, err = NewRecovery[uint8](rsramp.New(), 5, 1, 3, 0)
	assert.ErrorIs(t, err, scheme.ErrInvalidParameter)
}

func TestRecoveryRejections(t *testing.T) {
	secret := secretArray(t, "launch codes")
	d, err := NewDealer[uint8](shamir.NewGF256(), 3, 1, 5)
	require.NoError(t, err)
	shares, err := d.Deal(secret)
	require.NoError(t, err)

	newRecovery := func(t *testing.T) *Recovery[uint8] {
		r, err := NewRecovery[uint8](shamir.NewGF256(), 3, 1, 5, secret.Size())
		require.NoError(t, err)
		return r
	}

	t.Run("Duplicate", func(t *testing.T) {
		r := newRecovery(t)
		_, err := r.Submit(shares[0])
		require.NoError(t, err)
		_, err = r.Submit(shares[0])
		assert.ErrorIs(t, err, ErrDuplicateShare)
		assert.Equal(t, 1, r.Received())
	})

	t.Run("TamperedData", func(t *testing.T) {
		r := newRecovery(t)
		bad := &Share[uint8]{Index: shares[1].Index, Data: shares[1].Data.Clone(), Digest: shares[1].Digest}
		bad.Data.Data[0] ^= 1
		_, err := r.Submit(bad)
		assert.ErrorIs(t, err, ErrDigestMismatch)
		assert.Equal(t, 0, r.Received())
	})

	t.Run("RelabelledIndex", func(t *testing.T) {
		r := newRecovery(t)
		bad := &Share[uint8]{Index: 4, Data: shares[1].Data, Digest: shares[1].Digest}
		_, err := r.Submit(bad)
		assert.ErrorIs(t, err, ErrDigestMismatch)
	})

	t.Run("IndexOutOfRange", func(t *testing.T) {
		r := newRecovery(t)
		bad := &Share[uint8]{Index: 6, Data: shares[1].Data, Digest: shares[1].Digest}
		_, err := r.Submit(bad)
		assert.ErrorIs(t, err, scheme.ErrReconstruction)
	})

	t.Run("Empty", func(t *testing.T) {
		r := newRecovery(t)
		_, err := r.Submit(nil)
		assert.Error(t, err)
		_, err = r.Submit(&Share[uint8]{Index: 1})
		assert.Error(t, err)
	})

	t.Run("SecretBeforeThreshold", func(t *testing.T) {
		r := newRecovery(t)
		_, err := r.Submit(shares[0])
		require.NoError(t, err)
		_, err = r.Secret()
		assert.ErrorIs(t, err, scheme.ErrInsufficientShares)
	})

	t.Run("SubmitAfterComplete", func(t *testing.T) {
		r := newRecovery(t)
		for _, sh := range shares[:3] {
			_, err := r.Submit(sh)
			require.NoError(t, err)
		}
		done, err := r.Submit(shares[3])
		assert.True(t, done)
		assert.ErrorIs(t, err, ErrRecoveryComplete)
	})

	t.Run("ReconstructionFailureResets", func(t *testing.T) {
		r, err := NewRecovery[uint8](shamir.NewGF256(), 3, 1, 5, secret.Size()+1)
		require.NoError(t, err)
		for _, sh := range shares[:2] {
			_, err := r.Submit(sh)
			require.NoError(t, err)
		}
		done, err := r.Submit(shares[2])
		assert.False(t, done)
		assert.ErrorIs(t, err, scheme.ErrReconstruction)
		assert.Equal(t, 0, r.Received())

		_, err = r.Submit(shares[0])
		assert.NoError(t, err)
	})
}

func TestHashers(t *testing.T) {
	secret := secretArray(t, "keyed digests")
	key := []byte("dealer-side mac key")

	h, err := NewBlake2bHasher(key)
	require.NoError(t, err)
	d, err := NewDealer[uint8](shamir.NewGF256(), 2, 1, 3, WithHasher(h))
	require.NoError(t, err)
	shares, err := d.Deal(secret)
	require.NoError(t, err)
	assert.Len(t, shares[0].Digest, 32)

	t.Run("SameKeyAccepts", func(t *testing.T) {
		h2, err := NewBlake2bHasher(key)
		require.NoError(t, err)
		r, err := NewRecovery[uint8](shamir.NewGF256(), 2, 1, 3, secret.Size(), WithHasher(h2))
		require.NoError(t, err)
		_, err = r.Submit(shares[0])
		require.NoError(t, err)
		done, err := r.Submit(shares[2])
		require.NoError(t, err)
		assert.True(t, done)
	})

	t.Run("OtherKeyRejects", func(t *testing.T) {
		other, err := NewBlake2bHasher([]byte("someone else"))
		require.NoError(t, err)
		r, err := NewRecovery[uint8](shamir.NewGF256(), 2, 1, 3, secret.Size(), WithHasher(other))
		require.NoError(t, err)
		_, err = r.Submit(shares[0])
		assert.ErrorIs(t, err, ErrDigestMismatch)
	})

	t.Run("DefaultHasherRejects", func(t *testing.T) {
		r, err := NewRecovery[uint8](shamir.NewGF256(), 2, 1, 3, secret.Size())
		require.NoError(t, err)
		_, err = r.Submit(shares[0])
		assert.ErrorIs(t, err, ErrDigestMismatch)
	})

	t.Run("KeyTooLong", func(t *testing.T) {
		_, err := NewBlake2bHasher(make([]byte, 65))
		assert.Error(t, err)
	})

	t.Run("DigestBindsIndex", func(t *testing.T) {
		var sha SHA256Hasher
		assert.NotEqual(t, sha.Digest(1, []byte{1, 2}), sha.Digest(2, []byte{1, 2}))
	})
}

func TestGoldilocksSession(t *testing.T) {
	secret, err := scheme.NewArray([]uint64{1, 2, 3, 1 << 40})
	require.NoError(t, err)

	d, err := NewDealer[uint64](shamir.NewGoldilocks(), 2, 2, 3)
	require.NoError(t, err)
	shares, err := d.Deal(secret)
	require.NoError(t, err)

	r, err := NewRecovery[uint64](shamir.NewGoldilocks(), 2, 2, 3, secret.Size())
	require.NoError(t, err)
	_, err = r.Submit(shares[2])
	require.NoError(t, err)
	done, err := r.Submit(shares[0])
	require.NoError(t, err)
	require.True(t, done)

	got, err := r.Secret()
	require.NoError(t, err)
	assert.Equal(t, secret.Data, got.Data)
}

func TestConcurrentSubmit(t *testing.T) {
	secret := secretArray(t, "many hands")
	d, err := NewDealer[uint8](shamir.NewGF256(), 4, 1, 8)
	require.NoError(t, err)
	shares, err := d.Deal(secret)
	require.NoError(t, err)

	r, err := NewRecovery[uint8](shamir.NewGF256(), 4, 1, 8, secret.Size())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for _, sh := range shares {
		wg.Add(1)
		go func(sh *Share[uint8]) {
			defer wg.Done()
			_, _ = r.Submit(sh)
		}(sh)
	}
	wg.Wait()

	got, err := r.Secret()
	require.NoError(t, err)
	assert.Equal(t, secret.Data, got.Data)
}

func TestShareString(t *testing.T) {
	a, err := scheme.NewArray([]uint8{0xde, 0xad})
	require.NoError(t, err)
	s := &Share[uint8]{Index: 3, Data: a}
	assert.Equal(t, "Share{Index: 3, Len: 2}", s.String())
}
