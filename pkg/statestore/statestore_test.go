package statestore

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
)

func TestMemoryStore_VerifySucceedsExactlyOnce(t *testing.T) {
	store := NewMemoryStore(DefaultTTL)

	token, err := store.Create(domain.ProviderMeta, "42")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	binding, ok := store.Verify(token)
	require.True(t, ok)
	assert.Equal(t, domain.ProviderMeta, binding.Provider)
	assert.Equal(t, "42", binding.TenantID)

	// Segunda verificação com o mesmo token deve falhar (uso único)
	binding, ok = store.Verify(token)
	assert.False(t, ok)
	assert.Nil(t, binding)
}

func TestMemoryStore_VerifyUnknownToken(t *testing.T) {
	store := NewMemoryStore(DefaultTTL)

	binding, ok := store.Verify("token-que-nunca-existiu")
	assert.False(t, ok)
	assert.Nil(t, binding)
}

func TestMemoryStore_VerifyExpiredToken(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)

	token, err := store.Create(domain.ProviderGoogle, "7")
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	// Expirado: falha mesmo no primeiro uso e a entrada é descartada
	binding, ok := store.Verify(token)
	assert.False(t, ok)
	assert.Nil(t, binding)
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_TokensAreUniqueAndStrong(t *testing.T) {
	store := NewMemoryStore(DefaultTTL)

	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		token, err := store.Create(domain.ProviderMeta, "42")
		require.NoError(t, err)
		assert.Len(t, token, tokenBytes*2) // hex de 128 bits

		_, dup := seen[token]
		assert.False(t, dup, "token repetido: %s", token)
		seen[token] = struct{}{}
	}
}

func TestMemoryStore_ConcurrentVerifyOnlyOneWinner(t *testing.T) {
	store := NewMemoryStore(DefaultTTL)

	token, err := store.Create(domain.ProviderMeta, "42")
	require.NoError(t, err)

	const verifiers = 20

	var wg sync.WaitGroup
	successes := make(chan *Binding, verifiers)

	for i := 0; i < verifiers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if binding, ok := store.Verify(token); ok {
				successes <- binding
			}
		}()
	}

	wg.Wait()
	close(successes)

	winners := 0
	for binding := range successes {
		winners++
		assert.Equal(t, "42", binding.TenantID)
	}
	assert.Equal(t, 1, winners, "apenas o primeiro verificador pode consumir o state")
}

func TestMemoryStore_SweepRemovesOnlyExpired(t *testing.T) {
	store := NewMemoryStore(20 * time.Millisecond)

	_, err := store.Create(domain.ProviderMeta, "1")
	require.NoError(t, err)
	_, err = store.Create(domain.ProviderGoogle, "2")
	require.NoError(t, err)

	assert.Equal(t, 0, store.Sweep())
	assert.Equal(t, 2, store.Len())

	time.Sleep(40 * time.Millisecond)

	assert.Equal(t, 2, store.Sweep())
	assert.Equal(t, 0, store.Len())
}

func TestMemoryStore_LazySweepOnCreate(t *testing.T) {
	store := NewMemoryStore(10 * time.Millisecond)

	_, err := store.Create(domain.ProviderMeta, "1")
	require.NoError(t, err)

	time.Sleep(30 * time.Millisecond)

	// O Create seguinte varre o expirado: sobra apenas o novo state
	_, err = store.Create(domain.ProviderMeta, "2")
	require.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}
