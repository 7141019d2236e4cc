package statestore

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/marcussviniciusa/speed-funnels-sub000/internal/domain"
)

// DefaultTTL é a validade padrão de um state OAuth
const DefaultTTL = 10 * time.Minute

const tokenBytes = 16 // 128 bits de entropia

// Binding é o contexto amarrado a um token de state: a verificação devolve
// exatamente o par (provider, tenant) que iniciou o fluxo.
type Binding struct {
	Provider  domain.Provider
	TenantID  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Store guarda tokens anti-CSRF de uso único com TTL. A implementação em
// memória atende uma instância; em deploy multi-instância a interface permite
// trocar por um cache distribuído.
type Store interface {
	Create(provider domain.Provider, tenantID string) (string, error)
	Verify(token string) (*Binding, bool)
	Sweep() int
}

// MemoryStore implementa Store sobre um mapa protegido por mutex
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]*Binding
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &MemoryStore{
		ttl:     ttl,
		entries: make(map[string]*Binding),
	}
}

// Create gera um token aleatório (CSPRNG) e registra o binding. Faz uma
// varredura preguiçosa dos expirados, já que não há agendador garantido.
func (s *MemoryStore) Create(provider domain.Provider, tenantID string) (string, error) {
	token, err := generateToken()
	if err != nil {
		return "", errors.Wrap(err, "erro ao gerar token de state")
	}

	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepLocked(now)

	s.entries[token] = &Binding{
		Provider:  provider,
		TenantID:  tenantID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	return token, nil
}

// Verify consome o token: apenas o primeiro verificador de um token válido
// recebe o binding; os demais (e tokens expirados ou desconhecidos) recebem
// false. A entrada é sempre removida.
func (s *MemoryStore) Verify(token string) (*Binding, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	binding, ok := s.entries[token]
	if !ok {
		return nil, false
	}

	delete(s.entries, token)

	if time.Now().After(binding.ExpiresAt) {
		return nil, false
	}

	return binding, true
}

// Sweep remove os states expirados e retorna quantos foram removidos
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sweepLocked(time.Now())
}

func (s *MemoryStore) sweepLocked(now time.Time) int {
	removed := 0
	for token, binding := range s.entries {
		if now.After(binding.ExpiresAt) {
			delete(s.entries, token)
			removed++
		}
	}
	return removed
}

// Len retorna o número de states pendentes
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func generateToken() (string, error) {
	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
