package paypal

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sync"
	"time"

	"github.com/DanielPopoola/checkout-proxy/internal/domain"
)

// TokenSource issues processor access tokens.
type TokenSource interface {
	GetAccessToken(ctx context.Context) (*domain.AccessToken, error)
}

// defaultExpiryMargin keeps a cached token from expiring mid-request.
const defaultExpiryMargin = 60 * time.Second

// CachingTokenProvider reuses a token until shortly before the processor's
// expiry. Entries are keyed by a hash of the credentials and are dropped
// explicitly through Invalidate when the processor rejects a token.
type CachingTokenProvider struct {
	inner  TokenSource
	key    string
	margin time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*domain.AccessToken
}

func NewCachingTokenProvider(inner TokenSource, clientID, clientSecret string) *CachingTokenProvider {
	return &CachingTokenProvider{
		inner:   inner,
		key:     credentialKey(clientID, clientSecret),
		margin:  defaultExpiryMargin,
		now:     time.Now,
		entries: make(map[string]*domain.AccessToken),
	}
}

func credentialKey(clientID, clientSecret string) string {
	sum := sha256.Sum256([]byte(clientID + ":" + clientSecret))
	return hex.EncodeToString(sum[:])
}

func (p *CachingTokenProvider) GetAccessToken(ctx context.Context) (*domain.AccessToken, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if token, ok := p.entries[p.key]; ok && token.Valid(p.now(), p.margin) {
		return token, nil
	}
	delete(p.entries, p.key)

	token, err := p.inner.GetAccessToken(ctx)
	if err != nil {
		return nil, err
	}

	// Tokens without an expiry are never cached.
	if !token.ExpiresAt.IsZero() {
		p.entries[p.key] = token
	}
	return token, nil
}

// Invalidate drops the cached token so the next call re-authenticates.
func (p *CachingTokenProvider) Invalidate() {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.entries, p.key)
}
