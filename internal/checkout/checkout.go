// Package checkout creates hosted subscription checkout sessions for
// signed-in visitors.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"algoeconomics/internal/data"

	"go.uber.org/zap"
)

var ErrMissingPrice = errors.New("priceId is required")

// Params describe one subscription checkout.
type Params struct {
	PriceID    string
	UserID     string
	SuccessURL string
	CancelURL  string
}

type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Provider is the payment processor.
type Provider interface {
	CreateSession(ctx context.Context, p Params) (Session, error)
}

// Verifier turns a bearer token into a user.
type Verifier interface {
	Verify(token string) (User, error)
}

type Config struct {
	SuccessURL string
	CancelURL  string
	CacheTTL   time.Duration
}

// Service authenticates the caller and creates a checkout session. Identical
// (user, price) requests within CacheTTL get the same session back.
type Service struct {
	verifier Verifier
	provider Provider
	cfg      Config
	cache    *data.TTLCache[Session]
	logger   *zap.Logger
}

func NewService(verifier Verifier, provider Provider, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	var cache *data.TTLCache[Session]
	if cfg.CacheTTL > 0 {
		cache = data.NewTTLCache[Session](cfg.CacheTTL)
	}
	return &Service{verifier: verifier, provider: provider, cfg: cfg, cache: cache, logger: logger}
}

// Result is a created or reused session.
type Result struct {
	Session Session
	Cached  bool
}

// Create verifies token, then creates (or reuses) a session for priceID.
// Errors wrap ErrUnauthorized or ErrMissingPrice when the request is at fault.
func (s *Service) Create(ctx context.Context, token, priceID string) (Result, error) {
	user, err := s.verifier.Verify(token)
	if err != nil {
		return Result{}, err
	}
	priceID = strings.TrimSpace(priceID)
	if priceID == "" {
		return Result{}, ErrMissingPrice
	}

	key := data.GenerateCacheKey(user.ID, priceID)
	if sess, ok := s.cache.Get(key); ok {
		return Result{Session: sess, Cached: true}, nil
	}

	sess, err := s.provider.CreateSession(ctx, Params{
		PriceID:    priceID,
		UserID:     user.ID,
		SuccessURL: s.cfg.SuccessURL,
		CancelURL:  s.cfg.CancelURL,
	})
	if err != nil {
		return Result{}, fmt.Errorf("create checkout session: %w", err)
	}
	s.cache.Set(key, sess)
	s.logger.Info("checkout session created",
		zap.String("user_id", user.ID),
		zap.String("price_id", priceID),
		zap.String("session_id", sess.ID))
	return Result{Session: sess}, nil
}

// Close releases the session cache.
func (s *Service) Close() {
	s.cache.Close()
}
