package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-session-secret"

type fakeProvider struct {
	mu    sync.Mutex
	calls []Params
	err   error
}

func (f *fakeProvider) CreateSession(_ context.Context, p Params) (Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return Session{}, f.err
	}
	f.calls = append(f.calls, p)
	id := "cs_test_" + p.UserID + "_" + p.PriceID
	return Session{ID: id, URL: "https://checkout.stripe.com/c/pay/" + id}, nil
}

func newService(t *testing.T, provider Provider) (*Service, *TokenService) {
	t.Helper()
	tokens := NewTokenService(secret, "algoeconomics")
	svc := NewService(tokens, provider, Config{
		SuccessURL: "https://algoeconomics.org/success",
		CancelURL:  "https://algoeconomics.org/pricing",
		CacheTTL:   time.Minute,
	}, nil)
	t.Cleanup(svc.Close)
	return svc, tokens
}

func TestCreate(t *testing.T) {
	provider := &fakeProvider{}
	svc, tokens := newService(t, provider)
	token, err := tokens.Issue("user-42", "ada@example.com", time.Hour)
	require.NoError(t, err)

	res, err := svc.Create(context.Background(), token, "price_pro_monthly")
	require.NoError(t, err)
	assert.False(t, res.Cached)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_user-42_price_pro_monthly", res.Session.URL)

	require.Len(t, provider.calls, 1)
	assert.Equal(t, Params{
		PriceID:    "price_pro_monthly",
		UserID:     "user-42",
		SuccessURL: "https://algoeconomics.org/success",
		CancelURL:  "https://algoeconomics.org/pricing",
	}, provider.calls[0])
}

func TestCreate_ReusesSessionForSameUserAndPrice(t *testing.T) {
	provider := &fakeProvider{}
	svc, tokens := newService(t, provider)
	token, err := tokens.Issue("user-42", "", time.Hour)
	require.NoError(t, err)

	first, err := svc.Create(context.Background(), token, "price_a")
	require.NoError(t, err)
	second, err := svc.Create(context.Background(), token, "price_a")
	require.NoError(t, err)
	third, err := svc.Create(context.Background(), token, "price_b")
	require.NoError(t, err)

	assert.True(t, second.Cached)
	assert.Equal(t, first.Session, second.Session)
	assert.False(t, third.Cached)
	assert.Len(t, provider.calls, 2)
}

func TestCreate_Unauthorized(t *testing.T) {
	provider := &fakeProvider{}
	svc, _ := newService(t, provider)

	_, err := svc.Create(context.Background(), "", "price_a")
	assert.ErrorIs(t, err, ErrUnauthorized)

	other := NewTokenService("another-secret", "algoeconomics")
	forged, err := other.Issue("user-42", "", time.Hour)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), forged, "price_a")
	assert.ErrorIs(t, err, ErrUnauthorized)

	assert.Empty(t, provider.calls)
}

func TestCreate_MissingPrice(t *testing.T) {
	provider := &fakeProvider{}
	svc, tokens := newService(t, provider)
	token, err := tokens.Issue("user-42", "", time.Hour)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), token, "  ")
	assert.ErrorIs(t, err, ErrMissingPrice)
	assert.Empty(t, provider.calls)
}

func TestCreate_ProviderErrorIsNotCached(t *testing.T) {
	provider := &fakeProvider{err: errors.New("card_declined")}
	svc, tokens := newService(t, provider)
	token, err := tokens.Issue("user-42", "", time.Hour)
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), token, "price_a")
	assert.ErrorContains(t, err, "card_declined")
	assert.NotErrorIs(t, err, ErrUnauthorized)

	provider.err = nil
	res, err := svc.Create(context.Background(), token, "price_a")
	require.NoError(t, err)
	assert.False(t, res.Cached)
}

func TestVerify(t *testing.T) {
	tokens := NewTokenService(secret, "algoeconomics")

	token, err := tokens.Issue("user-7", "grace@example.com", time.Hour)
	require.NoError(t, err)
	user, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, User{ID: "user-7", Email: "grace@example.com"}, user)

	expired, err := tokens.Issue("user-7", "", -time.Minute)
	require.NoError(t, err)
	_, err = tokens.Verify(expired)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.ErrorContains(t, err, "expired")

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "user-7", Issuer: "algoeconomics"},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.Verify(none)
	assert.ErrorIs(t, err, ErrUnauthorized)

	wrongIssuer, err := NewTokenService(secret, "elsewhere").Issue("user-7", "", time.Hour)
	require.NoError(t, err)
	_, err = tokens.Verify(wrongIssuer)
	assert.ErrorIs(t, err, ErrUnauthorized)

	noSubject, err := tokens.Issue("", "", time.Hour)
	require.NoError(t, err)
	_, err = tokens.Verify(noSubject)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", BearerToken("Bearer abc"))
	assert.Equal(t, "abc", BearerToken("bearer  abc "))
	assert.Equal(t, "", BearerToken("Basic abc"))
	assert.Equal(t, "", BearerToken(""))
}

func TestSessionParams(t *testing.T) {
	sp := sessionParams(Params{
		PriceID:    "price_a",
		UserID:     "user-1",
		SuccessURL: "https://algoeconomics.org/success",
		CancelURL:  "https://algoeconomics.org/pricing",
	})

	assert.Equal(t, "subscription", *sp.Mode)
	require.Len(t, sp.PaymentMethodTypes, 1)
	assert.Equal(t, "card", *sp.PaymentMethodTypes[0])
	require.Len(t, sp.LineItems, 1)
	assert.Equal(t, "price_a", *sp.LineItems[0].Price)
	assert.Equal(t, int64(1), *sp.LineItems[0].Quantity)
	assert.Equal(t, "user-1", *sp.ClientReferenceID)
	assert.Equal(t, "https://algoeconomics.org/pricing", *sp.CancelURL)
	assert.Equal(t, map[string]string{"priceId": "price_a"}, sp.Metadata)
}
