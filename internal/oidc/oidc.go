package oidc

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/makoye224/cwru-courses-backend/pkg/middleware"
)

// Verifier checks ID tokens against the issuer's published keys.
type Verifier struct {
	verifier *oidc.IDTokenVerifier
}

// NewVerifier discovers the provider at issuer and builds a verifier for clientID.
func NewVerifier(ctx context.Context, issuer, clientID string) (*Verifier, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover OIDC provider: %w", err)
	}
	return &Verifier{verifier: provider.Verifier(&oidc.Config{ClientID: clientID})}, nil
}

func (v *Verifier) Verify(ctx context.Context, raw string) (middleware.Token, error) {
	idToken, err := v.verifier.Verify(ctx, raw)
	if err != nil {
		return nil, err
	}
	return idToken, nil
}

// Select returns the verifier the API should use: a real OIDC verifier when an
// issuer is configured, the insecure one when explicitly allowed, else nil
// (write routes stay open).
func Select(ctx context.Context, issuer, clientID string, allowInsecure bool) (middleware.Verifier, error) {
	if issuer != "" && clientID != "" {
		v, err := NewVerifier(ctx, issuer, clientID)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	if allowInsecure {
		return NewInsecureVerifier(), nil
	}
	return nil, nil
}
