package authenticator

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
)

// DiscoverTokenURL resolves the token endpoint advertised in the issuer's
// OpenID Connect discovery document.
func DiscoverTokenURL(ctx context.Context, issuer string) (string, error) {
	if issuer == "" {
		return "", errors.New("issuer is required")
	}

	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return "", fmt.Errorf("failed to discover OpenID configuration: %w", err)
	}

	tokenURL := provider.Endpoint().TokenURL
	if tokenURL == "" {
		return "", fmt.Errorf("issuer %s does not advertise a token endpoint", issuer)
	}

	return tokenURL, nil
}
