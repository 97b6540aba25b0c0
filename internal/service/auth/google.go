package service

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/candrasdkd/easywork/internal/model"
)

const googleDiscoveryURL = "https://accounts.google.com/.well-known/openid-configuration"

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

// googleVerifier validates Google ID tokens against the account's JWKS,
// discovered once and cached.
type googleVerifier struct {
	httpClient *http.Client
	clientID   string

	jwks          *jwksCache
	discoveryOnce sync.Once
	discoveryErr  error
}

func NewGoogleVerifier(httpClient *http.Client, clientID string) (*googleVerifier, error) {
	if strings.TrimSpace(clientID) == "" {
		return nil, errors.New("google client id is required")
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &googleVerifier{
		httpClient: httpClient,
		clientID:   clientID,
		jwks:       newJWKSCache(httpClient),
	}, nil
}

func (v *googleVerifier) VerifyIDToken(ctx context.Context, idToken string) (*model.GoogleIdentity, error) {
	const op = "auth.googleVerifier.VerifyIDToken"

	if strings.TrimSpace(idToken) == "" {
		return nil, fmt.Errorf("%s: id_token is empty", op)
	}
	if err := v.ensureDiscovery(ctx); err != nil {
		return nil, fmt.Errorf("%s: discovery: %w", op, err)
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{"RS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithAudience(v.clientID),
	)
	claims := jwt.MapClaims{}

	tok, err := parser.ParseWithClaims(idToken, claims, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if strings.TrimSpace(kid) == "" {
			return nil, errors.New("missing kid")
		}
		return v.jwks.getKey(ctx, kid)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: invalid id_token: %w", op, err)
	}
	if tok == nil || !tok.Valid {
		return nil, fmt.Errorf("%s: invalid id_token", op)
	}

	iss, _ := claims["iss"].(string)
	if !containsIssuer(googleIssuers, iss) {
		return nil, fmt.Errorf("%s: issuer mismatch: %q", op, iss)
	}

	sub, _ := claims["sub"].(string)
	if strings.TrimSpace(sub) == "" {
		return nil, fmt.Errorf("%s: missing sub", op)
	}

	out := &model.GoogleIdentity{Sub: sub}
	out.Email, _ = claims["email"].(string)
	out.Name, _ = claims["name"].(string)
	out.Picture, _ = claims["picture"].(string)
	out.EmailVerified = parseBoolClaim(claims["email_verified"])

	return out, nil
}

func (v *googleVerifier) ensureDiscovery(ctx context.Context) error {
	v.discoveryOnce.Do(func() {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, googleDiscoveryURL, nil)
		res, err := v.httpClient.Do(req)
		if err != nil {
			v.discoveryErr = err
			return
		}
		defer res.Body.Close()

		if res.StatusCode < 200 || res.StatusCode >= 300 {
			v.discoveryErr = fmt.Errorf("discovery request failed: %s", res.Status)
			return
		}

		var d struct {
			JWKSURI string `json:"jwks_uri"`
		}
		if err := json.NewDecoder(res.Body).Decode(&d); err != nil {
			v.discoveryErr = err
			return
		}
		if strings.TrimSpace(d.JWKSURI) == "" {
			v.discoveryErr = errors.New("discovery missing jwks_uri")
			return
		}
		v.jwks.setURL(d.JWKSURI)
	})
	return v.discoveryErr
}

func containsIssuer(list []string, iss string) bool {
	for _, v := range list {
		if v == iss {
			return true
		}
	}
	return false
}

func parseBoolClaim(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return strings.EqualFold(x, "true")
	default:
		return false
	}
}

type jwksCache struct {
	httpClient *http.Client

	mu      sync.RWMutex
	jwksURL string
	keys    map[string]*rsa.PublicKey

	fetchedAt time.Time
	ttl       time.Duration
}

func newJWKSCache(httpClient *http.Client) *jwksCache {
	return &jwksCache{
		httpClient: httpClient,
		keys:       map[string]*rsa.PublicKey{},
		ttl:        6 * time.Hour,
	}
}

func (j *jwksCache) setURL(url string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.jwksURL = url
}

func (j *jwksCache) getKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	j.mu.RLock()
	key := j.keys[kid]
	stale := time.Since(j.fetchedAt) > j.ttl
	url := j.jwksURL
	j.mu.RUnlock()

	if key != nil && !stale {
		return key, nil
	}
	if strings.TrimSpace(url) == "" {
		return nil, errors.New("jwks url not set")
	}

	if err := j.refresh(ctx, url); err != nil {
		// A stale key beats no key while the endpoint is unreachable.
		j.mu.RLock()
		key = j.keys[kid]
		j.mu.RUnlock()
		if key != nil {
			return key, nil
		}
		return nil, err
	}

	j.mu.RLock()
	defer j.mu.RUnlock()
	if key := j.keys[kid]; key != nil {
		return key, nil
	}
	return nil, fmt.Errorf("kid not found in jwks: %s", kid)
}

func (j *jwksCache) refresh(ctx context.Context, url string) error {
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	res, err := j.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("jwks request failed: %s", res.Status)
	}

	var set struct {
		Keys []struct {
			Kty string `json:"kty"`
			Kid string `json:"kid"`
			N   string `json:"n"`
			E   string `json:"e"`
		} `json:"keys"`
	}
	if err := json.NewDecoder(res.Body).Decode(&set); err != nil {
		return err
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := rsaKeyFromJWK(k.N, k.E)
		if err != nil {
			continue
		}
		keys[k.Kid] = pub
	}
	if len(keys) == 0 {
		return errors.New("jwks contained no usable RSA keys")
	}

	j.mu.Lock()
	j.keys = keys
	j.fetchedAt = time.Now()
	j.mu.Unlock()
	return nil
}

func rsaKeyFromJWK(n, e string) (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, err
	}
	eb, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, err
	}

	pub := &rsa.PublicKey{N: new(big.Int).SetBytes(nb)}
	for _, b := range eb {
		pub.E = pub.E<<8 | int(b)
	}
	if pub.E == 0 {
		return nil, errors.New("invalid exponent")
	}
	return pub, nil
}
