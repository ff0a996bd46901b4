// internal/common/auth/session.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"club-portal/internal/common/errors"

	"github.com/redis/go-redis/v9"
)

// SessionClient verifies admin sessions against the external auth service.
// The portal never issues or refreshes credentials; a request is either backed
// by a live session or it is rejected.
type SessionClient struct {
	baseURL    string
	anonKey    string
	httpClient *http.Client
	cache      *redis.Client
	cacheTTL   time.Duration
}

// Session is the subset of the auth service's user payload the portal cares
// about.
type Session struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// NewSessionClient creates a new instance of SessionClient. cache may be nil,
// in which case every check hits the auth service.
func NewSessionClient(baseURL, anonKey string, timeout time.Duration, cache *redis.Client, cacheTTL time.Duration) *SessionClient {
	return &SessionClient{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		anonKey:    anonKey,
		httpClient: &http.Client{Timeout: timeout},
		cache:      cache,
		cacheTTL:   cacheTTL,
	}
}

// Verify resolves a bearer token to a Session. Recently verified tokens are
// served from the Redis cache so repeated admin calls don't hammer the auth
// service.
func (s *SessionClient) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, errors.NewSessionInvalidError("empty bearer token")
	}

	cacheKey := "session:" + token
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var sess Session
			if err := json.Unmarshal([]byte(val), &sess); err == nil {
				return &sess, nil
			}
		}
	}

	userURL := fmt.Sprintf("%s/auth/v1/user", s.baseURL)
	req, err := http.NewRequestWithContext(ctx, "GET", userURL, nil)
	if err != nil {
		return nil, errors.NewSessionCheckFailedError(err)
	}
	req.Header.Set("apikey", s.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewSessionCheckFailedError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.NewSessionInvalidError(string(body))
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.NewSessionCheckFailedError(
			fmt.Errorf("auth service returned status %d: %s", resp.StatusCode, string(body)))
	}

	var sess Session
	if err := json.NewDecoder(resp.Body).Decode(&sess); err != nil {
		return nil, errors.NewSessionCheckFailedError(fmt.Errorf("decode user response: %w", err))
	}
	if sess.UserID == "" {
		return nil, errors.NewSessionInvalidError("user payload missing id")
	}

	if s.cache != nil {
		if data, err := json.Marshal(&sess); err == nil {
			// Cache write failures are not fatal
			_ = s.cache.Set(ctx, cacheKey, data, s.cacheTTL).Err()
		}
	}

	return &sess, nil
}
