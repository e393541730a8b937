package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/constXife/zann-sub000/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) accessToken() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) SystemInfo(ctx context.Context) (models.SystemInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/v1/system/info")
	if err != nil {
		return models.SystemInfo{}, Errf(KindSystemInfoFailed, "system info request: %v", err)
	}
	if !resp.IsSuccess() {
		return models.SystemInfo{}, Errf(KindSystemInfoFailed, "system info: %s", responseDetail(resp))
	}

	var info models.SystemInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.SystemInfo{}, Errf(KindSystemInfoFailed, "decode system info: %v", err)
	}

	if info.Identity != nil {
		if err = verifySystemIdentity(info); err != nil {
			return models.SystemInfo{}, err
		}
	}

	return info, nil
}

func (h *httpServerAdapter) ListVaults(ctx context.Context) ([]VaultSummary, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := req.Get("/v1/vaults")
	if err != nil {
		return nil, fmt.Errorf("list vaults request: %w", err)
	}
	if err = mapHTTPError(resp, KindVaultListFailed); err != nil {
		return nil, err
	}

	var out struct {
		Vaults []VaultSummary `json:"vaults"`
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, Errf(KindVaultListFailed, "decode vault list: %v", err)
	}
	return out.Vaults, nil
}

func (h *httpServerAdapter) PushChanges(ctx context.Context, vaultID uuid.UUID, changes []PushChange) (PushResult, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return PushResult{}, err
	}

	body := struct {
		VaultID string       `json:"vault_id"`
		Changes []PushChange `json:"changes"`
	}{VaultID: vaultID.String(), Changes: changes}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/v1/sync/push")
	if err != nil {
		return PushResult{}, fmt.Errorf("sync push request: %w", err)
	}
	if err = mapHTTPError(resp, KindSyncPushFailed); err != nil {
		return PushResult{}, err
	}

	var result PushResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return PushResult{}, Errf(KindSyncPushFailed, "decode push response: %v", err)
	}
	return result, nil
}

func (h *httpServerAdapter) PullChanges(ctx context.Context, vaultID uuid.UUID, cursor string, limit int) (PullPage, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return PullPage{}, err
	}

	body := struct {
		VaultID string `json:"vault_id"`
		Cursor  string `json:"cursor,omitempty"`
		Limit   int    `json:"limit"`
	}{VaultID: vaultID.String(), Cursor: cursor, Limit: limit}

	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post("/v1/sync/pull")
	if err != nil {
		return PullPage{}, fmt.Errorf("sync pull request: %w", err)
	}
	if err = mapHTTPError(resp, KindVaultGetFailed); err != nil {
		return PullPage{}, err
	}

	var page PullPage
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return PullPage{}, Errf(KindVaultGetFailed, "decode pull response: %v", err)
	}
	return page, nil
}

func (h *httpServerAdapter) HistoryList(ctx context.Context, vaultID, itemID uuid.UUID, limit int) ([]models.HistoryEntry, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	if limit < 1 {
		limit = 1
	}
	if limit > 5 {
		limit = 5
	}

	url := fmt.Sprintf("/v1/vaults/%s/items/%s/versions?limit=%d", vaultID, itemID, limit)
	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("history list request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return nil, nil
	}
	if err = mapHTTPError(resp, KindHistoryListFailed); err != nil {
		return nil, err
	}

	var out struct {
		Versions []struct {
			Version        int64  `json:"version"`
			Checksum       string `json:"checksum"`
			ChangeType     string `json:"change_type"`
			ChangedByName  string `json:"changed_by_name"`
			ChangedByEmail string `json:"changed_by_email"`
			CreatedAt      string `json:"created_at"`
		} `json:"versions"`
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, Errf(KindHistoryListFailed, "decode history list: %v", err)
	}

	entries := make([]models.HistoryEntry, 0, len(out.Versions))
	for _, v := range out.Versions {
		entries = append(entries, models.HistoryEntry{
			Version:        models.RemoteVersion(v.Version),
			Checksum:       v.Checksum,
			ChangeType:     v.ChangeType,
			ChangedByName:  v.ChangedByName,
			ChangedByEmail: v.ChangedByEmail,
			CreatedAt:      v.CreatedAt,
		})
	}
	return entries, nil
}

func (h *httpServerAdapter) HistoryGet(ctx context.Context, vaultID, itemID uuid.UUID, version int64) (models.Payload, error) {
	req, err := h.authedRequest(ctx)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("/v1/vaults/%s/items/%s/versions/%d", vaultID, itemID, version)
	resp, err := req.Get(url)
	if err != nil {
		return nil, fmt.Errorf("history get request: %w", err)
	}
	if err = mapHTTPError(resp, KindHistoryGetFailed); err != nil {
		return nil, err
	}

	var out struct {
		Payload models.Payload `json:"payload"`
	}
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, Errf(KindHistoryGetFailed, "decode history payload: %v", err)
	}
	return out.Payload, nil
}

// authedRequest builds a request carrying the bearer token. The token's exp
// claim is inspected first so an already-expired session fails fast without
// a doomed network round trip.
func (h *httpServerAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	token := h.accessToken()
	if token == "" {
		return nil, Errf(KindSessionExpired, "no access token")
	}
	if expired, err := tokenExpired(token); err == nil && expired {
		return nil, Errf(KindSessionExpired, "access token expired")
	}

	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token), nil
}

// tokenExpired reports whether the JWT's exp claim is in the past. The
// signature is not verified here; the server remains the authority and a 401
// still maps to session_expired.
func tokenExpired(tokenString string) (bool, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false, fmt.Errorf("invalid token claims")
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false, err
	}
	return exp.Before(time.Now()), nil
}

// mapHTTPError converts a non-2xx response into a *RemoteError, using kind
// for generic failures and session_expired for auth rejections.
func mapHTTPError(resp *resty.Response, kind ErrorKind) error {
	if resp.IsSuccess() {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized {
		return Errf(KindSessionExpired, "%s", responseDetail(resp))
	}

	return Errf(kind, "%s", responseDetail(resp))
}

func responseDetail(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Sprintf("http %d: %s", resp.StatusCode(), body)
}
