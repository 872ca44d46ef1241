package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/playperu/geohunt/internal/geohunt"
)

// Participation loads the hunt a user has joined. The returned session
// is validated before it is handed back.
func (c *Client) Participation(ctx context.Context, huntID, userID string) (geohunt.HuntSession, error) {
	path := "/api/v1/participation/" + url.PathEscape(huntID) + "?" + url.Values{"userId": {userID}}.Encode()
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return geohunt.HuntSession{}, err
	}

	resp, err := c.do("fetch participation", req)
	if err != nil {
		return geohunt.HuntSession{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return geohunt.HuntSession{}, fmt.Errorf("%w: participation status %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload participationResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return geohunt.HuntSession{}, fmt.Errorf("decoding participation: %w", err)
	}

	session := payload.session()
	if err := session.Validate(); err != nil {
		return geohunt.HuntSession{}, err
	}
	return session, nil
}
