package drop

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"cachet/internal/domain"
)

// Client is an HTTP implementation of domain.DropClient.
type Client struct {
	Base string
	HTTP *http.Client
}

// NewClient returns a drop client for the given base URL. A nil httpClient
// falls back to http.DefaultClient.
func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient}
}

// Post enqueues a parcel for its recipient.
func (c *Client) Post(ctx context.Context, p domain.Parcel) error {
	return c.post(ctx, "/parcel/"+url.PathEscape(p.To.String()), p, nil)
}

// Fetch returns up to limit queued parcels for to; limit <= 0 means all.
func (c *Client) Fetch(ctx context.Context, to domain.Fingerprint, limit int) ([]domain.Parcel, error) {
	u := "/parcel/" + url.PathEscape(to.String())
	if limit > 0 {
		u += "?limit=" + strconv.Itoa(limit)
	}
	var parcels []domain.Parcel
	if err := c.getJSON(ctx, u, &parcels); err != nil {
		return nil, err
	}
	return parcels, nil
}

// Ack drops the first count queued parcels for to.
func (c *Client) Ack(ctx context.Context, to domain.Fingerprint, count int) error {
	return c.post(ctx, "/parcel/"+url.PathEscape(to.String())+"/ack", struct {
		Count int `json:"count"`
	}{Count: count}, nil)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(in); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("drop post %s: %s", path, resp.Status)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.Base+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("drop get %s: %s", path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ domain.DropClient = (*Client)(nil)
