// Package blobstore is the client for the external object storage that keeps
// check-in evidence images. Objects are written by key and served back from a
// public base URL; deletion is best-effort for callers.
package blobstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	// Endpoint is the storage API base, e.g. https://storage.internal/v1/bucket
	Endpoint string
	// PublicURL is the base under which stored objects are publicly reachable
	PublicURL string
	Token     string
}

type Client struct {
	cfg  Config
	http httpDoer
}

func New(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// SetHTTPClient overrides the transport, used by tests.
func (c *Client) SetHTTPClient(doer httpDoer) {
	c.http = doer
}

// ObjectKey builds a per-user evidence key: checkins/<uid>/<ts>-<rand>.<ext>.
func ObjectKey(userID uuid.UUID, mimeType string) string {
	ext := "jpg"
	switch mimeType {
	case "image/png":
		ext = "png"
	case "image/webp":
		ext = "webp"
	}
	return fmt.Sprintf("checkins/%s/%d-%s.%s",
		userID, time.Now().UnixMilli(), uuid.NewString()[:8], ext)
}

// Put stores data under key and returns the public URL it is served from.
func (c *Client) Put(ctx context.Context, key string, data []byte, mimeType string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.objectURL(key), bytes.NewReader(data))
	if err != nil {
		return "", errors.New("building storage request error: " + err.Error())
	}
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Join(errorvalues.ErrStorageFailure, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: storage returned %d", errorvalues.ErrStorageFailure, resp.StatusCode)
	}
	return strings.TrimRight(c.cfg.PublicURL, "/") + "/" + key, nil
}

// Delete removes the object under key. Callers treat failures as advisory.
func (c *Client) Delete(ctx context.Context, key string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(key), nil)
	if err != nil {
		return errors.New("building storage request error: " + err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(errorvalues.ErrStorageFailure, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("%w: storage returned %d", errorvalues.ErrStorageFailure, resp.StatusCode)
	}
	return nil
}

func (c *Client) objectURL(key string) string {
	return strings.TrimRight(c.cfg.Endpoint, "/") + "/" + key
}
