package blobstore_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/habitproof/internal/clients/blobstore"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/stretchr/testify/assert"
)

func TestObjectKey(t *testing.T) {
	uid := uuid.New()
	testCases := []struct {
		MimeType string
		Ext      string
	}{
		{MimeType: "image/jpeg", Ext: ".jpg"},
		{MimeType: "image/png", Ext: ".png"},
		{MimeType: "image/webp", Ext: ".webp"},
		{MimeType: "application/octet-stream", Ext: ".jpg"},
	}
	for _, tc := range testCases {
		key := blobstore.ObjectKey(uid, tc.MimeType)
		assert.True(t, strings.HasPrefix(key, "checkins/"+uid.String()+"/"), key)
		assert.True(t, strings.HasSuffix(key, tc.Ext), key)
	}
	// Keys carry a random component so retries never collide
	assert.NotEqual(t, blobstore.ObjectKey(uid, "image/jpeg"), blobstore.ObjectKey(uid, "image/jpeg"))
}

func TestPut(t *testing.T) {
	ctx := context.Background()
	payload := []byte{0xFF, 0xD8, 0xFF, 0x01, 0x02}

	t.Run("stored and served from the public base", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPut, r.Method)
			assert.Equal(t, "/checkins/u/1.jpg", r.URL.Path)
			assert.Equal(t, "image/jpeg", r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer test_token", r.Header.Get("Authorization"))
			body, _ := io.ReadAll(r.Body)
			assert.Equal(t, payload, body)
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()
		client := blobstore.New(blobstore.Config{
			Endpoint:  server.URL,
			PublicURL: "https://cdn.example.com/",
			Token:     "test_token",
		})
		url, err := client.Put(ctx, "checkins/u/1.jpg", payload, "image/jpeg")
		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/checkins/u/1.jpg", url)
	})

	t.Run("storage rejects the write", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()
		client := blobstore.New(blobstore.Config{Endpoint: server.URL, Token: "test_token"})
		_, err := client.Put(ctx, "checkins/u/1.jpg", payload, "image/jpeg")
		assert.ErrorIs(t, err, errorvalues.ErrStorageFailure)
	})

	t.Run("storage unreachable", func(t *testing.T) {
		client := blobstore.New(blobstore.Config{Endpoint: "http://127.0.0.1:1", Token: "test_token"})
		_, err := client.Put(ctx, "checkins/u/1.jpg", payload, "image/jpeg")
		assert.ErrorIs(t, err, errorvalues.ErrStorageFailure)
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodDelete, r.Method)
			assert.Equal(t, "/checkins/u/1.jpg", r.URL.Path)
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()
		client := blobstore.New(blobstore.Config{Endpoint: server.URL, Token: "test_token"})
		assert.NoError(t, client.Delete(ctx, "checkins/u/1.jpg"))
	})

	t.Run("already gone is fine", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()
		client := blobstore.New(blobstore.Config{Endpoint: server.URL, Token: "test_token"})
		assert.NoError(t, client.Delete(ctx, "checkins/u/1.jpg"))
	})

	t.Run("storage error surfaces", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()
		client := blobstore.New(blobstore.Config{Endpoint: server.URL, Token: "test_token"})
		err := client.Delete(ctx, "checkins/u/1.jpg")
		assert.ErrorIs(t, err, errorvalues.ErrStorageFailure)
	})
}
