package middleware_test

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyudon/police-intake/internal/middleware"
)

func signedRequest(t *testing.T, key ed25519.PrivateKey, timestamp, body string) *http.Request {
	t.Helper()
	sig := ed25519.Sign(key, []byte(timestamp+body))
	req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Signature-Ed25519", hex.EncodeToString(sig))
	req.Header.Set("X-Signature-Timestamp", timestamp)
	return req
}

func TestVerifyInteraction(t *testing.T) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	verify, err := middleware.VerifyInteraction(hex.EncodeToString(pub))
	require.NoError(t, err)

	app := fiber.New()
	app.Post("/interactions", verify, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	t.Run("valid signature passes", func(t *testing.T) {
		resp, err := app.Test(signedRequest(t, priv, "1724900000", `{"type":1}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("tampered body rejected", func(t *testing.T) {
		req := signedRequest(t, priv, "1724900000", `{"type":1}`)
		req.Body = http.NoBody
		req.ContentLength = 0
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		_, otherPriv, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)
		resp, err := app.Test(signedRequest(t, otherPriv, "1724900000", `{"type":1}`))
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("missing headers rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/interactions", strings.NewReader(`{"type":1}`))
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestVerifyInteractionRejectsBadKey(t *testing.T) {
	_, err := middleware.VerifyInteraction("not-hex")
	assert.Error(t, err)

	_, err = middleware.VerifyInteraction("abcd")
	assert.Error(t, err)
}
