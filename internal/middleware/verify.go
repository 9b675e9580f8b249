package middleware

import (
	"crypto/ed25519"
	"encoding/hex"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/kyudon/police-intake/internal/dto"
)

// VerifyInteraction authenticates inbound interaction webhooks: the
// platform signs timestamp+body with its ed25519 key, and anything
// that fails verification is rejected before parsing.
func VerifyInteraction(publicKeyHex string) (fiber.Handler, error) {
	keyBytes, err := hex.DecodeString(publicKeyHex)
	if err != nil {
		return nil, fmt.Errorf("invalid interaction public key: %w", err)
	}
	if len(keyBytes) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("invalid interaction public key: want %d bytes, got %d",
			ed25519.PublicKeySize, len(keyBytes))
	}
	publicKey := ed25519.PublicKey(keyBytes)

	return func(c *fiber.Ctx) error {
		sig, err := hex.DecodeString(c.Get("X-Signature-Ed25519"))
		if err != nil || len(sig) != ed25519.SignatureSize {
			return unauthorized(c)
		}
		timestamp := c.Get("X-Signature-Timestamp")
		if timestamp == "" {
			return unauthorized(c)
		}

		signed := append([]byte(timestamp), c.Body()...)
		if !ed25519.Verify(publicKey, signed, sig) {
			return unauthorized(c)
		}
		return c.Next()
	}, nil
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error: true, Message: "invalid request signature",
	})
}
