// Package auth verifies bearer tokens and exposes fiber middlewares for
// protected and optionally-authenticated routes.
package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// LocalsUserID is the fiber locals key the middlewares populate.
const LocalsUserID = "user_id"

var ErrInvalidToken = errors.New("invalid token")

// Verify parses an HMAC-signed token and returns the user id claim.
func Verify(tokenStr, secret string) (string, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	userID, ok := claims[LocalsUserID].(string)
	if !ok || userID == "" {
		return "", ErrInvalidToken
	}
	return userID, nil
}

func bearerToken(ctx *fiber.Ctx) string {
	authHeader := ctx.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return authHeader[len("Bearer "):]
}

// Required rejects requests without a valid token.
func Required(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if secret == "" {
			return ctx.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "المصادقة معطلة حالياً"})
		}
		tokenStr := bearerToken(ctx)
		if tokenStr == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "يجب تسجيل الدخول"})
		}
		userID, err := Verify(tokenStr, secret)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "جلسة غير صالحة"})
		}
		ctx.Locals(LocalsUserID, userID)
		return ctx.Next()
	}
}

// Optional resolves the user when a token is present but lets anonymous
// requests through; uploads work without an account.
func Optional(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if tokenStr := bearerToken(ctx); tokenStr != "" {
			if userID, err := Verify(tokenStr, secret); err == nil {
				ctx.Locals(LocalsUserID, userID)
			} else {
				return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "جلسة غير صالحة"})
			}
		}
		return ctx.Next()
	}
}
