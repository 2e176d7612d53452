package serverutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// sessionTokenTTL matches the in-memory session store expiry.
const sessionTokenTTL = time.Hour

// NewSessionToken signs a token carrying the session id. Clients send it back
// as a bearer token on every call after session creation.
func NewSessionToken(secret, sessionID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"session_id": sessionID,
		"exp":        time.Now().Add(sessionTokenTTL).Unix(),
	})
	return token.SignedString([]byte(secret))
}

// SessionMiddleware verifies the bearer token and exposes the session id to
// handlers via ctx.Locals("session_id").
func SessionMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing session token"))
		}
		tokenStr := authHeader[7:]

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid session token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid claims"))
		}
		sessionID, ok := claims["session_id"].(string)
		if !ok || sessionID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid session token"))
		}

		ctx.Locals("session_id", sessionID)
		return ctx.Next()
	}
}
