package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func newGuardedApp(secret string) *fiber.App {
	app := fiber.New()
	app.Get("/whoami", SessionMiddleware(secret), func(ctx *fiber.Ctx) error {
		return ctx.SendString(ctx.Locals("session_id").(string))
	})
	return app
}

func TestSessionTokenRoundTrip(t *testing.T) {
	app := newGuardedApp("test-secret")

	token, err := NewSessionToken("test-secret", "session-123")
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, res.StatusCode)

	body := make([]byte, 64)
	n, _ := res.Body.Read(body)
	assert.Equal(t, "session-123", string(body[:n]))
}

func TestSessionMiddlewareRejectsMissingToken(t *testing.T) {
	app := newGuardedApp("test-secret")

	res, err := app.Test(httptest.NewRequest("GET", "/whoami", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestSessionMiddlewareRejectsWrongSigningMethod(t *testing.T) {
	app := newGuardedApp("test-secret")

	// Correct secret but not HS256; only the method tokens are minted with
	// is accepted.
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
		"session_id": "session-123",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-secret"))
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}

func TestSessionMiddlewareRejectsWrongSecret(t *testing.T) {
	app := newGuardedApp("test-secret")

	token, err := NewSessionToken("other-secret", "session-123")
	assert.NoError(t, err)

	req := httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, res.StatusCode)
}
