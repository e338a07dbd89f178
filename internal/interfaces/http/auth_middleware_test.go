package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/gstbill/billing-api/internal/interfaces/http"
	pkgjwt "github.com/gstbill/billing-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Test helpers
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "gstbill-test"
	testExpMin    = 60
)

// buildAuthApp builds a minimal Fiber app with one protected route that
// echoes the account id the middleware stored in locals.
func buildAuthApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":     true,
				"userId": apphttp.GetUserID(c),
			})
		},
	)
	return app
}

func validToken(t *testing.T) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func doProtected(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// assertUnauthorizedBody checks the fixed 401 envelope, byte for byte on the
// fields the public contract fixes.
func assertUnauthorizedBody(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unauthorized. Please login.", body["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// AuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

// A valid Bearer token passes and the handler sees the account id.
func TestAuthMiddleware_ValidToken(t *testing.T) {
	app := buildAuthApp()
	resp := doProtected(t, app, validToken(t))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, testUserID, body["userId"])
}

// No Authorization header at all.
func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := buildAuthApp()
	resp := doProtected(t, app, "")
	defer resp.Body.Close()

	assertUnauthorizedBody(t, resp)
}

// Header present but not in "Bearer <token>" form.
func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	app := buildAuthApp()

	for _, header := range []string{
		"Basic abc123",
		"Bearer",
		"Bearer ",
		"just-a-token",
	} {
		resp := doProtected(t, app, header)
		assertUnauthorizedBody(t, resp)
		resp.Body.Close()
	}
}

// A token signed with a different secret must be rejected.
func TestAuthMiddleware_WrongSecret(t *testing.T) {
	tok, err := pkgjwt.Generate("some-other-secret", testUserID, testIssuer, testExpMin)
	require.NoError(t, err)

	app := buildAuthApp()
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assertUnauthorizedBody(t, resp)
}

// An expired token must be rejected.
func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	claims := pkgjwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    testIssuer,
			IssuedAt:  jwtlib.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		UserID: testUserID,
	}
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	app := buildAuthApp()
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assertUnauthorizedBody(t, resp)
}

// A token without a subject account id must be rejected even if the
// signature is valid.
func TestAuthMiddleware_EmptyUserID(t *testing.T) {
	claims := pkgjwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			Issuer:    testIssuer,
			IssuedAt:  jwtlib.NewNumericDate(time.Now()),
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	app := buildAuthApp()
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assertUnauthorizedBody(t, resp)
}

// Tokens signed with an asymmetric algorithm header must not pass the
// HMAC-only check.
func TestAuthMiddleware_AlgorithmConfusion(t *testing.T) {
	// "none" algorithm token: header says no signature at all.
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, pkgjwt.Claims{
		RegisteredClaims: jwtlib.RegisteredClaims{
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: testUserID,
	}).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	app := buildAuthApp()
	resp := doProtected(t, app, "Bearer "+tok)
	defer resp.Body.Close()

	assertUnauthorizedBody(t, resp)
}
