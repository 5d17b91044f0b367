package auth

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gabkut-schola/app/models"
)

func newProtectedApp(roles ...string) *fiber.App {
	app := fiber.New()
	group := app.Group("/api/reports", AuthMiddleware, RoleMiddleware(roles...))
	group.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func testUser(id, email, firstName, lastName string, roles ...string) *models.User {
	u := &models.User{
		ID:        id,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}
	for _, name := range roles {
		u.Roles = append(u.Roles, &models.Role{Name: name})
	}
	return u
}

func TestAuthMiddleware_RejectsMissingToken(t *testing.T) {
	app := newProtectedApp("comptable")

	req := httptest.NewRequest("GET", "/api/reports/", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestAuthMiddleware_RejectsBadToken(t *testing.T) {
	app := newProtectedApp("comptable")

	req := httptest.NewRequest("GET", "/api/reports/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 401, resp.StatusCode)
}

func TestRoleMiddleware_AllowsComptable(t *testing.T) {
	app := newProtectedApp("comptable", "admin")

	token, err := GenerateJWT(testUser("u-1", "comptable@gabkut.cd", "Marie", "Kabila", "comptable"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/reports/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestRoleMiddleware_ForbidsOtherRoles(t *testing.T) {
	app := newProtectedApp("comptable")

	token, err := GenerateJWT(testUser("u-2", "sec@gabkut.cd", "Jean", "Mukendi", "secretaire"))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/api/reports/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT(testUser("u-3", "admin@gabkut.cd", "Alice", "Tshala", "admin", "comptable"))
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "u-3", claims.UserID)
	assert.Equal(t, []string{"admin", "comptable"}, claims.Roles)

	user := claims.User()
	require.Len(t, user.Roles, 2)
	assert.Equal(t, "admin", user.Roles[0].Name)
}

func TestClaimsHasRole(t *testing.T) {
	claims := &JWTClaims{Roles: []string{"comptable"}}

	assert.True(t, claims.HasRole("comptable"))
	assert.True(t, claims.HasRole("admin", "comptable"))
	assert.False(t, claims.HasRole("admin"))
	assert.False(t, claims.HasRole())
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-passw0rd")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret-passw0rd", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
