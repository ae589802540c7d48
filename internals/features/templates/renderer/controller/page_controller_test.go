// file: internals/features/templates/renderer/controller/page_controller_test.go
package controller_test

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"portfolioku_backend/internals/configs"
	"portfolioku_backend/internals/databases"
	profileModel "portfolioku_backend/internals/features/portfolio/profile/model"
	skillModel "portfolioku_backend/internals/features/portfolio/skills/model"
	tenantModel "portfolioku_backend/internals/features/templates/user_profiles/model"
	helper "portfolioku_backend/internals/helpers"
	routes "portfolioku_backend/internals/route"
)

var dbSeq int64

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	configs.JWTSecret = "test-secret"
	helper.FlushCache()

	dsn := fmt.Sprintf("file:pagetest%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func getPage(t *testing.T, app *fiber.App, username string) (*http.Response, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/portfolio/"+username, nil)
	resp, err := app.Test(req, 15000)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func seedTenant(t *testing.T, db *gorm.DB, username, template string) *tenantModel.UserProfileModel {
	t.Helper()
	up := tenantModel.NewDefault(uuid.New(), username)
	up.SelectedTemplate = template
	require.NoError(t, db.Create(up).Error)
	return up
}

func TestPageUnknownUsernameRenders404(t *testing.T) {
	app, _ := newTestApp(t)

	resp, html := getPage(t, app, "ghost")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, html, "Portfolio not found")
}

func TestPageRendersSelectedTemplate(t *testing.T) {
	app, db := newTestApp(t)
	seedTenant(t, db, "jane", "designer")

	resp, html := getPage(t, app, "jane")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
	assert.Contains(t, html, "Selected Works")
	assert.NotContains(t, html, "Technical Skills")
}

func TestPageFallsBackToDeveloperForRetiredTemplate(t *testing.T) {
	app, db := newTestApp(t)
	// a row written before a template was retired from the catalog
	seedTenant(t, db, "jane", "vintage")

	resp, html := getPage(t, app, "jane")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, html, "Technical Skills")
}

func TestPageIncludesSharedContent(t *testing.T) {
	app, db := newTestApp(t)
	seedTenant(t, db, "jane", "developer")

	require.NoError(t, db.Create(&profileModel.ProfileModel{
		ID:           profileModel.SingletonID,
		Name:         "Jane Doe",
		Role:         "Platform Engineer",
		Bio:          "Builds backends.",
		ShortBio:     "Backend person",
		Location:     "Berlin",
		ProfileImage: "https://example.com/jane.png",
	}).Error)
	require.NoError(t, db.Create(&skillModel.SkillModel{
		Name: "Go", Category: "Backend", Proficiency: 95, Icon: "go",
	}).Error)

	resp, html := getPage(t, app, "jane")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, html, "Jane Doe")
	assert.Contains(t, html, "Platform Engineer")
	assert.Contains(t, html, "Go")
	assert.NotContains(t, html, "Full Stack Developer") // placeholder replaced
}

func TestPagePlaceholdersWithoutProfile(t *testing.T) {
	app, db := newTestApp(t)
	seedTenant(t, db, "jane", "developer")

	resp, html := getPage(t, app, "jane")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, html, "Full Stack Developer")
	assert.Contains(t, html, "Available for work")
}

func TestTemplateSwitchShowsUpImmediately(t *testing.T) {
	app, db := newTestApp(t)
	up := seedTenant(t, db, "jane", "developer")

	resp, html := getPage(t, app, "jane")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, html, "Technical Skills")

	// switching templates through the API invalidates the cached page
	claims := jwt.MapClaims{
		"user_id": up.UserID.String(),
		"email":   "jane@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/user-profile",
		strings.NewReader(`{"selected_template":"designer"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	apiResp, err := app.Test(req, 15000)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, apiResp.StatusCode)

	resp, html = getPage(t, app, "jane")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, html, "Selected Works")
	assert.NotContains(t, html, "Technical Skills")
}

func TestPageIsCachedUntilTenantChanges(t *testing.T) {
	app, db := newTestApp(t)
	up := seedTenant(t, db, "jane", "developer")

	resp, html := getPage(t, app, "jane")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, html, "Technical Skills")

	// direct DB change is invisible while the page cache holds the old render
	require.NoError(t, db.Model(up).Update("selected_template", "designer").Error)
	_, html = getPage(t, app, "jane")
	assert.Contains(t, html, "Technical Skills")

	// the controller's invalidation path clears it
	helper.FlushCache()
	_, html = getPage(t, app, "jane")
	assert.Contains(t, html, "Selected Works")
	assert.False(t, strings.Contains(html, "Technical Skills"))
}
