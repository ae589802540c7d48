// file: internals/features/portfolio/social_links/controller/social_link_controller_test.go
package controller_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
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
	helper "portfolioku_backend/internals/helpers"
	routes "portfolioku_backend/internals/route"
)

const testSecret = "test-secret"

var dbSeq int64

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	t.Setenv("JWT_SECRET", testSecret)
	configs.JWTSecret = testSecret
	helper.FlushCache()

	dsn := fmt.Sprintf("file:socialtest%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func mintToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": uuid.NewString(),
		"email":   "admin@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	resp, err := app.Test(req, 15000)
	require.NoError(t, err)

	var env envelope
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &env))
	}
	return resp, env
}

type socialLinkJSON struct {
	ID       uuid.UUID `json:"id"`
	Platform string    `json:"platform"`
	URL      string    `json:"url"`
	Order    int       `json:"order"`
}

func createLink(t *testing.T, app *fiber.App, token, platform string, order int) socialLinkJSON {
	t.Helper()
	resp, env := doJSON(t, app, http.MethodPost, "/api/social-links", token, fiber.Map{
		"platform": platform,
		"url":      "https://example.com/" + platform,
		"icon":     platform,
		"order":    order,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var l socialLinkJSON
	require.NoError(t, json.Unmarshal(env.Data, &l))
	return l
}

func TestSocialLinkListOrdersByDisplayOrder(t *testing.T) {
	app, _ := newTestApp(t)
	token := mintToken(t)

	createLink(t, app, token, "github", 2)
	createLink(t, app, token, "linkedin", 1)
	createLink(t, app, token, "twitter", 3)

	resp, env := doJSON(t, app, http.MethodGet, "/api/social-links", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []socialLinkJSON
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 3)
	assert.Equal(t, "linkedin", list[0].Platform)
	assert.Equal(t, "github", list[1].Platform)
	assert.Equal(t, "twitter", list[2].Platform)
}

func TestSocialLinkValidatesURL(t *testing.T) {
	app, _ := newTestApp(t)
	token := mintToken(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/api/social-links", token, fiber.Map{
		"platform": "github",
		"url":      "not a url",
		"icon":     "github",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestSocialLinkReorder(t *testing.T) {
	app, _ := newTestApp(t)
	token := mintToken(t)

	gh := createLink(t, app, token, "github", 1)
	createLink(t, app, token, "linkedin", 2)

	resp, _ := doJSON(t, app, http.MethodPut, "/api/social-links/"+gh.ID.String(), token, fiber.Map{
		"order": 5,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env := doJSON(t, app, http.MethodGet, "/api/social-links", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []socialLinkJSON
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 2)
	assert.Equal(t, "linkedin", list[0].Platform)
	assert.Equal(t, "github", list[1].Platform)
}

func TestSocialLinkDeleteMissingReturns404(t *testing.T) {
	app, _ := newTestApp(t)
	token := mintToken(t)

	resp, _ := doJSON(t, app, http.MethodDelete, "/api/social-links/"+uuid.NewString(), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
