// file: internals/features/templates/user_profiles/controller/user_profile_controller_test.go
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
	"portfolioku_backend/internals/features/templates/registry"
	tenantModel "portfolioku_backend/internals/features/templates/user_profiles/model"
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

	dsn := fmt.Sprintf("file:tenanttest%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: gormLogger.Default.LogMode(gormLogger.Silent)})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	app := fiber.New()
	routes.SetupRoutes(app, db)
	return app, db
}

func mintToken(t *testing.T, userID uuid.UUID, email string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"email":   email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
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

type userProfileJSON struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"user_id"`
	Username         string    `json:"username"`
	SelectedTemplate string    `json:"selected_template"`
	Customizations   struct {
		ColorScheme registry.ColorScheme `json:"color_scheme"`
		Layout      struct {
			ShowBlog           bool `json:"show_blog"`
			ShowTestimonials   bool `json:"show_testimonials"`
			ShowCertifications bool `json:"show_certifications"`
		} `json:"layout"`
	} `json:"customizations"`
	SEOSettings struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	} `json:"seo_settings"`
}

func TestGetMineLazilyCreatesDefaults(t *testing.T) {
	app, db := newTestApp(t)
	userID := uuid.New()
	token := mintToken(t, userID, "jane.doe@example.com")

	resp, env := doJSON(t, app, http.MethodGet, "/api/user-profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var up userProfileJSON
	require.NoError(t, json.Unmarshal(env.Data, &up))
	assert.Equal(t, userID, up.UserID)
	assert.Equal(t, "jane.doe", up.Username) // email local part
	assert.Equal(t, "developer", up.SelectedTemplate)
	assert.Equal(t, "#3B82F6", up.Customizations.ColorScheme.Primary)
	assert.Equal(t, "Professional Portfolio", up.SEOSettings.Title)
	assert.Equal(t, "Welcome to my professional portfolio", up.SEOSettings.Description)

	// second call reuses the row instead of creating another
	resp, env = doJSON(t, app, http.MethodGet, "/api/user-profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var again userProfileJSON
	require.NoError(t, json.Unmarshal(env.Data, &again))
	assert.Equal(t, up.ID, again.ID)

	var count int64
	require.NoError(t, db.Model(&tenantModel.UserProfileModel{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGetMineRequiresToken(t *testing.T) {
	app, _ := newTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/api/user-profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestUpsertRejectsUnknownTemplate(t *testing.T) {
	app, db := newTestApp(t)
	token := mintToken(t, uuid.New(), "jane@example.com")

	resp, env := doJSON(t, app, http.MethodPost, "/api/user-profile", token, fiber.Map{
		"selected_template": "influencer",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid template", env.Message)

	// the rejected write must not have created anything
	var count int64
	require.NoError(t, db.Model(&tenantModel.UserProfileModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestUpsertSelectsTemplate(t *testing.T) {
	app, _ := newTestApp(t)
	token := mintToken(t, uuid.New(), "jane@example.com")

	resp, env := doJSON(t, app, http.MethodPost, "/api/user-profile", token, fiber.Map{
		"selected_template": "designer",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var up userProfileJSON
	require.NoError(t, json.Unmarshal(env.Data, &up))
	assert.Equal(t, "designer", up.SelectedTemplate)

	// selection sticks across reads
	resp, env = doJSON(t, app, http.MethodGet, "/api/user-profile", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.Unmarshal(env.Data, &up))
	assert.Equal(t, "designer", up.SelectedTemplate)
}

func TestUpsertShallowMergesCustomizations(t *testing.T) {
	app, _ := newTestApp(t)
	token := mintToken(t, uuid.New(), "jane@example.com")

	// first save: designer template with an explicit primary color
	resp, _ := doJSON(t, app, http.MethodPost, "/api/user-profile", token, fiber.Map{
		"selected_template": "designer",
		"customizations": fiber.Map{
			"color_scheme": fiber.Map{
				"primary":   "#111111",
				"secondary": "#222222",
				"accent":    "#333333",
			},
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// second save: layout flags only, no color_scheme submitted, so the colors
	// fall back to the selected template's defaults
	resp, env := doJSON(t, app, http.MethodPost, "/api/user-profile", token, fiber.Map{
		"customizations": fiber.Map{
			"layout": fiber.Map{"show_testimonials": true},
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var up userProfileJSON
	require.NoError(t, json.Unmarshal(env.Data, &up))
	assert.True(t, up.Customizations.Layout.ShowTestimonials)
	assert.Equal(t, "#8B5CF6", up.Customizations.ColorScheme.Primary) // designer default
}

func TestPublicGetByUsername(t *testing.T) {
	app, db := newTestApp(t)
	token := mintToken(t, uuid.New(), "jane@example.com")

	// unknown username is 404 and never creates a record
	resp, env := doJSON(t, app, http.MethodGet, "/api/portfolio/ghost", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Portfolio not found", env.Message)

	var count int64
	require.NoError(t, db.Model(&tenantModel.UserProfileModel{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	// create, then the public resolver finds it
	resp, _ = doJSON(t, app, http.MethodPost, "/api/user-profile", token, fiber.Map{
		"selected_template": "finance",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, env = doJSON(t, app, http.MethodGet, "/api/portfolio/jane", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var up userProfileJSON
	require.NoError(t, json.Unmarshal(env.Data, &up))
	assert.Equal(t, "finance", up.SelectedTemplate)
}

func TestTemplatesCatalogEndpoint(t *testing.T) {
	app, _ := newTestApp(t)

	resp, env := doJSON(t, app, http.MethodGet, "/api/templates", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []struct {
		ID          string               `json:"id"`
		Name        string               `json:"name"`
		ColorScheme registry.ColorScheme `json:"color_scheme"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 4)

	ids := map[string]bool{}
	for _, tpl := range list {
		ids[tpl.ID] = true
	}
	assert.True(t, ids["developer"] && ids["designer"] && ids["finance"] && ids["professional"])
}
