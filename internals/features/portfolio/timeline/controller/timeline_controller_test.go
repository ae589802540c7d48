// file: internals/features/portfolio/timeline/controller/timeline_controller_test.go
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
	timelineModel "portfolioku_backend/internals/features/portfolio/timeline/model"
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

	dsn := fmt.Sprintf("file:timelinetest%d?mode=memory&cache=shared", atomic.AddInt64(&dbSeq, 1))
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

type experienceJSON struct {
	ID        uuid.UUID `json:"id"`
	Company   string    `json:"company"`
	Role      string    `json:"role"`
	StartDate string    `json:"start_date"` // "2006-01-02"
	EndDate   *string   `json:"end_date"`
	Current   bool      `json:"current"`
}

func TestCreateCurrentExperienceDropsEndDate(t *testing.T) {
	app, db := newTestApp(t)
	token := mintToken(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/experience", token, fiber.Map{
		"company":     "Acme",
		"role":        "Engineer",
		"start_date":  "2022-03-01",
		"end_date":    "2023-01-01", // submitted anyway, must be ignored
		"current":     true,
		"description": "Build things",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var exp experienceJSON
	require.NoError(t, json.Unmarshal(env.Data, &exp))
	assert.True(t, exp.Current)
	assert.Nil(t, exp.EndDate)

	var m timelineModel.ExperienceModel
	require.NoError(t, db.First(&m, "id = ?", exp.ID).Error)
	assert.Nil(t, m.EndDate)
}

func TestUpdateToCurrentClearsStoredEndDate(t *testing.T) {
	app, db := newTestApp(t)
	token := mintToken(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/experience", token, fiber.Map{
		"company":     "Acme",
		"role":        "Engineer",
		"start_date":  "2020-01-01",
		"end_date":    "2021-06-30",
		"current":     false,
		"description": "Build things",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var exp experienceJSON
	require.NoError(t, json.Unmarshal(env.Data, &exp))
	require.NotNil(t, exp.EndDate)

	resp, _ = doJSON(t, app, http.MethodPut, "/api/experience/"+exp.ID.String(), token, fiber.Map{
		"current": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var m timelineModel.ExperienceModel
	require.NoError(t, db.First(&m, "id = ?", exp.ID).Error)
	assert.True(t, m.Current)
	assert.Nil(t, m.EndDate)
}

func TestExperienceAcceptsBothDateFormats(t *testing.T) {
	app, _ := newTestApp(t)
	token := mintToken(t)

	tests := []struct {
		name string
		date string
		want int
	}{
		{"plain date", "2022-03-01", http.StatusCreated},
		{"rfc3339", "2022-03-01T00:00:00Z", http.StatusCreated},
		{"garbage", "March 1st", http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, _ := doJSON(t, app, http.MethodPost, "/api/experience", token, fiber.Map{
				"company":     "Acme",
				"role":        "Engineer",
				"start_date":  tc.date,
				"description": "Build things",
			})
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}

func TestExperienceListNewestFirst(t *testing.T) {
	app, _ := newTestApp(t)
	token := mintToken(t)

	for _, start := range []string{"2019-01-01", "2023-05-01", "2021-08-01"} {
		resp, _ := doJSON(t, app, http.MethodPost, "/api/experience", token, fiber.Map{
			"company":     "Acme",
			"role":        "Engineer",
			"start_date":  start,
			"description": "Build things",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := doJSON(t, app, http.MethodGet, "/api/experience", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []experienceJSON
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 3)
	// dates are YYYY-MM-DD so string order is chronological order
	assert.Greater(t, list[0].StartDate, list[1].StartDate)
	assert.Greater(t, list[1].StartDate, list[2].StartDate)
}

func TestEducationCRUD(t *testing.T) {
	app, _ := newTestApp(t)
	token := mintToken(t)

	resp, env := doJSON(t, app, http.MethodPost, "/api/education", token, fiber.Map{
		"school":     "MIT",
		"degree":     "BSc",
		"field":      "Computer Science",
		"start_date": "2015-09-01",
		"end_date":   "2019-06-01",
		"gpa":        "3.9/4.0",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var edu struct {
		ID  uuid.UUID `json:"id"`
		GPA *string   `json:"gpa"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &edu))
	require.NotNil(t, edu.GPA)
	assert.Equal(t, "3.9/4.0", *edu.GPA) // free-form, not numeric

	resp, _ = doJSON(t, app, http.MethodDelete, "/api/education/"+edu.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, env = doJSON(t, app, http.MethodGet, "/api/education", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list []json.RawMessage
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Empty(t, list)
}
