package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/sstarkov/styleshop/internal/hash"
	"github.com/sstarkov/styleshop/internal/models"
	"github.com/sstarkov/styleshop/internal/mykafka"
)

var testJWTSecret = []byte("test-secret")

func InitTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to in-memory db: %v", err)
	}

	// one connection keeps the in-memory database alive across queries
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.User{}, &models.Product{}, &models.Order{}, &models.OrderItem{}); err != nil {
		t.Fatalf("failed to migrate tables: %v", err)
	}
	return db
}

type testEnv struct {
	E        *echo.Echo
	DB       *gorm.DB
	Auth     *AuthHandler
	Products *ProductHandler
	Orders   *OrderHandler
}

func newTestEnv(t *testing.T) *testEnv {
	db := InitTestDB(t)
	return &testEnv{
		E:        echo.New(),
		DB:       db,
		Auth:     &AuthHandler{DB: db, JWTSecret: testJWTSecret, Producer: &mykafka.Producer{}},
		Products: &ProductHandler{DB: db, Index: "products"},
		Orders:   &OrderHandler{DB: db, Producer: &mykafka.Producer{}},
	}
}

func (env *testEnv) doJSONRequest(method, target string, payload interface{}) (*httptest.ResponseRecorder, echo.Context) {
	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.E.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) createUser(t *testing.T, username, email, password string) models.User {
	passwordHash, err := hash.HashPassword(password)
	require.NoError(t, err)

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, env.DB.Create(&user).Error)
	return user
}

// asUser puts a parsed token into the context the way the jwt middleware
// would for an authenticated request.
func (env *testEnv) asUser(t *testing.T, c echo.Context, userID uint) {
	claims := jwt.MapClaims{
		"sub": userID,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(testJWTSecret)
	require.NoError(t, err)

	parsed, err := jwt.Parse(signed, func(tk *jwt.Token) (interface{}, error) {
		return testJWTSecret, nil
	})
	require.NoError(t, err)
	c.Set("user", parsed)
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
