package contact

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"kavachjyotish/email"
	"kavachjyotish/models"
	"kavachjyotish/store"
)

func setupTestRouter() (*gin.Engine, *store.Store) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db.AutoMigrate(&models.ContactMessage{})

	s := store.NewStore(db)
	router := gin.New()
	NewContactModule(s, email.NewService()).RegisterRoutes(router)
	return router, s
}

func postJSON(router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateContactMessage(t *testing.T) {
	router, s := setupTestRouter()

	w := postJSON(router, "/api/contact", gin.H{
		"name":    "Meena Joshi",
		"email":   "meena@example.com",
		"subject": "Vastu question",
		"message": "Is a north-east entrance suitable for our new flat?",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	messages, _ := s.ContactMessages()
	assert.Len(t, messages, 1)
	assert.False(t, messages[0].IsRead)
}

func TestCreateContactMessage_InvalidEmail(t *testing.T) {
	router, s := setupTestRouter()

	w := postJSON(router, "/api/contact", gin.H{
		"name":    "Meena Joshi",
		"email":   "not-an-email",
		"message": "Hello",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	messages, _ := s.ContactMessages()
	assert.Empty(t, messages)
}

func TestCreateContactMessage_SubjectOptional(t *testing.T) {
	router, _ := setupTestRouter()

	w := postJSON(router, "/api/contact", gin.H{
		"name":    "Meena Joshi",
		"email":   "meena@example.com",
		"message": "No subject here.",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}
