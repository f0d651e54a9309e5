package pagesController

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContactTest(t *testing.T, emailHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	server := httptest.NewServer(emailHandler)
	t.Cleanup(server.Close)

	t.Setenv("EMAIL_API_URL", server.URL)
	t.Setenv("EMAIL_SERVICE_ID", "service_demo")
	t.Setenv("EMAIL_PUBLIC_KEY", "public_demo")
	t.Setenv("EMAIL_TEMPLATE_CONTACT_NOTICE", "template_contact_notice")
	t.Setenv("EMAIL_TEMPLATE_CONTACT_ACK", "template_contact_ack")

	r := gin.New()
	r.POST("/contact", SubmitContact())
	return r
}

func postContact(t *testing.T, r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContactSendsBusinessNoticeThenAck(t *testing.T) {
	var templates []string
	r := setupContactTest(t, func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			TemplateID string `json:"template_id"`
		}
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		templates = append(templates, payload.TemplateID)
		w.WriteHeader(http.StatusOK)
	})

	w := postContact(t, r, gin.H{
		"name":    "Alex",
		"email":   "alex@example.com",
		"message": "Really like the monitor on the home page.",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"template_contact_notice", "template_contact_ack"}, templates)
}

func TestSubmitContactValidationBlocksSubmission(t *testing.T) {
	var sends int32
	r := setupContactTest(t, func(w http.ResponseWriter, req *http.Request) {
		atomic.AddInt32(&sends, 1)
		w.WriteHeader(http.StatusOK)
	})

	w := postContact(t, r, gin.H{"name": "Alex", "email": "not-an-email", "message": "hi"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int32(0), atomic.LoadInt32(&sends), "nothing should be sent when validation fails")

	var body struct {
		Errors       map[string]string `json:"errors"`
		FirstInvalid string            `json:"first_invalid"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "email", body.FirstInvalid)
	assert.Contains(t, body.Errors, "email")
	assert.Contains(t, body.Errors, "message")
}

// The ack failing after the notice was delivered still reports one generic
// failure; the first send is not compensated.
func TestSubmitContactSecondSendFailureIsGeneric(t *testing.T) {
	var templates []string
	r := setupContactTest(t, func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			TemplateID string `json:"template_id"`
		}
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		templates = append(templates, payload.TemplateID)
		if payload.TemplateID == "template_contact_ack" {
			http.Error(w, "quota exceeded", http.StatusTooManyRequests)
			return
		}
		w.WriteHeader(http.StatusOK)
	})

	w := postContact(t, r, gin.H{
		"name":    "Alex",
		"email":   "alex@example.com",
		"message": "Really like the monitor on the home page.",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, []string{"template_contact_notice", "template_contact_ack"}, templates,
		"business notice goes out before the ack fails")

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Message could not be sent. Please try again.", body.Error)
}

func TestSubmitContactFirstSendFailureSkipsAck(t *testing.T) {
	var templates []string
	r := setupContactTest(t, func(w http.ResponseWriter, req *http.Request) {
		var payload struct {
			TemplateID string `json:"template_id"`
		}
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
		templates = append(templates, payload.TemplateID)
		http.Error(w, "service down", http.StatusServiceUnavailable)
	})

	w := postContact(t, r, gin.H{
		"name":    "Alex",
		"email":   "alex@example.com",
		"message": "Really like the monitor on the home page.",
	})

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, []string{"template_contact_notice"}, templates)
}
