package mailer

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func configure(t *testing.T, apiURL string) {
	t.Helper()
	t.Setenv("EMAIL_API_URL", apiURL)
	t.Setenv("EMAIL_SERVICE_ID", "service_demo")
	t.Setenv("EMAIL_PUBLIC_KEY", "public_demo")
	t.Setenv("EMAIL_PRIVATE_KEY", "")
}

func TestSendPostsTemplatePayload(t *testing.T) {
	var got emailRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()
	configure(t, server.URL)

	err := Send("template_order", Params{"order_ref": "20260831-abc", "total": "$99.99"})
	require.NoError(t, err)

	assert.Equal(t, "service_demo", got.ServiceID)
	assert.Equal(t, "template_order", got.TemplateID)
	assert.Equal(t, "public_demo", got.UserID)
	assert.Equal(t, "$99.99", got.TemplateParams["total"])
}

func TestSendServiceErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "The template ID not found", http.StatusBadRequest)
	}))
	defer server.Close()
	configure(t, server.URL)

	err := Send("template_missing", Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email service error (400)")
}

func TestSendMissingConfig(t *testing.T) {
	configure(t, "")

	err := Send("template_order", Params{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration missing")
}

func TestSendMissingTemplateID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent without a template id")
	}))
	defer server.Close()
	configure(t, server.URL)

	err := Send("", Params{})
	require.Error(t, err)
}
