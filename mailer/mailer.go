package mailer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Outbound transactional email through an EmailJS-style REST endpoint. Every
// submission sends two emails back to back: a business notification and a
// customer acknowledgment. There is no retry and no compensation between the
// two sends; callers surface a single generic failure either way.

// Params are the template substitution values for one send.
type Params map[string]string

type emailRequest struct {
	ServiceID      string `json:"service_id"`
	TemplateID     string `json:"template_id"`
	UserID         string `json:"user_id"`
	AccessToken    string `json:"accessToken,omitempty"`
	TemplateParams Params `json:"template_params"`
}

var client = &http.Client{Timeout: 15 * time.Second}

// getEmailConfig reads the sending service configuration from the
// environment.
func getEmailConfig() (apiURL, serviceID, publicKey, accessToken string, err error) {
	apiURL = os.Getenv("EMAIL_API_URL")
	serviceID = os.Getenv("EMAIL_SERVICE_ID")
	publicKey = os.Getenv("EMAIL_PUBLIC_KEY")
	accessToken = os.Getenv("EMAIL_PRIVATE_KEY")

	if apiURL == "" || serviceID == "" || publicKey == "" {
		return "", "", "", "", fmt.Errorf("email service configuration missing")
	}
	return apiURL, serviceID, publicKey, accessToken, nil
}

// Send posts one templated email to the sending service.
func Send(templateID string, params Params) error {
	apiURL, serviceID, publicKey, accessToken, err := getEmailConfig()
	if err != nil {
		return err
	}
	if templateID == "" {
		return fmt.Errorf("email template id missing")
	}

	payload := emailRequest{
		ServiceID:      serviceID,
		TemplateID:     templateID,
		UserID:         publicKey,
		AccessToken:    accessToken,
		TemplateParams: params,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach email service: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email service error (%d): %s", resp.StatusCode, string(body))
	}
	return nil
}

// Business-notice and customer-ack template ids, per submission type.

func OrderNoticeTemplate() string { return os.Getenv("EMAIL_TEMPLATE_ORDER_NOTICE") }

func OrderAckTemplate() string { return os.Getenv("EMAIL_TEMPLATE_ORDER_ACK") }

func ContactNoticeTemplate() string { return os.Getenv("EMAIL_TEMPLATE_CONTACT_NOTICE") }

func ContactAckTemplate() string { return os.Getenv("EMAIL_TEMPLATE_CONTACT_ACK") }
