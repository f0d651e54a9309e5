package pagesController

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	checkoutControllers "github.com/Arobaczewski/eCommerce-sub000/controllers/checkout"
	"github.com/Arobaczewski/eCommerce-sub000/mailer"
)

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// POST /contact
//
// Validates the contact form, then sends the business notification and the
// sender acknowledgment back to back. Either failing surfaces one generic
// error; nothing is retried.
func SubmitContact() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		values := map[string]string{"name": input.Name, "email": input.Email, "message": input.Message}
		fieldErrors := map[string]string{}
		firstInvalid := ""
		for _, field := range []string{"name", "email", "message"} {
			if msg := checkoutControllers.ValidateField(field, values[field]); msg != "" {
				fieldErrors[field] = msg
				if firstInvalid == "" {
					firstInvalid = field
				}
			}
		}
		if len(fieldErrors) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"valid":         false,
				"errors":        fieldErrors,
				"first_invalid": firstInvalid,
			})
			return
		}

		params := mailer.Params{
			"from_name":  input.Name,
			"from_email": input.Email,
			"message":    input.Message,
		}

		if err := mailer.Send(mailer.ContactNoticeTemplate(), params); err != nil {
			log.Printf("❌ Contact from %s: business notification failed: %v", input.Email, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Message could not be sent. Please try again."})
			return
		}
		if err := mailer.Send(mailer.ContactAckTemplate(), params); err != nil {
			log.Printf("❌ Contact from %s: acknowledgment failed after business notice was delivered: %v", input.Email, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Message could not be sent. Please try again."})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Message sent"})
	}
}
