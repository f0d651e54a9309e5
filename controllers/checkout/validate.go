package checkoutControllers

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Per-field validation for the checkout wizard and the contact form. Every
// rule returns a user-facing message or "" when the value passes. Validation
// never blocks input, only step advancement and submission.

var (
	emailRe  = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipRe    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	cardRe   = regexp.MustCompile(`^\d{13,19}$`)
	expiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
	cvvRe    = regexp.MustCompile(`^\d{3,4}$`)
)

// Wizard steps. Step 3 is review/submit and re-checks everything.
const (
	StepShipping = 1
	StepPayment  = 2
	StepReview   = 3
)

// stepFields lists each step's fields in display order, so the first invalid
// field reported matches the first one on screen.
var stepFields = map[int][]string{
	StepShipping: {"firstName", "lastName", "email", "address", "city", "state", "zipCode"},
	StepPayment:  {"nameOnCard", "cardNumber", "expiryDate", "cvv"},
}

// ValidateField returns an error message for one field value, or "" when it
// is valid.
func ValidateField(field, value string) string {
	value = strings.TrimSpace(value)

	switch field {
	case "firstName":
		return requireMin(value, 2, "First name")
	case "lastName":
		return requireMin(value, 2, "Last name")
	case "name": // contact form
		return requireMin(value, 2, "Name")
	case "email":
		if value == "" {
			return "Email is required"
		}
		if !emailRe.MatchString(value) {
			return "Please enter a valid email address"
		}
	case "address":
		return requireMin(value, 5, "Address")
	case "city":
		return requireMin(value, 2, "City")
	case "state":
		if value == "" {
			return "State is required"
		}
	case "zipCode":
		if value == "" {
			return "ZIP code is required"
		}
		if !zipRe.MatchString(value) {
			return "Please enter a valid ZIP code"
		}
	case "nameOnCard":
		return requireMin(value, 2, "Name on card")
	case "cardNumber":
		if value == "" {
			return "Card number is required"
		}
		if !cardRe.MatchString(stripCardSeparators(value)) {
			return "Please enter a valid card number"
		}
	case "expiryDate":
		if value == "" {
			return "Expiry date is required"
		}
		return validateExpiry(value)
	case "cvv":
		if value == "" {
			return "CVV is required"
		}
		if !cvvRe.MatchString(value) {
			return "Please enter a valid CVV"
		}
	case "message": // contact form
		return requireMin(value, 10, "Message")
	}
	return ""
}

// ValidateStep bulk-validates one wizard step. It returns the per-field
// messages plus the name of the first invalid field in display order, which
// the client focuses.
func ValidateStep(step int, fields map[string]string) (map[string]string, string) {
	names, ok := stepFields[step]
	if !ok {
		// Review step: everything again
		names = append(append([]string{}, stepFields[StepShipping]...), stepFields[StepPayment]...)
	}

	errors := map[string]string{}
	firstInvalid := ""
	for _, name := range names {
		if msg := ValidateField(name, fields[name]); msg != "" {
			errors[name] = msg
			if firstInvalid == "" {
				firstInvalid = name
			}
		}
	}
	return errors, firstInvalid
}

func requireMin(value string, min int, label string) string {
	if value == "" {
		return label + " is required"
	}
	if len(value) < min {
		return label + " must be at least " + strconv.Itoa(min) + " characters"
	}
	return ""
}

func stripCardSeparators(v string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(v)
}

// validateExpiry checks MM/YY format and that the card has not expired;
// a card expiring this month is still valid.
func validateExpiry(value string) string {
	m := expiryRe.FindStringSubmatch(value)
	if m == nil {
		return "Please enter a valid expiry date (MM/YY)"
	}
	month, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[2])
	year += 2000

	now := time.Now()
	if year < now.Year() || (year == now.Year() && month < int(now.Month())) {
		return "Card has expired"
	}
	return ""
}

// cardLast4 reduces a validated card number to its displayable tail.
func cardLast4(cardNumber string) string {
	digits := stripCardSeparators(cardNumber)
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
