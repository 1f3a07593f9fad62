package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/octobees/cladding-site/internal/dto"
	"github.com/octobees/cladding-site/internal/entity"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	phonePattern = regexp.MustCompile(`^\+?[1-9]\d{0,15}$`)
	idnaProfile  = idna.Lookup
)

const (
	defaultPhoneRegion = "US"

	nameMinLen    = 2
	nameMaxLen    = 100
	companyMaxLen = 100
	messageMinLen = 10
	messageMaxLen = 1000
)

// ValidateContact checks every field rule independently and returns the
// normalized form together with all violations. The form is accepted only
// when the violation list is empty.
func ValidateContact(form dto.ContactForm, phoneRegion string) (dto.ContactForm, []dto.FieldError) {
	var violations []dto.FieldError
	fail := func(field, value, message string) {
		violations = append(violations, dto.FieldError{Field: field, Message: message, Value: value})
	}

	out := dto.ContactForm{
		Name:        strings.TrimSpace(form.Name),
		Email:       strings.ToLower(strings.TrimSpace(form.Email)),
		Company:     strings.TrimSpace(form.Company),
		ProjectType: strings.TrimSpace(form.ProjectType),
		Message:     strings.TrimSpace(form.Message),
		Budget:      strings.TrimSpace(form.Budget),
		Timeline:    strings.TrimSpace(form.Timeline),
	}

	if out.Name == "" {
		fail("name", form.Name, "Name is required")
	}
	if n := utf8.RuneCountInString(out.Name); n < nameMinLen || n > nameMaxLen {
		fail("name", form.Name, "Name must be between 2 and 100 characters")
	}

	if out.Email == "" {
		fail("email", form.Email, "Email is required")
	}
	if !isValidEmail(out.Email) {
		fail("email", form.Email, "Please enter a valid email address")
	}

	if phone := stripWhitespace(form.Phone); phone != "" {
		if phonePattern.MatchString(phone) {
			out.Phone = formatPhone(phone, phoneRegion)
		} else {
			fail("phone", form.Phone, "Please enter a valid phone number")
		}
	}

	if out.Company != "" && utf8.RuneCountInString(out.Company) > companyMaxLen {
		fail("company", form.Company, "Company name must not exceed 100 characters")
	}

	if out.ProjectType == "" {
		fail("projectType", form.ProjectType, "Please select a project type")
	}
	if !contains(entity.ProjectTypes, out.ProjectType) {
		fail("projectType", form.ProjectType, "Invalid project type selected")
	}

	if out.Message == "" {
		fail("message", form.Message, "Message is required")
	}
	if n := utf8.RuneCountInString(out.Message); n < messageMinLen || n > messageMaxLen {
		fail("message", form.Message, "Message must be between 10 and 1000 characters")
	}

	if out.Budget != "" && !contains(entity.BudgetRanges, out.Budget) {
		fail("budget", form.Budget, "Invalid budget range selected")
	}
	if out.Timeline != "" && !contains(entity.Timelines, out.Timeline) {
		fail("timeline", form.Timeline, "Invalid timeline selected")
	}

	return out, violations
}

func isValidEmail(email string) bool {
	if email == "" || !emailPattern.MatchString(email) {
		return false
	}
	parts := strings.SplitN(email, "@", 2)
	domain := parts[1]
	if !isDomainValid(domain) {
		return false
	}
	asciiDomain, err := idnaProfile.ToASCII(domain)
	return err == nil && asciiDomain != ""
}

func isDomainValid(domain string) bool {
	if strings.Count(domain, ".") == 0 {
		return false
	}
	parts := strings.Split(domain, ".")
	for _, part := range parts {
		if part == "" || strings.HasPrefix(part, "-") || strings.HasSuffix(part, "-") {
			return false
		}
	}
	return true
}

func stripWhitespace(value string) string {
	return strings.Join(strings.Fields(value), "")
}

// formatPhone returns the E.164 form when phonenumbers recognises the number
// for the region, otherwise the digits as entered.
func formatPhone(phone, region string) string {
	if normalized := normalizePhone(phone, region); normalized != "" {
		return normalized
	}
	return phone
}

func normalizePhone(raw, region string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if region == "" {
		region = defaultPhoneRegion
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
