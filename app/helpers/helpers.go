package helpers

import (
	"fmt"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"
)

type contextKey string

const (
	ContextKeyUserID contextKey = "userID"
	ContextKeyUser   contextKey = "userObject"
)

// FormatValidationErrors turns validator errors into a field-keyed map of
// messages fit for inline display next to form fields.
func FormatValidationErrors(errs validator.ValidationErrors) map[string]string {
	errorMessages := make(map[string]string)
	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errorMessages[field] = fmt.Sprintf("%s is required.", field)
		case "email":
			errorMessages[field] = fmt.Sprintf("%s must be a valid email address.", field)
		case "min":
			errorMessages[field] = fmt.Sprintf("%s must be at least %s characters/items.", field, err.Param())
		case "max":
			errorMessages[field] = fmt.Sprintf("%s must be at most %s characters/items.", field, err.Param())
		case "gte":
			errorMessages[field] = fmt.Sprintf("%s must be %s or greater.", field, err.Param())
		case "lte":
			errorMessages[field] = fmt.Sprintf("%s must be %s or less.", field, err.Param())
		default:
			errorMessages[field] = fmt.Sprintf("%s failed %s validation.", field, err.Tag())
		}
	}
	return errorMessages
}

func PasswordCompare(hashPass string, password []byte) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashPass), password)
	if err != nil {
		log.Printf("PasswordCompare: password does not match or error: %v", err)
		return false
	}
	return true
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return ""
	}
	return string(bytes)
}

// FileExtension returns the lower-cased extension of an uploaded file
// name, without the dot.
func FileExtension(filename string) string {
	idx := strings.LastIndex(filename, ".")
	if idx < 0 || idx == len(filename)-1 {
		return ""
	}
	return strings.ToLower(filename[idx+1:])
}
