package utils

import (
	"strings"

	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/dto/requests"
)

// SanitizeUpdateProfileRequest normalizes the free-text fields before
// validation. Passwords are left untouched.
func SanitizeUpdateProfileRequest(request *requests.UpdateProfile) {
	request.Name = strings.TrimSpace(request.Name)
	request.Email = strings.ToLower(strings.TrimSpace(request.Email))
}
