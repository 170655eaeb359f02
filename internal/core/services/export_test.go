package services

import portssvc "github.com/SscSPs/backoffice_app/internal/core/ports/services"

// SetPasswordChecker replaces the bcrypt comparison of an auth service.
func SetPasswordChecker(svc portssvc.AuthSvcFacade, check func(password, hash string) bool) {
	svc.(*authService).checkPassword = check
}
