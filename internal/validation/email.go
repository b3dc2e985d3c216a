// Package validation содержит функции валидации входных данных.
package validation

import (
	"net/mail"
	"strings"
)

// IsValidEmail проверяет синтаксическую корректность адреса электронной почты.
func IsValidEmail(email string) bool {
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	// mail.ParseAddress принимает формы с отображаемым именем ("Name <a@b>"),
	// витрине нужен голый адрес.
	if addr.Address != email {
		return false
	}

	domain := email[strings.LastIndex(email, "@")+1:]
	return strings.Contains(domain, ".")
}
