package validators

import (
	dto "tasklight.app/tasklight/internal/data_models"
	apperrors "tasklight.app/tasklight/internal/errors"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	return validateCredentials(r.Username, r.Password)
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	return validateCredentials(r.Username, r.Password)
}

func validateCredentials(username, password string) error {
	fields := map[string]string{}
	if username == "" {
		fields["username"] = "username is required"
	}
	if password == "" {
		fields["password"] = "password is required"
	}
	if len(fields) > 0 {
		return apperrors.Validation(fields)
	}
	return nil
}
