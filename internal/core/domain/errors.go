package domain

import "errors"

var (
	// ErrValidation marks a missing or malformed required field. Wrap it with
	// fmt.Errorf("%w: ...") to carry the field detail.
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")

	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")

	ErrProjectNotFound = errors.New("project not found")

	ErrMessageNotFound      = errors.New("message not found")
	ErrInvalidMessageStatus = errors.New("invalid message status")

	ErrSkillExists   = errors.New("skill already exists")
	ErrSkillNotFound = errors.New("skill not found")

	ErrEmploymentExists   = errors.New("work experience already exists")
	ErrEmploymentNotFound = errors.New("work experience not found")

	ErrJobNotFound      = errors.New("job application not found")
	ErrInvalidJobStatus = errors.New("invalid job application status")

	ErrSubscriberExists   = errors.New("already subscribed")
	ErrSubscriberNotFound = errors.New("invalid or expired unsubscribe token")
)
