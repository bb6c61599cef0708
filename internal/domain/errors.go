package domain

import "errors"

var (
	// ErrMissingField is returned when a required request field is absent or empty.
	ErrMissingField = errors.New("required field is missing")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
	// ErrDuplicateQuestion is returned when the question text is already in the bank.
	ErrDuplicateQuestion = errors.New("question already exists")
	// ErrInvalidCredentials covers both unknown usernames and failed hash checks.
	ErrInvalidCredentials = errors.New("invalid username or password")
	// ErrInsufficientData is returned when the bank holds fewer questions than a quiz needs.
	ErrInsufficientData = errors.New("not enough questions in the bank")
	// ErrUserNotFound indicates a lookup for an unregistered username.
	ErrUserNotFound = errors.New("user not found")
	// ErrStoreUnavailable wraps connectivity failures of the backing store.
	ErrStoreUnavailable = errors.New("store unavailable")
)
