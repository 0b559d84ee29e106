package errorvalues

import "errors"

var (
	// ErrValidation marks request field validation failures; the joined
	// field errors are safe to surface to the client.
	ErrValidation = errors.New("validation error")

	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrWrongOwner         = errors.New("entity has different owner")
	ErrOwnerNotFound      = errors.New("owner doesn't exists")
	ErrHabitNotFound      = errors.New("habit doesn't exists")
	ErrPresetNotFound     = errors.New("habit preset doesn't exists")
	ErrUserHasHabit       = errors.New("user already tracks this habit")
	ErrHabitNotActive     = errors.New("habit is deactivated")
	ErrInvalidTarget      = errors.New("daily target must be between 1 and 20")
	ErrFutureDate         = errors.New("date in future is not allowed")
	ErrInvalidWeight      = errors.New("weight must be positive")
	ErrCompletionNotFound = errors.New("completion doesn't exists")

	ErrLogNotFound   = errors.New("daily log doesn't exists")
	ErrItemNotFound  = errors.New("vision board item doesn't exists")
	ErrPhotoNotFound = errors.New("progress photo doesn't exists")

	ErrFileTooLarge    = errors.New("file size must be less than 10MB")
	ErrUnsupportedFile = errors.New("file must be a JPEG, PNG or WebP image")

	// Engine validation errors (see internal/metrics).
	ErrNonPositiveTarget = errors.New("daily target must be positive")
	ErrNegativeCount     = errors.New("completion count can't be negative")
	ErrMissingDate       = errors.New("completion record has no date")
)
