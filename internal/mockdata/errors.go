package mockdata

import "errors"

var (
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrInactiveUser       = errors.New("inactive user")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrDeactivateSelf     = errors.New("cannot deactivate yourself")

	ErrJobNotFound      = errors.New("job not found")
	ErrJobNotOpen       = errors.New("job is not open for applications")
	ErrAlreadyApplied   = errors.New("already applied for this job")
	ErrJobNotInProgress = errors.New("job is not in progress")
	ErrJobNotDelivered  = errors.New("job is not delivered")

	ErrBotNameTaken          = errors.New("bot account name already exists")
	ErrBotNotFound           = errors.New("bot account not found")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrUnknownEarningsPeriod = errors.New("unknown earnings period")
)
