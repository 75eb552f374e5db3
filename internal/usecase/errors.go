package usecase

import "errors"

// Remote failure taxonomy. Each wraps the transport cause.
var (
	ErrRemoteCreate       = errors.New("remote create failed")
	ErrRemoteMutation     = errors.New("remote mutation failed")
	ErrRemoteQuery        = errors.New("remote query failed")
	ErrCompatibilityCheck = errors.New("compatibility check failed")
)

var (
	ErrInvalidSessionID       = errors.New("invalid session id")
	ErrSessionNotFound        = errors.New("build session not found")
	ErrSessionClosed          = errors.New("build session is closed")
	ErrInvalidPlatform        = errors.New("invalid platform")
	ErrInvalidCategory        = errors.New("invalid component category")
	ErrInvalidProductID       = errors.New("invalid product id")
	ErrInvalidQuantity        = errors.New("invalid quantity")
	ErrInvalidBudget          = errors.New("invalid budget target")
	ErrStorageIndexRequired   = errors.New("storage index required")
	ErrStorageIndexOutOfRange = errors.New("storage index out of range")
	ErrNoConfiguration        = errors.New("build session has no configuration")
	ErrConfigurationExists    = errors.New("build session already has a configuration")
	ErrPlatformLocked         = errors.New("platform cannot change after configuration is created")
	ErrInvalidStep            = errors.New("invalid workflow step")
	ErrInvalidTransition      = errors.New("invalid workflow transition")
	ErrReviewGate             = errors.New("required components missing for review")
	ErrCompatibilityBlocking  = errors.New("configuration has blocking compatibility issues")
	ErrCompatibilityPending   = errors.New("compatibility not yet verified for the latest change")
	ErrInvalidPaymentPayload  = errors.New("invalid payment payload")
	ErrPaymentGatewayMissing  = errors.New("payment gateway not configured")
	ErrPaymentFailed          = errors.New("payment provider rejected the payment")
)
