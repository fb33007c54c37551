package response

// Business status codes.
const (
	CodeSuccess = 0
	CodeError   = 1

	// user module 100xx
	ErrUserExists   = 10001
	ErrUserNotFound = 10002
	ErrAuthFailed   = 10003
	ErrTokenInvalid = 10004
	ErrNoPermission = 10005

	// catalog module 200xx
	ErrProductNotFound = 20001
	ErrReviewNotFound  = 20002

	// cart module 300xx
	ErrCartEmpty    = 30001
	ErrCartNotFound = 30002

	// order module 400xx
	ErrOrderNotFound      = 40001
	ErrInvalidOrderStatus = 40002

	// payment module 450xx
	ErrGatewayNotConfigured = 45001
	ErrUnsupportedGateway   = 45002
	ErrGatewayUpstream      = 45003

	// system errors 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
