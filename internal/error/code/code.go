package code

// HTTP status codes.
const (
	// StatusOK - 200: success.
	StatusOK = 200
	// StatusCreated - 201: resource created.
	StatusCreated = 201
	// StatusBadRequest - 400: invalid request parameters.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: missing credential.
	StatusUnauthorized = 401
	// StatusForbidden - 403: insufficient role or ownership.
	StatusForbidden = 403
	// StatusNotFound - 404: resource not found.
	StatusNotFound = 404
	// StatusConflict - 409: uniqueness violation.
	StatusConflict = 409
	// StatusTooManyRequests - 429: rate limited.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: internal server error.
	StatusInternalServerError = 500
)

// Generic error codes (100xxx).
const (
	// ErrSuccess - 200: success.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: unknown error.
	ErrUnknown
	// ErrBind - 400: request binding error.
	ErrBind
	// ErrValidation - 400: request validation error.
	ErrValidation
	// ErrTokenMissing - 401: authorization token not found.
	ErrTokenMissing
	// ErrTokenInvalid - 403: invalid authorization token.
	ErrTokenInvalid
	// ErrForbidden - 403: insufficient role or ownership.
	ErrForbidden
	// ErrTooManyRequests - 429: request rate too high.
	ErrTooManyRequests
)

// User related error codes (101xxx).
const (
	// ErrUserNotFound - 404: user not found.
	ErrUserNotFound int = iota + 101000
	// ErrUserAlreadyExist - 409: mobile or apartment already registered.
	ErrUserAlreadyExist
	// ErrInvalidCredentials - 401: invalid mobile number or password.
	ErrInvalidCredentials
)

// Notice related error codes (102xxx).
const (
	// ErrNoticeNotFound - 404: notice not found.
	ErrNoticeNotFound int = iota + 102000
	// ErrInvalidNoticeCategory - 400: category outside the fixed set.
	ErrInvalidNoticeCategory
	// ErrUploadTooLarge - 400: attachment exceeds the size cap.
	ErrUploadTooLarge
	// ErrUploadBadType - 400: attachment mime type not accepted.
	ErrUploadBadType
)

// Visitor related error codes (103xxx).
const (
	// ErrPreApprovalNotFound - 404: pre-approval not found.
	ErrPreApprovalNotFound int = iota + 103000
	// ErrArrivalNotFound - 404: visitor arrival record not found.
	ErrArrivalNotFound
	// ErrAlreadyCheckedOut - 409: departure already recorded.
	ErrAlreadyCheckedOut
)

// Maintenance related error codes (104xxx).
const (
	// ErrRequestNotFound - 404: maintenance request not found.
	ErrRequestNotFound int = iota + 104000
	// ErrInvalidRequestCategory - 400: category outside the fixed set.
	ErrInvalidRequestCategory
	// ErrInvalidPriority - 400: priority outside the fixed set.
	ErrInvalidPriority
	// ErrInvalidRating - 400: rating outside [1,5].
	ErrInvalidRating
)

// Chat related error codes (105xxx).
const (
	// ErrGroupNotFound - 404: group not found.
	ErrGroupNotFound int = iota + 105000
	// ErrMessageNotFound - 404: message not found.
	ErrMessageNotFound
	// ErrChatAlreadyExists - 409: direct message chat already exists.
	ErrChatAlreadyExists
)

// Database related error codes (106xxx).
const (
	// ErrDatabase - 500: database error.
	ErrDatabase int = iota + 106000
	// ErrRecordNotFound - 404: record not found.
	ErrRecordNotFound
)
