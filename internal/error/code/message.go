package code

// Error code to client-facing message mapping
var codeMessageMap = map[int]string{
	// Generic
	ErrSuccess:         "Success",
	ErrUnknown:         "An unexpected error occurred",
	ErrBind:            "Invalid request parameters",
	ErrValidation:      "Request validation failed",
	ErrTokenMissing:    "Authorization token not found.",
	ErrTokenInvalid:    "Invalid authorization token.",
	ErrForbidden:       "You are not authorized to perform this action.",
	ErrTooManyRequests: "Too many requests, please try again later",

	// Users
	ErrUserNotFound:       "User not found.",
	ErrUserAlreadyExist:   "Mobile number or apartment number already registered.",
	ErrInvalidCredentials: "Invalid credentials.",

	// Notices
	ErrNoticeNotFound:        "Notice not found.",
	ErrInvalidNoticeCategory: "Invalid notice category.",
	ErrUploadTooLarge:        "Uploaded file exceeds the size limit.",
	ErrUploadBadType:         "Uploaded file type is not accepted.",

	// Visitors
	ErrPreApprovalNotFound: "Pre-approval not found.",
	ErrArrivalNotFound:     "Visitor arrival record not found.",
	ErrAlreadyCheckedOut:   "Visitor has already been checked out.",

	// Maintenance
	ErrRequestNotFound:        "Maintenance request not found.",
	ErrInvalidRequestCategory: "Invalid category.",
	ErrInvalidPriority:        "Invalid priority.",
	ErrInvalidRating:          "Rating is required and must be between 1 and 5.",

	// Chat
	ErrGroupNotFound:     "Group not found.",
	ErrMessageNotFound:   "Message not found.",
	ErrChatAlreadyExists: "Direct message chat already exists.",

	// Database
	ErrDatabase:       "A database error occurred",
	ErrRecordNotFound: "Record not found.",
}

// Error code to HTTP status mapping
var codeStatusMap = map[int]int{
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenMissing:    StatusUnauthorized,
	ErrTokenInvalid:    StatusForbidden,
	ErrForbidden:       StatusForbidden,
	ErrTooManyRequests: StatusTooManyRequests,

	ErrUserNotFound:       StatusNotFound,
	ErrUserAlreadyExist:   StatusConflict,
	ErrInvalidCredentials: StatusUnauthorized,

	ErrNoticeNotFound:        StatusNotFound,
	ErrInvalidNoticeCategory: StatusBadRequest,
	ErrUploadTooLarge:        StatusBadRequest,
	ErrUploadBadType:         StatusBadRequest,

	ErrPreApprovalNotFound: StatusNotFound,
	ErrArrivalNotFound:     StatusNotFound,
	ErrAlreadyCheckedOut:   StatusConflict,

	ErrRequestNotFound:        StatusNotFound,
	ErrInvalidRequestCategory: StatusBadRequest,
	ErrInvalidPriority:        StatusBadRequest,
	ErrInvalidRating:          StatusBadRequest,

	ErrGroupNotFound:     StatusNotFound,
	ErrMessageNotFound:   StatusNotFound,
	ErrChatAlreadyExists: StatusConflict,

	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage returns the message for an error code
func GetMessage(errorCode int) string {
	if message, ok := codeMessageMap[errorCode]; ok {
		return message
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus returns the HTTP status for an error code
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
