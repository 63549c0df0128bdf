package domain

// Error is a domain error carrying a stable machine-readable code
// alongside the human message. Handlers map codes to HTTP statuses;
// clients are expected to switch on Code, not on Message.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	// ErrInternalServerError wraps any store failure that has no more
	// specific domain meaning. Raw store errors must never leak upward.
	ErrInternalServerError = &Error{Code: "INTERNAL_SERVER_ERROR", Message: "internal server error"}

	// ErrNotFound means the requested entity does not exist.
	ErrNotFound = &Error{Code: "NOT_FOUND", Message: "your requested item is not found"}

	// ErrConflict means the entity already exists.
	ErrConflict = &Error{Code: "CONFLICT", Message: "your item already exists"}

	// ErrBadParamInput means the given request parameter is not valid.
	ErrBadParamInput = &Error{Code: "BAD_PARAM_INPUT", Message: "given param is not valid"}

	// ErrInvalidAction means a moderation action outside the allowed set.
	ErrInvalidAction = &Error{Code: "INVALID_ACTION", Message: "moderation action is not valid"}

	// ErrInvalidResolutionAction means a report resolution action outside
	// the allowed set.
	ErrInvalidResolutionAction = &Error{Code: "INVALID_RESOLUTION_ACTION", Message: "resolution action is not valid"}

	// ErrInvalidIDs means a bulk request contained no structurally valid ids.
	ErrInvalidIDs = &Error{Code: "INVALID_IDS", Message: "no valid ids in request"}

	// ErrAlreadyReported means this reporter already filed a report for
	// the same target.
	ErrAlreadyReported = &Error{Code: "ALREADY_REPORTED", Message: "you have already reported this content"}

	// ErrReportAlreadyResolved means the report reached a terminal status.
	ErrReportAlreadyResolved = &Error{Code: "REPORT_ALREADY_RESOLVED", Message: "report has already been resolved"}

	// ErrTargetNotFound means a report references a nonexistent entity.
	ErrTargetNotFound = &Error{Code: "TARGET_NOT_FOUND", Message: "reported target does not exist"}

	// ErrForbidden means the user has no permission for the action.
	ErrForbidden = &Error{Code: "FORBIDDEN", Message: "you have no permission for this action"}
)
