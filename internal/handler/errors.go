package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGenericServerError    = "Something went wrong"
	ErrMsgUnknownError          = "Unknown error"
	ErrMsgUnavailableError      = "Server is temporarily unavailable. Please try again later."

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"

	// Domain error messages
	ErrMsgInvalidInputError     = "Invalid calculator input. Please check your values."
	ErrMsgInvalidRunStyleError  = "Unknown run style. Valid options: safe, balanced, greedy"
	ErrMsgInvalidPlaystyleError = "Unknown playstyle. Valid options: steady, combat, runner, support"
	ErrMsgClassNotFoundError    = "Class not found"
)

// Operation names used in logs
const (
	OpCalculate  = "Calculate EV"
	OpRunPlan    = "Generate run plan"
	OpUnlockPath = "Suggest unlock path"
)
