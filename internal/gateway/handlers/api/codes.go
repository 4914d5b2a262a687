package api

const (
	// Generic request/server errors
	CodeInvalidRequest = "E_INVALID_REQUEST" // bad or invalid request
	CodeRateLimited    = "E_RATE_LIMITED"    // rate limit exceeded
	CodeInternalError  = "E_INTERNAL_ERROR"  // internal server error
	CodeAccessDenied   = "E_ACCESS_DENIED"   // access denied

	// Auth errors
	CodeAuthInvalidCredentials = "E_AUTH_INVALID_CREDENTIALS" // authentication credentials (e.g., token) are invalid, expired, or malformed.

	// Lesson errors
	CodeLessonNotFound   = "E_LESSON_NOT_FOUND"   // the specified lesson could not be found.
	CodeLessonListFailed = "E_LESSON_LIST_FAILED" // a failure during the operation to list lessons.

	// Video errors
	CodeVideoUnavailable = "E_VIDEO_UNAVAILABLE" // the lesson video could not be opened for streaming.
)
