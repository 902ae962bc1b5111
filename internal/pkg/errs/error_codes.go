/*
Package errs provides custom error types and application-level error code constants.

These error codes identify specific business or system errors both internally
within the server and in communication with clients.
*/
package errs

// 1xxx: General Request Handling Errors
const (
	// ErrMissingFields indicates that one or more required request fields are absent.
	ErrMissingFields = 1001

	// ErrInvalidParams indicates that request parameter validation failed.
	ErrInvalidParams = 1002

	// ErrUnsupportedMediaType indicates that the request header Content-Type is not supported.
	ErrUnsupportedMediaType = 1003

	// ErrInvalidJSONFormat indicates that the request body JSON is malformed.
	ErrInvalidJSONFormat = 1004

	// ErrExtraContentInBody indicates that the request body contained extra content after valid JSON data.
	ErrExtraContentInBody = 1005

	// ErrRequestEntityTooLarge indicates that the request body size exceeded the server limit.
	ErrRequestEntityTooLarge = 1006
)

// 2xxx: Message and Attachment Business Logic Errors
const (
	// ErrMessageNotFound indicates that no message exists with the requested id.
	ErrMessageNotFound = 2101

	// ErrSendFailed indicates that persisting a new message failed.
	ErrSendFailed = 2102

	// ErrUnknownRecipient indicates that the message recipient does not reference an existing user.
	ErrUnknownRecipient = 2103

	// ErrFetchMessagesFailed indicates that reading a recipient's messages failed.
	ErrFetchMessagesFailed = 2104

	// ErrDeleteMessageFailed indicates that removing a message failed.
	ErrDeleteMessageFailed = 2105

	// ErrInvalidImagePayload indicates that an image field was not valid base64 data.
	ErrInvalidImagePayload = 2201

	// ErrAttachmentStorageFailed indicates that writing an attachment to storage failed.
	ErrAttachmentStorageFailed = 2202
)

// 3xxx: User, Session, and Security Errors
const (
	// ErrMissingToken indicates that the Authorization header carried no token.
	ErrMissingToken = 3001

	// ErrInvalidToken indicates that the provided token is malformed, forged, or expired.
	ErrInvalidToken = 3002

	// ErrInvalidCredentials indicates that no user matched the supplied name and password.
	ErrInvalidCredentials = 3003

	// ErrInvalidUsername indicates that the user name failed the alphanumeric format check.
	ErrInvalidUsername = 3004

	// ErrInvalidPassword indicates that the password failed the length constraint.
	ErrInvalidPassword = 3005

	// ErrUserNotFound indicates that the referenced user account does not exist.
	ErrUserNotFound = 3006

	// ErrRegisterFailed indicates that creating the user record failed (including duplicate names).
	ErrRegisterFailed = 3101

	// ErrFetchUsersFailed indicates that listing user records failed.
	ErrFetchUsersFailed = 3102

	// ErrAvatarUpdateFailed indicates that updating the user's avatar reference failed.
	ErrAvatarUpdateFailed = 3103
)

// 5xxx: Internal System Errors
const (
	// ErrUnknown represents an unclassified, general server internal error.
	ErrUnknown = 5000
)
