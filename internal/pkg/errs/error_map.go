/*
Package errs provides custom error types and application-level error code constants.

This file defines the map from error codes to the CustomError struct, used to
standardize HTTP responses and internal error handling.
*/
package errs

import "net/http"

// errorMap stores the detailed CustomError struct corresponding to every application error code.
// The key is the error code (int), and the value contains the user message and HTTP status code.
var errorMap = map[int]CustomError{
	// 1xxx: General Request Handling Errors
	ErrMissingFields:         {Code: ErrMissingFields, Message: "Missing required fields.", Status: http.StatusBadRequest},
	ErrInvalidParams:         {Code: ErrInvalidParams, Message: "Invalid request parameters.", Status: http.StatusBadRequest},
	ErrUnsupportedMediaType:  {Code: ErrUnsupportedMediaType, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrInvalidJSONFormat:     {Code: ErrInvalidJSONFormat, Message: "Unsupported request format.", Status: http.StatusBadRequest},
	ErrExtraContentInBody:    {Code: ErrExtraContentInBody, Message: "Request contains unexpected data.", Status: http.StatusBadRequest},
	ErrRequestEntityTooLarge: {Code: ErrRequestEntityTooLarge, Message: "Request size is too large.", Status: http.StatusRequestEntityTooLarge},

	// 2xxx: Message and Attachment Business Logic Errors
	ErrMessageNotFound:         {Code: ErrMessageNotFound, Message: "Message not found.", Status: http.StatusNotFound},
	ErrSendFailed:              {Code: ErrSendFailed, Message: "Failed to send message.", Status: http.StatusInternalServerError},
	ErrUnknownRecipient:        {Code: ErrUnknownRecipient, Message: "Recipient does not exist.", Status: http.StatusInternalServerError},
	ErrFetchMessagesFailed:     {Code: ErrFetchMessagesFailed, Message: "Failed to fetch messages.", Status: http.StatusInternalServerError},
	ErrDeleteMessageFailed:     {Code: ErrDeleteMessageFailed, Message: "Failed to delete message.", Status: http.StatusInternalServerError},
	ErrInvalidImagePayload:     {Code: ErrInvalidImagePayload, Message: "Image is not valid base64 data.", Status: http.StatusBadRequest},
	ErrAttachmentStorageFailed: {Code: ErrAttachmentStorageFailed, Message: "Failed to store image.", Status: http.StatusInternalServerError},

	// 3xxx: User, Session, and Security Errors
	ErrMissingToken:       {Code: ErrMissingToken, Message: "Token not provided.", Status: http.StatusUnauthorized},
	ErrInvalidToken:       {Code: ErrInvalidToken, Message: "Invalid token.", Status: http.StatusUnauthorized},
	ErrInvalidCredentials: {Code: ErrInvalidCredentials, Message: "Incorrect username or password.", Status: http.StatusUnauthorized},
	ErrInvalidUsername:    {Code: ErrInvalidUsername, Message: "Name must be alphanumeric.", Status: http.StatusBadRequest},
	ErrInvalidPassword:    {Code: ErrInvalidPassword, Message: "Password is too short.", Status: http.StatusBadRequest},
	ErrUserNotFound:       {Code: ErrUserNotFound, Message: "User not found.", Status: http.StatusNotFound},
	ErrRegisterFailed:     {Code: ErrRegisterFailed, Message: "Failed to register user.", Status: http.StatusInternalServerError},
	ErrFetchUsersFailed:   {Code: ErrFetchUsersFailed, Message: "Failed to fetch users.", Status: http.StatusInternalServerError},
	ErrAvatarUpdateFailed: {Code: ErrAvatarUpdateFailed, Message: "Failed to update avatar.", Status: http.StatusInternalServerError},

	// 5xxx: Internal System Errors
	ErrUnknown: {Code: ErrUnknown, Message: "Something went wrong. Please try again.", Status: http.StatusInternalServerError},
}
