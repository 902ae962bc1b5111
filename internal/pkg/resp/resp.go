/*
Package resp provides helpers for constructing and sending standardized HTTP JSON responses.

Every response body carries an "ok" boolean. Successful responses merge the
operation's payload fields into the body alongside ok:true; failures are always
{ok:false, error:<message>} with the error's HTTP status.
*/
package resp

import (
	"encoding/json"
	"net/http"

	"dmchat/internal/pkg/errs"
	"dmchat/internal/pkg/logx"
)

// RespondJSON is a generic response function used to set the Content-Type and send the JSON payload.
func RespondJSON(w http.ResponseWriter, r *http.Request, httpStatus int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")

	response, err := json.Marshal(payload)
	if err != nil {
		logx.Error(
			err,
			"Error encoding JSON response",
			"http_status", httpStatus,
		)

		http.Error(w, "Error encoding JSON response", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(httpStatus)
	w.Write(response)
}

// RespondSuccess sends an HTTP 200 response with ok:true and the given payload
// fields merged into the top level of the body. A nil data map yields {"ok":true}.
func RespondSuccess(w http.ResponseWriter, r *http.Request, data map[string]any) {
	body := make(map[string]any, len(data)+1)
	for k, v := range data {
		body[k] = v
	}
	body["ok"] = true

	RespondJSON(w, r, http.StatusOK, body)
}

// RespondError sends an {ok:false, error} response using the error's HTTP status.
func RespondError(w http.ResponseWriter, r *http.Request, customErr *errs.CustomError) {
	if customErr == nil {
		customErr = errs.NewError(errs.ErrUnknown)
	}

	body := map[string]any{
		"ok":    false,
		"error": customErr.Message,
	}
	RespondJSON(w, r, customErr.Status, body)
}
