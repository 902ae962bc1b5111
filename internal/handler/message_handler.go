/*
Package handler provides HTTP handler functions for the message lifecycle:
send, list by recipient, and delete.
*/
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dmchat/internal/app/attachment"
	"dmchat/internal/app/message"
	"dmchat/internal/app/user"
	"dmchat/internal/pkg/auth/jwt"
	"dmchat/internal/pkg/errs"
	"dmchat/internal/pkg/logx"
	"dmchat/internal/pkg/req"
	"dmchat/internal/pkg/resp"
)

type SendMessageInput struct {
	To      string `json:"to"`
	Message string `json:"message"`
	Image   string `json:"image,omitempty"`
}

// HandleSendMessage persists a new message from the authenticated user,
// storing the optional image attachment first.
func HandleSendMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		from := user.ID(jwt.UserIDFromContext(r))

		var input SendMessageInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.To == "" || input.Message == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMissingFields))
			return
		}

		imageRef := ""
		if input.Image != "" {
			ref, err := deps.Attachments.Save(r.Context(), input.Image)
			if err != nil {
				if errors.Is(err, attachment.ErrDecode) {
					resp.RespondError(w, r, errs.NewError(errs.ErrInvalidImagePayload))
					return
				}
				logx.Error(err, "send_message: failed to store attachment", "from", from)
				resp.RespondError(w, r, errs.NewError(errs.ErrAttachmentStorageFailed))
				return
			}
			imageRef = ref
		}

		msg, err := deps.Messages.Create(r.Context(), from, user.ID(input.To), input.Message, imageRef)
		if err != nil {
			switch {
			case errors.Is(err, message.ErrEmptyBody):
				resp.RespondError(w, r, errs.NewError(errs.ErrMissingFields))
			case errors.Is(err, message.ErrUnknownRecipient):
				logx.Warn("send_message: unknown recipient", "from", from, "to", input.To)
				resp.RespondError(w, r, errs.NewError(errs.ErrUnknownRecipient))
			default:
				logx.Error(err, "send_message: store create failed", "from", from)
				resp.RespondError(w, r, errs.NewError(errs.ErrSendFailed))
			}
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"newMessage": msg,
		})
	}
}

// HandleListMessages returns every message addressed to the user id in the URL,
// with each sender resolved to their name and avatar.
func HandleListMessages(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recipient := user.ID(chi.URLParam(r, "id"))

		messages, err := deps.Messages.ListByRecipient(r.Context(), recipient)
		if err != nil {
			logx.Error(err, "list_messages: store query failed", "recipient", recipient)
			resp.RespondError(w, r, errs.NewError(errs.ErrFetchMessagesFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"messages": messages,
		})
	}
}

// HandleDeleteMessage removes a single message by id. Only the sender or the
// recipient may delete it; anyone else sees the same 404 as a missing id.
func HandleDeleteMessage(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requester := user.ID(jwt.UserIDFromContext(r))
		messageID := message.ID(chi.URLParam(r, "id"))

		err := deps.Messages.Delete(r.Context(), messageID, requester)
		if err != nil {
			if errors.Is(err, message.ErrNotFound) {
				resp.RespondError(w, r, errs.NewError(errs.ErrMessageNotFound))
				return
			}
			logx.Error(err, "delete_message: store delete failed", "message_id", messageID)
			resp.RespondError(w, r, errs.NewError(errs.ErrDeleteMessageFailed))
			return
		}

		resp.RespondSuccess(w, r, nil)
	}
}
