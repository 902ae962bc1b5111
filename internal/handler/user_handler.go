/*
Package handler provides HTTP handler functions for user listing and avatar updates.
*/
package handler

import (
	"errors"
	"net/http"

	"dmchat/internal/app/attachment"
	"dmchat/internal/app/user"
	"dmchat/internal/pkg/auth/jwt"
	"dmchat/internal/pkg/errs"
	"dmchat/internal/pkg/logx"
	"dmchat/internal/pkg/req"
	"dmchat/internal/pkg/resp"
)

// HandleListUsers returns every registered user so a sender can pick a recipient.
func HandleListUsers(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := deps.Users.List(r.Context())
		if err != nil {
			logx.Error(err, "list_users: store query failed")
			resp.RespondError(w, r, errs.NewError(errs.ErrFetchUsersFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"users": users,
		})
	}
}

type UpdateAvatarInput struct {
	Image string `json:"image"`
}

// HandleUpdateAvatar replaces the authenticated user's avatar with a newly
// uploaded base64 image. The previous image is left in storage.
func HandleUpdateAvatar(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := user.ID(jwt.UserIDFromContext(r))

		var input UpdateAvatarInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		if input.Image == "" {
			resp.RespondError(w, r, errs.NewError(errs.ErrMissingFields))
			return
		}

		imageRef, err := deps.Attachments.Save(r.Context(), input.Image)
		if err != nil {
			if errors.Is(err, attachment.ErrDecode) {
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidImagePayload))
				return
			}
			logx.Error(err, "update_avatar: failed to store image", "user_id", userID)
			resp.RespondError(w, r, errs.NewError(errs.ErrAttachmentStorageFailed))
			return
		}

		updated, err := deps.Users.UpdateImage(r.Context(), userID, imageRef)
		if err != nil {
			if errors.Is(err, user.ErrNotFound) {
				logx.Warn("update_avatar: user not found", "user_id", userID)
				resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
				return
			}
			logx.Error(err, "update_avatar: store update failed", "user_id", userID)
			resp.RespondError(w, r, errs.NewError(errs.ErrAvatarUpdateFailed))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"user": updated,
		})
	}
}
