package handler

import (
	"dmchat/internal/app/attachment"
	"dmchat/internal/app/message"
	"dmchat/internal/app/user"
	"dmchat/internal/configs"
)

// AppDeps bundles the stores and configuration shared by all handlers.
// It is constructed once at startup; handlers never reach for globals.
type AppDeps struct {
	Config      *configs.AppConfig
	Users       user.Store
	Messages    message.Store
	Attachments *attachment.Store
}
