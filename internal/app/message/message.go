/*
Package message implements the message store: direct messages addressed by
recipient identity, with optional image attachments.
*/
package message

import "dmchat/internal/app/user"

// ID is the opaque identifier of a stored message.
type ID string

func (id ID) String() string {
	return string(id)
}

// Message is a stored direct message. SentAt is an ISO-8601 timestamp string
// assigned by the server at the moment of persistence.
type Message struct {
	ID       ID      `json:"id"`
	From     user.ID `json:"from"`
	To       user.ID `json:"to"`
	Body     string  `json:"message"`
	ImageRef string  `json:"image,omitempty"`
	SentAt   string  `json:"sent"`
}

// Sender is the resolved display identity of a message author.
type Sender struct {
	ID       user.ID `json:"id"`
	Name     string  `json:"name"`
	ImageRef string  `json:"image"`
}

// Received is a message as seen in a recipient's inbox, with the sender
// reference expanded to their name and avatar at read time.
type Received struct {
	ID       ID      `json:"id"`
	From     Sender  `json:"from"`
	To       user.ID `json:"to"`
	Body     string  `json:"message"`
	ImageRef string  `json:"image,omitempty"`
	SentAt   string  `json:"sent"`
}
