/*
Package randx provides generation of collision-resistant identifiers.

It is used to name stored attachment objects so that concurrent uploads never
overwrite each other.
*/
package randx

import "github.com/google/uuid"

// AttachmentName generates a random object name for a stored attachment.
// The name is a standard UUID v4 string, not derived from the content.
func AttachmentName() string {
	return uuid.New().String()
}
