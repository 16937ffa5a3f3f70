// Package identity derives stable item identifiers from item content.
package identity

import (
	"crypto/md5"
	"encoding/hex"
)

// Length is the number of hex characters in an id (64 bits).
const Length = 16

// Identify returns the id of an item with the given subject, sender address
// and canonical creation time. Identical inputs always produce the same id,
// so two distinct items that share all three fields share an id.
func Identify(subject, senderEmail, creationTime string) string {
	return digest(subject + senderEmail + creationTime)
}

// Salted is Identify with a trailing salt. It is only meant for synthetic
// fixtures that must not collide; extraction always uses Identify.
func Salted(subject, senderEmail, creationTime, salt string) string {
	return digest(subject + senderEmail + creationTime + salt)
}

func digest(content string) string {
	sum := md5.Sum([]byte(content))
	return hex.EncodeToString(sum[:])[:Length]
}
