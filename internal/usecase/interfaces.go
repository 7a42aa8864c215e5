package usecase

import (
	"time"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

// ContactSender delivers one contact notification and returns the
// provider's message identifier.
type ContactSender interface {
	SendContact(msg entity.ContactMessage) (string, error)
}

// Clock is swapped in tests to pin event timestamps.
type Clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}
