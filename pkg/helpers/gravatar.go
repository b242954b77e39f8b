package helpers

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// GravatarURL builds the avatar URL derived from an email address:
// 200px, PG rating, identicon fallback for addresses without a gravatar.
func GravatarURL(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?s=200&r=pg&d=identicon", hex.EncodeToString(sum[:]))
}
