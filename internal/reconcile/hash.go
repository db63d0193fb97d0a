package reconcile

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/bolao/internal/money"
)

const hashLen = 32

// Hash identifies a statement line within a pool. It is derived from the day,
// the amount and the original description, case-insensitively.
func Hash(date time.Time, cents int64, description string) string {
	key := date.Format(time.DateOnly) + "-" + money.String(cents) + "-" + description
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(key))))

	return hex.EncodeToString(sum[:])[:hashLen]
}
