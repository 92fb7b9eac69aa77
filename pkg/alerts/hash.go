package alerts

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"
)

// GenerateHash derives the client side alert identifier from the creation second
// and the alert attributes.
func GenerateHash(prefix string, userID string, symbol string, priceLevel float64, now time.Time) string {
	hasher := sha256.New()
	hasher.Write([]byte(strconv.FormatInt(now.Unix(), 10)))
	hasher.Write([]byte(userID))
	hasher.Write([]byte(symbol))
	hasher.Write([]byte(strconv.FormatFloat(priceLevel, 'f', -1, 64)))
	return prefix + hex.EncodeToString(hasher.Sum(nil))
}
