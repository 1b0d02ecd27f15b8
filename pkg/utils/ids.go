package utils

import (
	"math/rand"
	"strconv"
	"time"
)

// GenerateID returns a short sortable id: millisecond timestamp in base36
// plus a random suffix.
func GenerateID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + strconv.FormatInt(rand.Int63n(1<<40), 36)
}
