package utils

import "encoding/base64"

const passwordSalt = "travel_app_salt"

// EncodePassword produces the stored password marker. This is a reversible
// encoding, not a cryptographic hash; changing it breaks every credential
// already on disk, so it stays as-is until a migration is scheduled.
func EncodePassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password + passwordSalt))
}

func VerifyPassword(password, marker string) bool {
	return EncodePassword(password) == marker
}
