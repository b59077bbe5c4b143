package ticket

import (
	"crypto/rand"
	"encoding/hex"
	"net/url"
	"strings"
)

// TokenBytes is the entropy of a redemption token. Hex encoding doubles the length.
const TokenBytes = 18

func GenerateToken() (string, error) {
	return RandomHex(TokenBytes)
}

func RandomHex(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// RedemptionLink is the public page that renders the QR code for token.
func RedemptionLink(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/ticket.html?token=" + url.QueryEscape(token)
}
