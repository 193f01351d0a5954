package objectid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"regexp"
)

// Length is the number of hex characters in an identifier
const Length = 24

var idPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

var randomRead = rand.Read

// New generates a new 24-character hex identifier
func New() (string, error) {
	bytes := make([]byte, Length/2)
	if _, err := randomRead(bytes); err != nil {
		return "", fmt.Errorf("failed to generate identifier: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// IsValid reports whether s is a well-formed 24-character hex identifier
func IsValid(s string) bool {
	return idPattern.MatchString(s)
}
