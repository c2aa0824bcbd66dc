package common

import (
	"regexp"
	"strings"
)

const (
	MaxClientIDLength = 64
	MaxMediaKeyLength = 512
)

var clientIDRegex = regexp.MustCompile(`^[A-Za-z0-9._:\-]+$`)

// ValidateClientID accepts an empty id (the hub mints one) or a short token
// without whitespace.
func ValidateClientID(cid string) error {
	if cid == "" {
		return nil
	}
	if len(cid) > MaxClientIDLength {
		return Invalid("cid must be at most %d characters", MaxClientIDLength)
	}
	if !clientIDRegex.MatchString(cid) {
		return Invalid("cid may only contain letters, digits and . _ : -")
	}
	return nil
}

func ValidateMediaKey(key string) error {
	if len(key) > MaxMediaKeyLength {
		return Invalid("mediaKey must be at most %d characters", MaxMediaKeyLength)
	}
	if key != "" && strings.TrimSpace(key) != key {
		return Invalid("mediaKey must not have surrounding whitespace")
	}
	return nil
}
