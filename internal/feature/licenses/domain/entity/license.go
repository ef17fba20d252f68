// Package entity defines the domain entities for the licenses feature.
package entity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// StatusActive is the status assigned to every newly issued license. No
// operation in this backend flips a license to another status; the field
// exists so an external process can revoke licenses in place.
const StatusActive = "active"

// License grants a user access to one purchased product.
// At most one license exists per (userId, productId), regardless of status.
type License struct {
	LicenseKey    string    `json:"licenseKey"`
	UserID        int       `json:"userId"`
	ProductID     string    `json:"productId"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	UsesRemaining int       `json:"usesRemaining"`
	Created       time.Time `json:"created"`
	Status        string    `json:"status"`
}

// LicenseDocument is the persisted shape of the license document.
type LicenseDocument struct {
	Licenses []License `json:"licenses"`
}

// OrderItem is one purchased product in a license issuance request.
type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// NewLicenseKey generates an opaque unique license key: 16 cryptographically
// random bytes rendered as 32 uppercase hex characters.
func NewLicenseKey() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate license key: %w", err)
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}
