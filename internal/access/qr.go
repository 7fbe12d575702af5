// ABOUTME: Visitor access codes and QR image links
// ABOUTME: Builds deterministic URLs against an external QR image service

package access

import (
	"fmt"
	"math/rand"
	"net/url"
)

// QRLinker builds renderable QR image URLs against an external service.
// The service needs no authentication; the image is fully determined by
// the URL-encoded payload.
type QRLinker struct {
	baseURL string
}

// NewQRLinker creates a linker against the given service base URL
func NewQRLinker(baseURL string) *QRLinker {
	return &QRLinker{baseURL: baseURL}
}

// ImageURL returns the image URL for an arbitrary text payload
func (q *QRLinker) ImageURL(data string) string {
	params := url.Values{}
	params.Set("size", "150x150")
	params.Set("data", data)
	return q.baseURL + "?" + params.Encode()
}

// Payload builds the share payload embedded in a visitor QR code
func Payload(name, visitDate, code string) string {
	return fmt.Sprintf("%s - %s - %s", name, visitDate, code)
}

// NewCode generates a 5-digit numeric access code. Codes are random and
// not required to be unique across records.
func NewCode() string {
	return fmt.Sprintf("%05d", 10000+rand.Intn(90000))
}
