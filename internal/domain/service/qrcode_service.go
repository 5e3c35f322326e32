package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes that link to catalog listings
type QRCodeService interface {
	// GenerateProductQR returns a PNG QR code pointing at the product's listing
	GenerateProductQR(productID uuid.UUID) ([]byte, error)

	// ParseProductLink extracts the product ID from a scanned listing URL
	ParseProductLink(link string) (uuid.UUID, error)
}
