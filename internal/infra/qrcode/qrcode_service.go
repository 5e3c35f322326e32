package qrcode

import (
	"net/url"
	"path"
	"strings"

	"handloom/config"
	"handloom/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	productPathPrefix = "/products/"
	defaultSize       = 256
)

type qrcodeService struct {
	baseURL              *url.URL
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	base, err := url.Parse(qrCfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid qrcode base url")
	}

	size := qrCfg.Size
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		baseURL:              base,
		size:                 size,
		errorCorrectionLevel: recoveryLevel(qrCfg.ErrorCorrectionLevel),
	}, nil
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// productLink builds the public listing URL for a product.
func (s *qrcodeService) productLink(productID uuid.UUID) string {
	link := *s.baseURL
	link.Path = path.Join("/", link.Path, productPathPrefix, productID.String())

	return link.String()
}

// GenerateProductQR encodes the product's listing URL as a PNG
func (s *qrcodeService) GenerateProductQR(productID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.productLink(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductLink accepts a listing URL or a bare product ID
func (s *qrcodeService) ParseProductLink(link string) (uuid.UUID, error) {
	link = strings.TrimSpace(link)
	if id, err := uuid.Parse(link); err == nil {
		return id, nil
	}

	parsed, err := url.Parse(link)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse product link")
	}

	idx := strings.LastIndex(parsed.Path, productPathPrefix)
	if idx < 0 {
		return uuid.Nil, errors.Errorf("not a product link: %s", link)
	}

	productID, err := uuid.Parse(strings.Trim(parsed.Path[idx+len(productPathPrefix):], "/"))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse product ID")
	}

	return productID, nil
}
