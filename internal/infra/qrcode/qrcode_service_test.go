package qrcode

import (
	"testing"

	"handloom/config"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, baseURL string) *qrcodeService {
	t.Helper()

	svc, err := NewQRCodeService(&config.Config{QRCode: &config.QRCodeConfig{
		Size:                 128,
		ErrorCorrectionLevel: "H",
		BaseURL:              baseURL,
	}})
	require.NoError(t, err)

	return svc.(*qrcodeService)
}

func TestRecoveryLevel(t *testing.T) {
	assert.Equal(t, qrcode.Low, recoveryLevel("L"))
	assert.Equal(t, qrcode.Medium, recoveryLevel("m"))
	assert.Equal(t, qrcode.High, recoveryLevel("Q"))
	assert.Equal(t, qrcode.Highest, recoveryLevel("H"))
	assert.Equal(t, qrcode.Medium, recoveryLevel("invalid"))
}

func TestQRCodeService_GenerateProductQR(t *testing.T) {
	svc := newTestService(t, "https://handloom.example")

	pngBytes, err := svc.GenerateProductQR(uuid.New())
	require.NoError(t, err)
	require.Greater(t, len(pngBytes), 4)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, pngBytes[:4])
}

func TestQRCodeService_ProductLinkRoundTrip(t *testing.T) {
	svc := newTestService(t, "https://handloom.example/shop/")
	productID := uuid.New()

	link := svc.productLink(productID)
	assert.Equal(t, "https://handloom.example/shop/products/"+productID.String(), link)

	parsed, err := svc.ParseProductLink(link)
	require.NoError(t, err)
	assert.Equal(t, productID, parsed)
}

func TestQRCodeService_ParseProductLink(t *testing.T) {
	svc := newTestService(t, "")
	productID := uuid.New()

	tests := []struct {
		name    string
		link    string
		wantErr bool
	}{
		{name: "bare id", link: productID.String()},
		{name: "relative link", link: "/products/" + productID.String()},
		{name: "trailing slash", link: "https://x.test/products/" + productID.String() + "/"},
		{name: "other path", link: "https://x.test/groups/" + productID.String(), wantErr: true},
		{name: "bad id", link: "https://x.test/products/not-a-uuid", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseProductLink(tt.link)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, productID, got)
		})
	}
}
