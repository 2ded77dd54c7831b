package payment

import (
	"errors"
	"fmt"
	"net/url"

	"brewvoice/models"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// UPIGenerator renders the payment artifact for a placed order: the UPI
// deep link for the configured payee plus its QR code image.
type UPIGenerator struct {
	UPIID     string
	PayeeName string
	Logger    *zap.Logger
}

func NewUPIGenerator(upiID, payeeName string, logger *zap.Logger) *UPIGenerator {
	return &UPIGenerator{UPIID: upiID, PayeeName: payeeName, Logger: logger}
}

// Link builds the upi://pay deep link for the given total in INR.
func (g *UPIGenerator) Link(total int) string {
	params := url.Values{}
	params.Set("pa", g.UPIID)
	params.Set("pn", g.PayeeName)
	params.Set("am", fmt.Sprintf("%d", total))
	params.Set("cu", "INR")
	return "upi://pay?" + params.Encode()
}

// Render produces the artifact for a positive total. QR encoding failures
// are logged and returned; callers treat them as non-fatal.
func (g *UPIGenerator) Render(total int) (*models.PaymentArtifact, error) {
	if total <= 0 {
		return nil, errors.New("total must be positive")
	}
	link := g.Link(total)
	png, err := qrcode.Encode(link, qrcode.Medium, 256)
	if err != nil {
		g.Logger.Error("failed to encode payment QR", zap.Int("total", total), zap.Error(err))
		return nil, fmt.Errorf("failed to encode payment QR: %w", err)
	}
	return &models.PaymentArtifact{Total: total, UPILink: link, PNG: png}, nil
}
