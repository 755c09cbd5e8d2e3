// Package qr renders the payment handoff artifact: a scannable image binding
// an order reference and amount, consumed by the payer's device to start the
// card payment out-of-band.
package qr

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Payload is the structured record encoded into the QR image. Field order is
// fixed by the struct, so the serialized form is stable for a given input.
type Payload struct {
	OrderNo    string `json:"order_no"`
	TotalCents int64  `json:"total_cents"`
	OrderType  string `json:"order_type"`
	Tables     []int  `json:"tables,omitempty"`
}

const imageSize = 256

// Encoder renders payloads as PNG data URLs.
type Encoder struct{}

func NewEncoder() *Encoder { return &Encoder{} }

// Encode serializes p and renders it as a PNG data URL. Pure function of its
// input; no stored state.
func (e *Encoder) Encode(p Payload) (dataURL string, payloadJSON string, err error) {
	raw, err := json.Marshal(p)
	if err != nil {
		return "", "", fmt.Errorf("marshal qr payload: %w", err)
	}
	png, err := qrcode.Encode(string(raw), qrcode.Medium, imageSize)
	if err != nil {
		return "", "", fmt.Errorf("encode qr image: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), string(raw), nil
}
