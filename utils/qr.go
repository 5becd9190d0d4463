package utils

import (
	"encoding/base64"

	"github.com/skip2/go-qrcode"
)

// QRCodeDataURI renders content as a PNG QR and returns it inline-embeddable
// as a data URI. Medium recovery is enough for on-screen scanning.
func QRCodeDataURI(content string, size int) (string, error) {
	raw, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw), nil
}
