package helper

import (
	"fmt"
	"strings"
)

// EMVCo merchant-presented QR field ids used by the Thai PromptPay scheme.
const (
	ppIDPayloadFormat       = "00"
	ppIDPointOfInitiation   = "01"
	ppIDMerchantInfo        = "29"
	ppIDCountryCode         = "58"
	ppIDCurrency            = "53"
	ppIDAmount              = "54"
	ppIDCRC                 = "63"
	ppAIDPromptPay          = "A000000677010111"
	ppCurrencyTHB           = "764"
	ppPointOfInitDynamic    = "12"
	ppMerchantSubAID        = "00"
	ppMerchantSubPhone      = "01"
	ppMerchantSubNationalID = "02"
	ppMerchantSubEWallet    = "03"
)

// BuildPromptPayPayload builds the EMV payload banking apps decode from a
// PromptPay QR. target is the receiving proxy: a Thai phone number, a
// 13-digit national id, or a 15-digit e-wallet id. amount is in THB; the
// payload is dynamic (single use) since every order carries its own amount.
func BuildPromptPayPayload(target string, amount float64) string {
	proxy := sanitizeTarget(target)

	var merchant strings.Builder
	merchant.WriteString(ppField(ppMerchantSubAID, ppAIDPromptPay))
	switch len(proxy) {
	case 15:
		merchant.WriteString(ppField(ppMerchantSubEWallet, proxy))
	case 13:
		merchant.WriteString(ppField(ppMerchantSubNationalID, proxy))
	default:
		merchant.WriteString(ppField(ppMerchantSubPhone, formatPhoneProxy(proxy)))
	}

	var b strings.Builder
	b.WriteString(ppField(ppIDPayloadFormat, "01"))
	b.WriteString(ppField(ppIDPointOfInitiation, ppPointOfInitDynamic))
	b.WriteString(ppField(ppIDMerchantInfo, merchant.String()))
	b.WriteString(ppField(ppIDCountryCode, "TH"))
	b.WriteString(ppField(ppIDCurrency, ppCurrencyTHB))
	if amount > 0 {
		b.WriteString(ppField(ppIDAmount, fmt.Sprintf("%.2f", amount)))
	}

	// CRC covers everything up to and including its own id+length.
	data := b.String() + ppIDCRC + "04"
	return data + fmt.Sprintf("%04X", crc16ccitt([]byte(data)))
}

func ppField(id, value string) string {
	return fmt.Sprintf("%s%02d%s", id, len(value), value)
}

func sanitizeTarget(target string) string {
	var digits strings.Builder
	for _, r := range target {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return digits.String()
}

// formatPhoneProxy turns a local phone number into the 13-char PromptPay
// proxy form, e.g. 0812345678 -> 0066812345678.
func formatPhoneProxy(digits string) string {
	if strings.HasPrefix(digits, "0") {
		digits = "66" + digits[1:]
	}
	return fmt.Sprintf("%013s", digits)
}

// crc16ccitt is CRC-16/CCITT-FALSE (poly 0x1021, init 0xFFFF), the checksum
// the EMV QR spec mandates.
func crc16ccitt(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
