package generator

import "encoding/base64"

// Codec turns embedded file bytes into text safe for a Swift string literal.
type Codec interface {
	// Encode returns the textual form of data.
	Encode(data []byte) string
	// Name returns the codec name.
	Name() string
}

// Base64Codec encodes with standard, padded base64.
type Base64Codec struct{}

// Encode implements Codec.
func (Base64Codec) Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// Name implements Codec.
func (Base64Codec) Name() string {
	return "base64"
}
