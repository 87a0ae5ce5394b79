package checkout

import "crypto/rand"

const trackingAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewTrackingNumber returns an opaque carrier code such as "RU4F8K2Q9ZX".
// The "RU" prefix marks the carrier region; the suffix carries no meaning
// and uniqueness is best-effort only.
func NewTrackingNumber() string {
	suffix := make([]byte, 9)
	if _, err := rand.Read(suffix); err != nil {
		return "RU000000000"
	}
	for i, b := range suffix {
		suffix[i] = trackingAlphabet[int(b)%len(trackingAlphabet)]
	}
	return "RU" + string(suffix)
}
