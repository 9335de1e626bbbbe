package auth

import (
	"math/rand"
	"time"
)

const otpValidity = 30 * time.Minute

// GenerateOTP returns a 5-digit one-time code and its expiry.
func GenerateOTP() (int, time.Time) {
	otp := rand.Intn(90000) + 10000
	return otp, time.Now().Add(otpValidity)
}
