package utils

import (
	"math/rand"
	"strings"
)

const joinCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// JoinCodeLength is the fixed length of tournament join codes.
const JoinCodeLength = 6

// GenerateJoinCode returns a random 6-character code of uppercase letters
// and digits. Uniqueness across tournaments is the caller's job.
func GenerateJoinCode() string {
	var b strings.Builder
	b.Grow(JoinCodeLength)
	for i := 0; i < JoinCodeLength; i++ {
		b.WriteByte(joinCodeAlphabet[rand.Intn(len(joinCodeAlphabet))])
	}
	return b.String()
}
