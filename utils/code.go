package utils

import (
	"math/rand"
	"strings"
)

// 0/O and 1/I left out so codes survive being read aloud.
const joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const joinCodeLength = 6

// GenerateJoinCode returns a short human-enterable group invite code.
// Uniqueness is enforced by the groups table, not here.
func GenerateJoinCode() string {
	var b strings.Builder
	b.Grow(joinCodeLength)
	for i := 0; i < joinCodeLength; i++ {
		b.WriteByte(joinCodeAlphabet[rand.Intn(len(joinCodeAlphabet))])
	}
	return b.String()
}
