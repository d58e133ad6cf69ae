package core

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identifier policies selectable via configuration.
const (
	IDPolicyName   = "name"
	IDPolicyRandom = "random"
)

const idFiller = "X"

// NamePrefix derives the deterministic identifier prefix from a requester's
// full name: the first three letters of the first and last name, each padded
// with 'X' to three and uppercased. A single-word name contributes its first
// six letters, padded to six. Resubmissions by the same requester share this
// prefix, which is what the edit surcharge counts.
func NamePrefix(fullName string) string {
	names := strings.Fields(strings.ToUpper(fullName))
	if len(names) == 0 {
		return idFiller + idFiller + idFiller + idFiller + idFiller + idFiller
	}
	if len(names) == 1 {
		return padTrim(names[0], 6)
	}
	return padTrim(names[0], 3) + padTrim(names[len(names)-1], 3)
}

// padTrim slices by runes, not bytes, so names with multibyte letters keep
// producing valid UTF-8 identifiers.
func padTrim(s string, n int) string {
	runes := []rune(s)
	if len(runes) >= n {
		return string(runes[:n])
	}
	return s + strings.Repeat(idFiller, n-len(runes))
}

// NameBasedID appends the low-order four decimal digits of the Unix timestamp
// to the name prefix. Uniqueness is not guaranteed; callers must re-derive on
// collision instead of overwriting an existing record.
func NameBasedID(fullName string, now time.Time) string {
	ts := strconv.FormatInt(now.Unix(), 10)
	if len(ts) > 4 {
		ts = ts[len(ts)-4:]
	}
	return NamePrefix(fullName) + ts
}

// RandomID returns an eight-character fragment of a freshly generated UUID,
// uppercased. Under this policy identifiers share no meaningful prefix, so
// the edit surcharge never applies.
func RandomID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
