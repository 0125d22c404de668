package domain

import (
	"encoding/hex"

	"github.com/fxamacker/cbor/v2"
	"github.com/zeebo/blake3"
)

// HashSize is the length of a hex identity fingerprint.
const HashSize = 64

// ShortHashSize is the prefix length used for display.
const ShortHashSize = 12

// ShortHash truncates a fingerprint for display.
func ShortHash(hash string) string {
	if len(hash) <= ShortHashSize {
		return hash
	}
	return hash[:ShortHashSize]
}

// identityEncMode encodes identity tuples with Core Deterministic Encoding,
// so equal tuples always produce equal bytes.
var identityEncMode cbor.EncMode

func init() {
	var err error
	identityEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("domain: CBOR encoder initialization failed: " + err.Error())
	}
}

// fingerprint hashes an ordered tuple of strings. The tuple length is part
// of the encoding, so tuples of different arity never collide by concatenation.
func fingerprint(tuple ...string) string {
	data, err := identityEncMode.Marshal(tuple)
	if err != nil {
		// a []string cannot fail to encode
		panic("domain: identity encoding failed: " + err.Error())
	}

	hasher := blake3.New()
	_, _ = hasher.Write(data)
	return hex.EncodeToString(hasher.Sum(nil))
}

// Hash returns the identity fingerprint of the job: its timing fields and
// command. Comments, redirects and run info do not take part.
func (j *Job) Hash() string {
	var tuple []string
	if j.timing != nil {
		tuple = append(tuple, j.timing.Fields()...)
	}
	return fingerprint(append(tuple, j.command)...)
}

// Hash returns the identity fingerprint of the variable.
func (v *Variable) Hash() string {
	return fingerprint(v.name, v.value)
}
