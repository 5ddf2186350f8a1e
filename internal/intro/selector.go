package intro

import (
	"crypto/md5" // #nosec G501 -- selection seed, not a security boundary
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/zeebo/blake3"
)

// Choice indexes the fragment tables. Local is -1 when the chosen frame does
// not use a local context bit.
type Choice struct {
	Hook  int
	Frame int
	Local int
}

// Selector maps a slug to a fragment Choice. Implementations must be pure.
type Selector interface {
	Name() string
	Select(slug string) Choice
}

const (
	SelectorMD5    = "md5"
	SelectorBlake3 = "blake3"
)

// SelectorNames lists the accepted selector names.
func SelectorNames() []string {
	return []string{SelectorMD5, SelectorBlake3}
}

// NewSelector returns the selector registered under name ("" means md5).
func NewSelector(name string) (Selector, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", SelectorMD5:
		return MD5Selector{}, nil
	case SelectorBlake3:
		return Blake3Selector{}, nil
	default:
		return nil, fmt.Errorf("unknown intro selector %q (valid: %s)", name, strings.Join(SelectorNames(), ", "))
	}
}

// localShift is the bit shift used to pick the local bit for each frame.
var localShift = [len(frames)]int{3, 4, -1, 2}

// MD5Selector reads the MD5 digest of the slug as one big-endian integer h
// and derives every index from it: hook h%8, frame (h>>1)%4 and the local
// bit from a frame-specific shift. It reproduces intros generated earlier
// with the same scheme.
type MD5Selector struct{}

func (MD5Selector) Name() string { return SelectorMD5 }

func (MD5Selector) Select(slug string) Choice {
	sum := md5.Sum([]byte(slug)) // #nosec G401
	// Every modulus is a power of two no larger than 8 and every shift is
	// below 8, so the low 64 bits determine the result.
	h := binary.BigEndian.Uint64(sum[8:])

	frame := int((h >> 1) % uint64(len(frames)))
	local := -1
	if shift := localShift[frame]; shift >= 0 {
		local = int((h >> uint(shift)) % uint64(len(localBits)))
	}
	return Choice{
		Hook:  int(h % uint64(len(hooks))),
		Frame: frame,
		Local: local,
	}
}

// Blake3Selector hashes the slug once per table, so the indexes are
// independent of each other.
type Blake3Selector struct{}

func (Blake3Selector) Name() string { return SelectorBlake3 }

func (Blake3Selector) Select(slug string) Choice {
	frame := blake3Index(slug, "frame", len(frames))
	local := -1
	if frames[frame].usesLocal {
		local = blake3Index(slug, "local", len(localBits))
	}
	return Choice{
		Hook:  blake3Index(slug, "hook", len(hooks)),
		Frame: frame,
		Local: local,
	}
}

func blake3Index(slug, table string, n int) int {
	h := blake3.New()
	_, _ = h.Write([]byte(slug))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(table))
	sum := h.Sum(nil)
	return int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
}
