package models

import (
	"encoding/binary"
	"fmt"
	"net/url"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// hasher feeds model fields into an xxhash digest. Strings are length
// prefixed so ("ab","c") and ("a","bc") hash differently.
type hasher struct {
	d   *xxhash.Digest
	buf [8]byte
}

func newHasher(kind string) *hasher {
	h := &hasher{d: xxhash.New()}
	h.str(kind)
	return h
}

func (h *hasher) u64(v uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], v)
	_, _ = h.d.Write(h.buf[:])
}

func (h *hasher) int(v int) { h.u64(uint64(v)) }

func (h *hasher) bool(v bool) {
	if v {
		h.u64(1)
		return
	}
	h.u64(0)
}

func (h *hasher) str(s string) {
	h.int(len(s))
	_, _ = h.d.WriteString(s)
}

func (h *hasher) id(id uuid.UUID) { _, _ = h.d.Write(id[:]) }

func (h *hasher) uri(u *url.URL) {
	if u == nil {
		h.str("")
		return
	}
	h.str(u.String())
}

// any hashes payloads of unknown shape. Only scalar kinds contribute their
// value; anything else contributes its dynamic type, which keeps the hash
// consistent with reflect.DeepEqual.
func (h *hasher) any(v any) {
	switch x := v.(type) {
	case nil:
		h.str("<nil>")
	case string, bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, float32, float64:
		h.str(fmt.Sprintf("%T:%v", x, x))
	default:
		h.str(fmt.Sprintf("%T", x))
	}
}

func (h *hasher) sum() uint64 { return h.d.Sum64() }

func sameURI(a, b *url.URL) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.String() == b.String()
}

func cloneURI(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
