package utils

import (
	"time"

	hashids "github.com/speps/go-hashids/v2"
)

// NewReferenceGenerator builds a generator for short human-facing reference
// codes attached to deposits and withdrawals. The owner id and the timestamp
// are encoded as separate numbers, so codes for different users can never
// collide even when generated in the same second.
func NewReferenceGenerator(salt string) (*ReferenceGenerator, error) {
	hd := hashids.NewData()
	hd.Salt = salt
	hd.MinLength = 10
	h, err := hashids.NewWithData(hd)
	if err != nil {
		return nil, err
	}
	return &ReferenceGenerator{h: h}, nil
}

type ReferenceGenerator struct {
	h *hashids.HashID
}

func (g *ReferenceGenerator) Generate(owner int64) (string, error) {
	return g.h.EncodeInt64([]int64{owner, time.Now().UnixNano()})
}
