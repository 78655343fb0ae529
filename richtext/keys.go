package richtext

import (
	"encoding/hex"

	"github.com/google/uuid"
)

const keyLen = 5

// RandomKey returns a short random block key.
func RandomKey() string {
	id := uuid.New()
	return hex.EncodeToString(id[:])[:keyLen]
}

func (s *State) newKey(pending ...string) string {
	gen := s.opt.NewKey
	if gen == nil {
		gen = RandomKey
	}
	for {
		if k := gen(); k != "" {
			if _, used := s.keyIndex(k); !used && !containsString(pending, k) {
				return k
			}
		}
		// A caller-supplied generator gets one try per key.
		gen = RandomKey
	}
}

func (s *State) keyIndex(key string) (int, bool) {
	for i := range s.blocks {
		if s.blocks[i].Key == key {
			return i, true
		}
	}
	return -1, false
}

func containsString(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}
