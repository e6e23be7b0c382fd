package facet

import (
	"github.com/cespare/xxhash/v2"
	"github.com/matst80/slask-storefront/pkg/types"
)

var separator = []byte{0}

// fingerprint hashes the fields of a flat category list that affect the
// built tree.
func fingerprint(categories []types.Category) uint64 {
	h := xxhash.New()
	for _, c := range categories {
		for _, s := range []string{c.Id, c.Name, c.Slug, c.ParentId, c.Image, c.Description} {
			h.WriteString(s)
			h.Write(separator)
		}
		h.Write(separator)
	}
	return h.Sum64()
}
