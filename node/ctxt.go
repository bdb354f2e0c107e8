package node

import (
	"github.com/gencore/gencam/cache"
	"github.com/gencore/gencam/ctxt"
	"github.com/gencore/gencam/value"
)

// Ctxt is ctxt.Ctxt instantiated over this package's own ID type.
type Ctxt = ctxt.Ctxt[ID]

// NewCtxt constructs a Ctxt bound to the given value and cache stores.
func NewCtxt(values value.Store, caches cache.Store[ID]) *Ctxt {
	return ctxt.New[ID](values, caches)
}
