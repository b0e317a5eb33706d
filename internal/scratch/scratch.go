// Package scratch pools the working buffers used by the stream drivers.
//
// Driver buffers are short-lived objects: one is filled per batch of input
// lines and emptied on every flush. To avoid allocating a fresh builder for
// every accumulation cycle we keep them in an object pool.
package scratch

import (
	"context"
	"strings"

	pool "github.com/jolestar/go-commons-pool"
)

type builderPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBuilderPool *builderPool

func init() {
	globalBuilderPool = &builderPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &strings.Builder{}, nil
		})
	globalBuilderPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBuilderPool.opool = pool.NewObjectPool(globalBuilderPool.ctx, factory, config)
}

// Borrow returns an empty builder from the pool.
func Borrow() *strings.Builder {
	o, _ := globalBuilderPool.opool.BorrowObject(globalBuilderPool.ctx)
	b := o.(*strings.Builder)
	b.Reset()
	return b
}

// Release clears a builder and puts it back into the pool.
func Release(b *strings.Builder) {
	b.Reset()
	_ = globalBuilderPool.opool.ReturnObject(globalBuilderPool.ctx, b)
}
