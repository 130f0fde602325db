package domain

import (
	"github.com/farbarter/goapi/base/ctx"
)

type WebResourceUseCase interface {
	// Get reads the resource a pointer names: a bare content id, or an
	// ipfs://, ar://, http(s):// or data: uri.
	Get(ctx.Ctx, string) ([]byte, error)
	// GetJson is Get that also fails with ErrInvalidJsonFormat on non json bodies.
	GetJson(ctx.Ctx, string) ([]byte, error)
}

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}
