package domain

import (
	"github.com/farbarter/goapi/base/ctx"
)

type MetadataUseCase interface {
	// ResolveMetadata fetches and parses the document behind a metadata
	// pointer: a bare content id, or an ipfs://, ar://, http(s):// or data: URI.
	ResolveMetadata(c ctx.Ctx, pointer string) (*ListingMetadata, error)
}
