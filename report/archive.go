package report

import (
	"context"
	"fmt"

	"github.com/hupe1980/pramcost/blobstore"
	"github.com/hupe1980/pramcost/codec"
	"github.com/hupe1980/pramcost/model"
)

// Archive stores reports in a BlobStore as codec envelopes.
type Archive struct {
	store       blobstore.BlobStore
	codec       codec.Codec
	compression codec.Compression
}

// ArchiveOption configures an Archive.
type ArchiveOption func(*Archive)

// WithCodec sets the codec for new blobs. Existing blobs are always decoded
// with the codec recorded in their header.
func WithCodec(c codec.Codec) ArchiveOption {
	return func(a *Archive) {
		if c == nil {
			c = codec.Default
		}
		a.codec = c
	}
}

// WithCompression sets the compression for new blobs.
func WithCompression(c codec.Compression) ArchiveOption {
	return func(a *Archive) {
		a.compression = c
	}
}

// NewArchive creates an Archive over store. Defaults to codec.Default with
// ZSTD compression.
func NewArchive(store blobstore.BlobStore, optFns ...ArchiveOption) *Archive {
	a := &Archive{
		store:       store,
		codec:       codec.Default,
		compression: codec.CompressionZSTD,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(a)
		}
	}
	return a
}

// Name returns the conventional blob name of a single report.
func Name(r model.Report) string {
	return fmt.Sprintf("reports/n%d-p%d.pram", r.N, r.P)
}

// Save stores one report under Name(r) and returns that name.
func (a *Archive) Save(ctx context.Context, r model.Report) (string, error) {
	name := Name(r)
	return name, a.SaveAll(ctx, name, []model.Report{r})
}

// SaveAll stores a batch of reports under name.
func (a *Archive) SaveAll(ctx context.Context, name string, reports []model.Report) error {
	blob, err := codec.Encode(a.codec, a.compression, reports)
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}
	if err := a.store.Put(ctx, name, blob); err != nil {
		return fmt.Errorf("store %s: %w", name, err)
	}
	return nil
}

// Load returns the reports stored under name.
func (a *Archive) Load(ctx context.Context, name string) ([]model.Report, error) {
	blob, err := a.store.Get(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	var reports []model.Report
	if err := codec.Decode(blob, &reports); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return reports, nil
}

// List returns the names of archived blobs with the given prefix.
func (a *Archive) List(ctx context.Context, prefix string) ([]string, error) {
	return a.store.List(ctx, prefix)
}
