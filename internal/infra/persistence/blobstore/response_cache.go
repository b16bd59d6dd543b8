// Package blobstore persists the isochrone response map as one blob in a
// gocloud.dev bucket (local directory, memory, S3 or GCS).
package blobstore

import (
	"cmp"
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"walkroute/config"
	"walkroute/internal/domain/entity"
	domainerrors "walkroute/internal/domain/errors"
	"walkroute/internal/domain/repository"
	"walkroute/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
	"gocloud.dev/gcerrors"
)

const blobFormatVersion = 1

type blobDocument struct {
	Version int         `json:"version"`
	Entries []blobEntry `json:"entries"`
}

type blobEntry struct {
	Lng      float64         `json:"lng"`
	Lat      float64         `json:"lat"`
	Minutes  float64         `json:"minutes"`
	Response json.RawMessage `json:"response"`
}

type responseCache struct {
	bucket *blob.Bucket
	key    string
	logger *slog.Logger
}

// NewResponseCache creates a ResponseCache storing the whole map under key.
func NewResponseCache(bucket *blob.Bucket, key string, logger *slog.Logger) repository.ResponseCache {
	return &responseCache{
		bucket: bucket,
		key:    key,
		logger: logger,
	}
}

// Load reads and decodes the response map. A missing blob is an empty cache.
func (c *responseCache) Load(ctx context.Context) (repository.ResponseMap, error) {
	data, err := c.bucket.ReadAll(ctx, c.key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		c.logger.Debug("Response cache does not exist yet", slog.String("key", c.key))

		return repository.ResponseMap{}, nil
	}
	if err != nil {
		return nil, domainerrors.NewStorageError("load", errors.Wrapf(err, "read blob %s", c.key))
	}

	var doc blobDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, domainerrors.NewStorageError("load", errors.Wrapf(err, "decode blob %s", c.key))
	}
	if doc.Version != blobFormatVersion {
		return nil, domainerrors.NewStorageError("load", errors.Errorf("unsupported cache format version %d", doc.Version))
	}

	responses := make(repository.ResponseMap, len(doc.Entries))
	for _, entry := range doc.Entries {
		key := entity.NewRequestKey(
			entity.Location{Lng: entry.Lng, Lat: entry.Lat},
			entity.DurationMinutes(entry.Minutes),
		)
		responses[key] = repository.CachedResponse(entry.Response)
	}

	c.logger.Debug("Response cache loaded",
		slog.Int("entries", len(responses)),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return responses, nil
}

// Save overwrites the blob with the full response map.
func (c *responseCache) Save(ctx context.Context, responses repository.ResponseMap) error {
	doc := blobDocument{
		Version: blobFormatVersion,
		Entries: make([]blobEntry, 0, len(responses)),
	}
	for key, resp := range responses {
		doc.Entries = append(doc.Entries, blobEntry{
			Lng:      key.Location.Lng,
			Lat:      key.Location.Lat,
			Minutes:  float64(key.Minutes),
			Response: json.RawMessage(resp),
		})
	}

	// Stable ordering keeps identical maps byte-identical on disk.
	slices.SortFunc(doc.Entries, func(a, b blobEntry) int {
		return cmp.Or(
			cmp.Compare(a.Lng, b.Lng),
			cmp.Compare(a.Lat, b.Lat),
			cmp.Compare(a.Minutes, b.Minutes),
		)
	})

	data, err := json.Marshal(doc)
	if err != nil {
		return domainerrors.NewStorageError("save", errors.Wrap(err, "encode response map"))
	}

	if err := c.bucket.WriteAll(ctx, c.key, data, &blob.WriterOptions{ContentType: "application/json"}); err != nil {
		return domainerrors.NewStorageError("save", errors.Wrapf(err, "write blob %s", c.key))
	}

	c.logger.Debug("Response cache saved",
		slog.Int("entries", len(doc.Entries)),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return nil
}

// Open opens a file://, mem://, s3:// or gs:// bucket URL.
func Open(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open cache bucket %s", bucketURL)
	}

	return bucket, nil
}

// BucketParams holds dependencies for opening the cache bucket, injected by Fx
type BucketParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// OpenBucket opens the configured bucket and closes it on shutdown.
func OpenBucket(params BucketParams) (*blob.Bucket, error) {
	bucketURL := params.Config.Cache.BucketURL

	bucket, err := Open(params.Ctx, bucketURL)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Response cache bucket opened", slog.String("url", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing response cache bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return bucket, nil
}

// Module provides the blob-backed response cache
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		OpenBucket,
		func(bucket *blob.Bucket, cfg *config.Config, logger *slog.Logger) repository.ResponseCache {
			return NewResponseCache(bucket, cfg.Cache.Key, logger)
		},
	),
)
