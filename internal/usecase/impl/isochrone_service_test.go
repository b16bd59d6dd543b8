package impl

import (
	"context"
	"net/http"
	"testing"

	"walkroute/config"
	"walkroute/internal/domain/entity"
	domainerrors "walkroute/internal/domain/errors"
	"walkroute/internal/domain/repository"
	"walkroute/internal/infra/geometry"
	"walkroute/internal/infra/persistence/blobstore"
	mockRepo "walkroute/internal/mocks/repository"
	mockService "walkroute/internal/mocks/service"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestIsochroneService_Resolve_MissFetchesAndCaches(t *testing.T) {
	mockCache := mockRepo.NewMockResponseCache(t)
	mockProvider := mockService.NewMockIsochroneProvider(t)
	service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(), nil, newTestLogger())

	ctx := context.Background()
	key := entity.NewRequestKey(concon, 5)

	mockCache.EXPECT().Load(ctx).Return(repository.ResponseMap{}, nil).Twice()
	mockProvider.EXPECT().
		FetchIsochrone(ctx, concon, entity.DurationMinutes(5)).
		Return([]byte(isochroneJSON), nil).
		Once()
	mockCache.EXPECT().
		Save(ctx, mock.MatchedBy(func(m repository.ResponseMap) bool {
			raw, ok := m.Get(key)

			return ok && len(m) == 1 && string(raw) == isochroneJSON
		})).
		Return(nil).
		Once()

	polygon, err := service.Resolve(ctx, concon, 5)
	require.NoError(t, err)
	require.Len(t, polygon, 1)
	assert.Len(t, polygon[0], 5)
}

func TestIsochroneService_Resolve_HitSkipsProvider(t *testing.T) {
	mockCache := mockRepo.NewMockResponseCache(t)
	mockProvider := mockService.NewMockIsochroneProvider(t)
	service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(), nil, newTestLogger())

	ctx := context.Background()
	mockCache.EXPECT().
		Load(ctx).
		Return(repository.ResponseMap{
			entity.NewRequestKey(concon, 5): repository.CachedResponse(isochroneJSON),
		}, nil).
		Once()

	polygon, err := service.Resolve(ctx, concon, 5)
	require.NoError(t, err)
	assert.Len(t, polygon[0], 5)

	mockProvider.AssertNotCalled(t, "FetchIsochrone", mock.Anything, mock.Anything, mock.Anything)
	mockCache.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestIsochroneService_Resolve_HitDecodesThroughCodec(t *testing.T) {
	mockCache := mockRepo.NewMockResponseCache(t)
	mockProvider := mockService.NewMockIsochroneProvider(t)
	mockCodec := mockService.NewMockGeometryCodec(t)
	service := NewIsochroneService(mockCache, mockProvider, mockCodec, nil, newTestLogger())

	ctx := context.Background()
	raw := repository.CachedResponse(`{"cached":true}`)
	want := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}

	mockCache.EXPECT().
		Load(ctx).
		Return(repository.ResponseMap{entity.NewRequestKey(concon, 5): raw}, nil).
		Once()
	mockCodec.EXPECT().DecodePolygon([]byte(raw)).Return(want, nil).Once()

	polygon, err := service.Resolve(ctx, concon, 5)
	require.NoError(t, err)
	assert.Equal(t, want, polygon)
}

func TestIsochroneService_Resolve_KeepsEntriesWrittenSinceFirstLoad(t *testing.T) {
	mockCache := mockRepo.NewMockResponseCache(t)
	mockProvider := mockService.NewMockIsochroneProvider(t)
	service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(), nil, newTestLogger())

	ctx := context.Background()
	other := entity.NewRequestKey(entity.Location{Lng: 2.35, Lat: 48.85}, 15)

	mockCache.EXPECT().Load(ctx).Return(repository.ResponseMap{}, nil).Once()
	mockProvider.EXPECT().
		FetchIsochrone(ctx, concon, entity.DurationMinutes(5)).
		Return([]byte(isochroneJSON), nil).
		Once()
	mockCache.EXPECT().
		Load(ctx).
		Return(repository.ResponseMap{other: repository.CachedResponse(`{}`)}, nil).
		Once()
	mockCache.EXPECT().
		Save(ctx, mock.MatchedBy(func(m repository.ResponseMap) bool {
			_, hasOther := m.Get(other)
			_, hasNew := m.Get(entity.NewRequestKey(concon, 5))

			return hasOther && hasNew
		})).
		Return(nil).
		Once()

	_, err := service.Resolve(ctx, concon, 5)
	require.NoError(t, err)
}

func TestIsochroneService_Resolve_FractionalMinutesAreExactKeys(t *testing.T) {
	mockCache := mockRepo.NewMockResponseCache(t)
	mockProvider := mockService.NewMockIsochroneProvider(t)
	service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(), nil, newTestLogger())

	ctx := context.Background()
	cached := repository.ResponseMap{
		entity.NewRequestKey(concon, 7.5): repository.CachedResponse(isochroneJSON),
	}

	mockCache.EXPECT().Load(ctx).Return(cached, nil)
	mockProvider.EXPECT().
		FetchIsochrone(ctx, concon, entity.DurationMinutes(7.25)).
		Return([]byte(isochroneJSON), nil).
		Once()
	mockCache.EXPECT().Save(ctx, mock.Anything).Return(nil).Once()

	_, err := service.Resolve(ctx, concon, 7.25)
	require.NoError(t, err)
}

func TestIsochroneService_Resolve_ProviderErrorNotCached(t *testing.T) {
	mockCache := mockRepo.NewMockResponseCache(t)
	mockProvider := mockService.NewMockIsochroneProvider(t)
	service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(), nil, newTestLogger())

	ctx := context.Background()
	mockCache.EXPECT().Load(ctx).Return(repository.ResponseMap{}, nil).Once()
	mockProvider.EXPECT().
		FetchIsochrone(ctx, concon, entity.DurationMinutes(5)).
		Return(nil, domainerrors.NewProviderError("isochrone", http.StatusUnauthorized, `{"message":"Not Authorized"}`, nil)).
		Once()

	_, err := service.Resolve(ctx, concon, 5)
	require.Error(t, err)

	var providerErr *domainerrors.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, http.StatusUnauthorized, providerErr.StatusCode)
	mockCache.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestIsochroneService_Resolve_DecodeErrorNotCached(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "empty features", payload: `{"type":"FeatureCollection","features":[]}`},
		{name: "not geojson", payload: `<html>rate limited</html>`},
		{
			name:    "point geometry",
			payload: `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":{"type":"Point","coordinates":[1,2]}}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCache := mockRepo.NewMockResponseCache(t)
			mockProvider := mockService.NewMockIsochroneProvider(t)
			service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(), nil, newTestLogger())

			ctx := context.Background()
			mockCache.EXPECT().Load(ctx).Return(repository.ResponseMap{}, nil).Once()
			mockProvider.EXPECT().
				FetchIsochrone(ctx, concon, entity.DurationMinutes(5)).
				Return([]byte(tt.payload), nil).
				Once()

			_, err := service.Resolve(ctx, concon, 5)

			var decodeErr *domainerrors.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, "isochrone", decodeErr.What)
			mockCache.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		})
	}
}

func TestIsochroneService_Resolve_StorageErrors(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		mockCache := mockRepo.NewMockResponseCache(t)
		mockProvider := mockService.NewMockIsochroneProvider(t)
		service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(), nil, newTestLogger())

		ctx := context.Background()
		mockCache.EXPECT().Load(ctx).Return(nil, domainerrors.NewStorageError("load", errors.New("permission denied"))).Once()

		_, err := service.Resolve(ctx, concon, 5)

		var storageErr *domainerrors.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "load", storageErr.Op)
	})

	t.Run("save", func(t *testing.T) {
		mockCache := mockRepo.NewMockResponseCache(t)
		mockProvider := mockService.NewMockIsochroneProvider(t)
		service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(), nil, newTestLogger())

		ctx := context.Background()
		mockCache.EXPECT().Load(ctx).Return(nil, nil).Twice()
		mockProvider.EXPECT().
			FetchIsochrone(ctx, concon, entity.DurationMinutes(5)).
			Return([]byte(isochroneJSON), nil).
			Once()
		mockCache.EXPECT().Save(ctx, mock.Anything).Return(domainerrors.NewStorageError("save", errors.New("disk full"))).Once()

		_, err := service.Resolve(ctx, concon, 5)

		var storageErr *domainerrors.StorageError
		require.ErrorAs(t, err, &storageErr)
		assert.Equal(t, "save", storageErr.Op)
	})
}

func TestIsochroneService_Resolve_InvalidInput(t *testing.T) {
	mockCache := mockRepo.NewMockResponseCache(t)
	mockProvider := mockService.NewMockIsochroneProvider(t)
	service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(), nil, newTestLogger())

	_, err := service.Resolve(context.Background(), entity.Location{Lng: 181, Lat: 0}, 5)
	require.ErrorIs(t, err, domainerrors.ErrInvalidLocation)

	_, err = service.Resolve(context.Background(), concon, 0)
	require.ErrorIs(t, err, domainerrors.ErrInvalidDuration)
}

func TestIsochroneService_Resolve_ApproximateMatch(t *testing.T) {
	// ~11 m north of concon
	nearby := entity.Location{Lng: concon.Lng, Lat: concon.Lat + 0.0001}
	cached := func() repository.ResponseMap {
		return repository.ResponseMap{
			entity.NewRequestKey(nearby, 5): repository.CachedResponse(isochroneJSON),
		}
	}

	t.Run("within tolerance", func(t *testing.T) {
		mockCache := mockRepo.NewMockResponseCache(t)
		mockProvider := mockService.NewMockIsochroneProvider(t)
		service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(),
			&config.CacheConfig{MatchToleranceMeters: 50}, newTestLogger())

		ctx := context.Background()
		mockCache.EXPECT().Load(ctx).Return(cached(), nil).Once()

		polygon, err := service.Resolve(ctx, concon, 5)
		require.NoError(t, err)
		assert.NotEmpty(t, polygon)
	})

	t.Run("minutes outside tolerance", func(t *testing.T) {
		mockCache := mockRepo.NewMockResponseCache(t)
		mockProvider := mockService.NewMockIsochroneProvider(t)
		service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(),
			&config.CacheConfig{MatchToleranceMeters: 50, MatchToleranceMinutes: 0.5}, newTestLogger())

		ctx := context.Background()
		mockCache.EXPECT().Load(ctx).Return(cached(), nil).Twice()
		mockProvider.EXPECT().
			FetchIsochrone(ctx, concon, entity.DurationMinutes(6)).
			Return([]byte(isochroneJSON), nil).
			Once()
		mockCache.EXPECT().Save(ctx, mock.Anything).Return(nil).Once()

		_, err := service.Resolve(ctx, concon, 6)
		require.NoError(t, err)
	})

	t.Run("disabled by default", func(t *testing.T) {
		mockCache := mockRepo.NewMockResponseCache(t)
		mockProvider := mockService.NewMockIsochroneProvider(t)
		service := NewIsochroneService(mockCache, mockProvider, geometry.NewCodec(), &config.CacheConfig{}, newTestLogger())

		ctx := context.Background()
		mockCache.EXPECT().Load(ctx).Return(cached(), nil).Twice()
		mockProvider.EXPECT().
			FetchIsochrone(ctx, concon, entity.DurationMinutes(5)).
			Return([]byte(isochroneJSON), nil).
			Once()
		mockCache.EXPECT().Save(ctx, mock.Anything).Return(nil).Once()

		_, err := service.Resolve(ctx, concon, 5)
		require.NoError(t, err)
	})
}

func TestIsochroneService_Resolve_SecondCallServedFromBlob(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	cache := blobstore.NewResponseCache(bucket, "responses.json", newTestLogger())
	mockProvider := mockService.NewMockIsochroneProvider(t)
	service := NewIsochroneService(cache, mockProvider, geometry.NewCodec(), nil, newTestLogger())

	ctx := context.Background()
	mockProvider.EXPECT().
		FetchIsochrone(ctx, concon, entity.DurationMinutes(5)).
		Return([]byte(isochroneJSON), nil).
		Once()

	first, err := service.Resolve(ctx, concon, 5)
	require.NoError(t, err)

	second, err := service.Resolve(ctx, concon, 5)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	responses, err := cache.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, responses, 1)
}
