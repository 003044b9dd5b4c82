package report

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"empanada-tracker/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestArchiver(client *mocks.Client) *Archiver {
	a := NewArchiver(client, "reports", "empanadas", zap.NewNop())
	a.now = func() time.Time { return time.Date(2025, 6, 7, 18, 0, 0, 0, time.UTC) }
	return a
}

func TestArchive(t *testing.T) {
	ctx := context.Background()
	payload := map[string]string{"beef": "3"}

	isReportKey := mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "empanadas/inventory/2025-06-07-") && strings.HasSuffix(key, ".json")
	})

	t.Run("Existing bucket", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(true, nil)
		client.On("PutObject", mock.Anything, "reports", isReportKey, mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		key, err := newTestArchiver(client).Archive(ctx, KindInventory, payload)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "empanadas/inventory/2025-06-07-"))

		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
		client.AssertExpectations(t)
	})

	t.Run("Missing bucket is created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "reports", mock.Anything).Return(nil)
		client.On("PutObject", mock.Anything, "reports", isReportKey, mock.Anything, mock.AnythingOfType("int64"), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		_, err := newTestArchiver(client).Archive(ctx, KindInventory, payload)
		require.NoError(t, err)
		client.AssertExpectations(t)
	})

	t.Run("Upload failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(true, nil)
		client.On("PutObject", mock.Anything, "reports", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, errors.New("connection reset"))

		_, err := newTestArchiver(client).Archive(ctx, KindInventory, payload)
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("Bucket check failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "reports").Return(false, errors.New("access denied"))

		_, err := newTestArchiver(client).Archive(ctx, KindInventory, payload)
		assert.ErrorContains(t, err, "access denied")
		client.AssertNotCalled(t, "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	objects := func(infos ...minio.ObjectInfo) <-chan minio.ObjectInfo {
		ch := make(chan minio.ObjectInfo, len(infos))
		for _, info := range infos {
			ch <- info
		}
		close(ch)
		return ch
	}

	t.Run("Newest first", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "reports", minio.ListObjectsOptions{Prefix: "empanadas/tapas/", Recursive: true}).
			Return(objects(
				minio.ObjectInfo{Key: "empanadas/tapas/2025-05-31-a.json", Size: 10},
				minio.ObjectInfo{Key: "empanadas/tapas/2025-06-07-b.json", Size: 12},
			))

		reports, err := newTestArchiver(client).List(ctx, KindTapas)
		require.NoError(t, err)
		require.Len(t, reports, 2)
		assert.Equal(t, "empanadas/tapas/2025-06-07-b.json", reports[0].Key)
		assert.Equal(t, int64(12), reports[0].Size)
	})

	t.Run("Listing error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "reports", mock.Anything).
			Return(objects(minio.ObjectInfo{Err: errors.New("no such bucket")}))

		_, err := newTestArchiver(client).List(ctx, KindTapas)
		assert.ErrorContains(t, err, "no such bucket")
	})
}

func TestFetch(t *testing.T) {
	ctx := context.Background()
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "reports", "empanadas/event/x.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(`{"state":"settled"}`)), nil)
	client.On("GetObject", mock.Anything, "reports", "missing.json", mock.Anything).
		Return(nil, errors.New("key does not exist"))

	a := newTestArchiver(client)

	data, err := a.Fetch(ctx, "empanadas/event/x.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"state":"settled"}`, string(data))

	_, err = a.Fetch(ctx, "missing.json")
	assert.ErrorContains(t, err, "key does not exist")
}
