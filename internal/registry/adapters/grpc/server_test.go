package grpc_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	registryv1 "keymint/api/registry/v1"
	grpcadapter "keymint/internal/registry/adapters/grpc"
	"keymint/internal/registry/alloc"
	"keymint/internal/registry/service"
	"keymint/internal/registry/store"
)

const frozenUnix = 1756100000

func newServer(t *testing.T) *grpcadapter.Server {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := service.New(store.NewInMemory(alloc.New()), service.WithLogger(logger))
	return grpcadapter.NewServer(svc, logger, grpcadapter.WithClock(func() time.Time {
		return time.Unix(frozenUnix, 0)
	}))
}

func TestProcessSampleScenario(t *testing.T) {
	srv := newServer(t)
	ctx := context.Background()

	steps := []struct {
		tenant    string
		key       string
		wantIsNew bool
		wantID    uint64
	}{
		{"3bd1c697", "K-h53dk-A", true, 1},
		{"75682017", "K-h53dk-A", true, 2},
		{"3bd1c697", "K-867vc-C", true, 3},
		{"75682017", "K-h53dk-A", false, 2},
	}
	for _, step := range steps {
		resp, err := srv.Process(ctx, &registryv1.ProcessRequest{Tenant: step.tenant, Key: step.key})
		require.NoError(t, err)
		assert.Equal(t, step.wantIsNew, resp.GetIsNew(), "tenant=%s key=%s", step.tenant, step.key)
		assert.Equal(t, step.wantID, resp.GetId(), "tenant=%s key=%s", step.tenant, step.key)
		assert.Equal(t, int64(frozenUnix), resp.GetTimestamp())
	}
}

func TestProcessInvalidKeyMapsToInvalidArgument(t *testing.T) {
	srv := newServer(t)

	_, err := srv.Process(context.Background(), &registryv1.ProcessRequest{
		Tenant: "3bd1c697",
		Key:    "not-a-key",
	})
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "not-a-key")
}

func TestProcessEmptyKeyRejected(t *testing.T) {
	srv := newServer(t)

	_, err := srv.Process(context.Background(), &registryv1.ProcessRequest{Tenant: "t"})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}
