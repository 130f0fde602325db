package ethereum

import (
	"context"
	"math/big"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/stretchr/testify/require"
)

type slowBackend struct {
	inFlight int32
	maxSeen  int32
}

func (b *slowBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, number *big.Int) ([]byte, error) {
	n := atomic.AddInt32(&b.inFlight, 1)
	defer atomic.AddInt32(&b.inFlight, -1)
	for {
		seen := atomic.LoadInt32(&b.maxSeen)
		if n <= seen || atomic.CompareAndSwapInt32(&b.maxSeen, seen, n) {
			break
		}
	}
	time.Sleep(10 * time.Millisecond)
	return []byte{1}, nil
}

func (b *slowBackend) BlockNumber(ctx context.Context) (uint64, error) {
	return 42, nil
}

func (b *slowBackend) Close() {}

func TestThrottledBackendBoundsInFlight(t *testing.T) {
	req := require.New(t)
	backend := &slowBackend{}
	throttled := NewThrottledBackend(backend, 2)

	var failures int32
	wg := sync.WaitGroup{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := throttled.CallContract(context.Background(), ethereum.CallMsg{}, nil); err != nil {
				atomic.AddInt32(&failures, 1)
			}
		}()
	}
	wg.Wait()

	req.Zero(atomic.LoadInt32(&failures))
	req.LessOrEqual(atomic.LoadInt32(&backend.maxSeen), int32(2))
	blk, err := throttled.BlockNumber(context.Background())
	req.NoError(err)
	req.Equal(uint64(42), blk)
}

func TestThrottledBackendCanceledWait(t *testing.T) {
	req := require.New(t)
	throttled := NewThrottledBackend(&slowBackend{}, 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := throttled.CallContract(ctx, ethereum.CallMsg{}, nil)
	req.ErrorIs(err, context.Canceled)
}
