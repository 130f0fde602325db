package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	bg := Background()
	ctx := WithValue(bg, "requestID", "abc")
	ts.Equal("abc", ctx.Value("requestID"))
}

func (ts *testsuite) TestWithValues() {
	bg := Background()
	ctx := WithValues(bg, map[string]interface{}{
		"a": "b",
		"c": "d",
	})
	ts.Equal("b", ctx.Value("a"))
	ts.Equal("d", ctx.Value("c"))
}

func (ts *testsuite) TestWithCancel() {
	bg := Background()
	ctx, cancel := WithCancel(bg)
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	ts.False(after100Ms(ctx))
}

func (ts *testsuite) TestTimeout() {
	bg := Background()
	ctx, cancel := WithTimeout(bg, 10*time.Millisecond)
	defer cancel()
	ts.False(after100Ms(ctx))
	ts.Equal("context deadline exceeded", ctx.Err().Error())
}

func (ts *testsuite) TestZeroTimeoutHasNoDeadline() {
	ctx, cancel := WithTimeout(Background(), 0)
	defer cancel()
	_, ok := ctx.Deadline()
	ts.False(ok)
	ts.True(after100Ms(ctx))
}

func (ts *testsuite) TestDetach() {
	parent, cancel := WithCancel(WithValue(Background(), "requestID", "abc"))
	detached := Detach(parent)
	cancel()

	ts.Error(parent.Err())
	ts.NoError(detached.Err())
	ts.Equal("abc", detached.Value("requestID"))
	ts.True(after100Ms(detached))
}

func after100Ms(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(100 * time.Millisecond):
		return true
	}
}
