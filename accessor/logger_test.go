package accessor

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_SetConcurrently(t *testing.T) {
	t.Cleanup(func() { SetLogger(nil) })

	core, logs := observer.New(zapcore.DebugLevel)
	custom := zap.New(core)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetLogger(custom)
		}()
		go func() {
			defer wg.Done()
			assert.NotNil(t, Logger())
		}()
	}
	wg.Wait()

	assert.Same(t, custom, Logger())
	NewCompiler().unsupported("get", []string{"Person", "Name"}, "test")
	assert.Equal(t, 1, logs.FilterMessage("thunk not compiled").Len())

	SetLogger(nil)
	assert.NotNil(t, Logger())
	assert.NotSame(t, custom, Logger())
}
