package plectrum_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/syssam/plectrum"
)

func TestSetLogger(t *testing.T) {
	prev := plectrum.Logger()
	t.Cleanup(func() { plectrum.SetLogger(prev) })

	t.Run("nil is ignored", func(t *testing.T) {
		l := zap.NewNop()
		plectrum.SetLogger(l)
		plectrum.SetLogger(nil)
		assert.Same(t, l, plectrum.Logger())
	})

	t.Run("concurrent with Load", func(t *testing.T) {
		core, logs := observer.New(zap.WarnLevel)
		l := zap.New(core)
		ctx := context.Background()

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(2)
			go func() {
				defer wg.Done()
				plectrum.SetLogger(l)
			}()
			go func() {
				defer wg.Done()
				_, err := plectrum.Load[int, State](ctx, plectrum.Static[int]{1: "stopped"})
				assert.Error(t, err)
			}()
		}
		wg.Wait()

		assert.Same(t, l, plectrum.Logger())
		_, err := plectrum.Load[int, State](ctx, plectrum.Static[int]{1: "stopped"})
		require.Error(t, err)
		assert.GreaterOrEqual(t, logs.FilterMessage("enum out of sync with data").Len(), 1)
	})
}
