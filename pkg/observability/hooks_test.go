package observability

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopExportHooks{}
	e.OnExportStart(ctx, "png")
	e.OnExportComplete(ctx, "png", 1024, time.Second, nil)

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

type recordingExportHooks struct {
	NoopExportHooks
	mu      sync.Mutex
	started []string
}

func (r *recordingExportHooks) OnExportStart(_ context.Context, format string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, format)
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits int
}

func (r *recordingCacheHooks) OnCacheHit(context.Context, string) { r.hits++ }

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	defer Reset()

	if _, ok := Export().(NoopExportHooks); !ok {
		t.Error("Export() should return NoopExportHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	eh := &recordingExportHooks{}
	ch := &recordingCacheHooks{}
	SetExportHooks(eh)
	SetCacheHooks(ch)

	Export().OnExportStart(context.Background(), "svg")
	Cache().OnCacheHit(context.Background(), "artifact")
	if len(eh.started) != 1 || eh.started[0] != "svg" {
		t.Errorf("export hook started = %v, want [svg]", eh.started)
	}
	if ch.hits != 1 {
		t.Errorf("cache hook hits = %d, want 1", ch.hits)
	}

	// Nil does not replace registered hooks
	SetExportHooks(nil)
	SetCacheHooks(nil)
	if Export() != ExportHooks(eh) {
		t.Error("SetExportHooks(nil) should keep existing hooks")
	}
	if Cache() != CacheHooks(ch) {
		t.Error("SetCacheHooks(nil) should keep existing hooks")
	}

	Reset()
	if _, ok := Export().(NoopExportHooks); !ok {
		t.Error("Reset() should restore NoopExportHooks")
	}
}

func TestConcurrentAccess(t *testing.T) {
	Reset()
	defer Reset()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			SetExportHooks(NoopExportHooks{})
		}()
		go func() {
			defer wg.Done()
			Export().OnExportStart(context.Background(), "png")
		}()
	}
	wg.Wait()
}
