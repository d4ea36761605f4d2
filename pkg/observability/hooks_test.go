package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	l := NoopLayoutHooks{}
	l.OnUpdate("root", "vstack", 3, 120, 80, time.Millisecond)
	l.OnScrollbars("root", true, false)
	l.OnAssert("root", "unknown child")

	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "artifact")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Layout() should return NoopLayoutHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	customLayout := &testLayoutHooks{}
	SetLayoutHooks(customLayout)
	if Layout() != customLayout {
		t.Error("SetLayoutHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	Reset()
	if _, ok := Layout().(NoopLayoutHooks); !ok {
		t.Error("Reset() should restore NoopLayoutHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testLayoutHooks{}
	SetLayoutHooks(custom)
	SetLayoutHooks(nil)

	if Layout() != custom {
		t.Error("SetLayoutHooks(nil) should be ignored")
	}

	Reset()
}

func TestCustomLayoutHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testLayoutHooks{}
	SetLayoutHooks(h)

	Layout().OnUpdate("panel", "hstack", 2, 10, 5, 0)
	Layout().OnAssert("panel", "unknown child")

	if h.updates != 1 {
		t.Errorf("updates = %d, want 1", h.updates)
	}
	if h.asserts != 1 {
		t.Errorf("asserts = %d, want 1", h.asserts)
	}
}

type testLayoutHooks struct {
	NoopLayoutHooks
	updates int
	asserts int
}

func (h *testLayoutHooks) OnUpdate(string, string, int, int, int, time.Duration) { h.updates++ }
func (h *testLayoutHooks) OnAssert(string, string)                               { h.asserts++ }

type testCacheHooks struct{ NoopCacheHooks }
