package appctx_test

import (
	"sync"
	"testing"

	appctx "github.com/protocolo-ceremonial/flagplan/internal/app/context"
)

func TestSafeRef(t *testing.T) {
	t.Parallel()

	type catalogState struct {
		version string
		loads   int
	}

	ref := appctx.NewRef(catalogState{version: "embedded"})
	ref.Set(catalogState{version: "registry-v1"})
	ref.Update(func(s *catalogState) { s.loads++ })

	if got := ref.Get(); got != (catalogState{version: "registry-v1", loads: 1}) {
		t.Fatalf("Get() = %+v", got)
	}
}

func TestSafeRef_ConcurrentUpdates(t *testing.T) {
	t.Parallel()

	ref := appctx.NewRef(0)
	var wg sync.WaitGroup
	for range 100 {
		wg.Go(func() { ref.Update(func(v *int) { *v++ }) })
		wg.Go(func() { _ = ref.Get() })
	}
	wg.Wait()

	if got := ref.Get(); got != 100 {
		t.Errorf("final value = %d, want 100", got)
	}
}
