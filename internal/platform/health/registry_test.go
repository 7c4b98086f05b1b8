package health_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/protocolo-ceremonial/flagplan/internal/platform/health"
	"github.com/protocolo-ceremonial/flagplan/mocks"
)

var errRefused = errors.New("connection refused")

// probe describes one registered checker: its name, its answer, and whether
// it blocks until the test ends.
type probe struct {
	name  string
	err   error
	hangs bool
}

func register(t *testing.T, r *health.Registry, probes ...probe) {
	t.Helper()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	for _, p := range probes {
		c := mocks.NewMockHealthChecker(t)
		c.EXPECT().Name().Return(p.name)
		if p.hangs {
			c.EXPECT().HealthCheck(mock.Anything).RunAndReturn(func(context.Context) error {
				<-release
				return nil
			}).Maybe()
		} else {
			c.EXPECT().HealthCheck(mock.Anything).Return(p.err)
		}
		r.Register(c)
	}
}

func TestCheckAll(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		probes []probe
		want   map[string]error
	}{
		{name: "nothing registered", want: map[string]error{}},
		{
			name:   "all healthy",
			probes: []probe{{name: "reference-data"}, {name: "reference-catalog"}},
			want:   map[string]error{"reference-data": nil, "reference-catalog": nil},
		},
		{
			name:   "one failing",
			probes: []probe{{name: "reference-catalog"}, {name: "reference-registry", err: errRefused}},
			want:   map[string]error{"reference-catalog": nil, "reference-registry": errRefused},
		},
		{
			name:   "duplicate name keeps the last registration",
			probes: []probe{{name: "reference-data"}, {name: "reference-data", err: errRefused}},
			want:   map[string]error{"reference-data": errRefused},
		},
		{
			name:   "hung check times out",
			probes: []probe{{name: "reference-registry", hangs: true}, {name: "reference-catalog"}},
			want:   map[string]error{"reference-registry": context.DeadlineExceeded, "reference-catalog": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := health.New(health.WithCheckTimeout(50 * time.Millisecond))
			register(t, r, tt.probes...)

			start := time.Now()
			got := r.CheckAll(context.Background())
			if elapsed := time.Since(start); elapsed > time.Second {
				t.Errorf("CheckAll took %s", elapsed)
			}

			if len(got) != len(tt.want) {
				t.Fatalf("CheckAll() = %v, want %v", got, tt.want)
			}
			for name, want := range tt.want {
				err, ok := got[name]
				if !ok {
					t.Errorf("no result for %q", name)
					continue
				}
				if (want == nil && err != nil) || (want != nil && !errors.Is(err, want)) {
					t.Errorf("%s = %v, want %v", name, err, want)
				}
			}
		})
	}
}

func TestCheckAll_ChecksRunUnderDeadline(t *testing.T) {
	t.Parallel()

	c := mocks.NewMockHealthChecker(t)
	c.EXPECT().Name().Return("reference-registry")
	c.EXPECT().HealthCheck(mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return ok
	})).Return(nil)

	// Zero is ignored in favor of the default timeout.
	r := health.New(health.WithCheckTimeout(0))
	r.Register(c)

	if err := r.CheckAll(context.Background())["reference-registry"]; err != nil {
		t.Errorf("check = %v, want nil", err)
	}
}

func TestRegistry_ConcurrentRegisterAndCheck(t *testing.T) {
	t.Parallel()

	r := health.New()
	var wg sync.WaitGroup
	for range 25 {
		wg.Go(func() {
			c := mocks.NewMockHealthChecker(t)
			c.EXPECT().Name().Return("reference-data").Maybe()
			c.EXPECT().HealthCheck(mock.Anything).Return(nil).Maybe()
			r.Register(c)
		})
		wg.Go(func() { r.CheckAll(context.Background()) })
	}
	wg.Wait()
}
