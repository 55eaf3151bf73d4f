package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/vango-dev/geom/pkg/collection"
	"github.com/vango-dev/geom/pkg/geom"
)

func TestWatchCountsNotifications(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(WithRegistry(reg))

	v := geom.NewVec2(0, 0)
	revoke := rec.Watch("cursor", v)

	v.Set(1, 1)
	v.Set(1, 1)
	v.SetX(2)

	if got := testutil.ToFloat64(rec.notifications.WithLabelValues("cursor")); got != 2 {
		t.Errorf("notifications = %v, want 2", got)
	}
	if got := rec.Notifications("cursor"); got != 2 {
		t.Errorf("Notifications() = %v, want 2", got)
	}

	revoke()
	v.SetX(3)
	if got := rec.Notifications("cursor"); got != 2 {
		t.Errorf("revoked watch still counting: %v", got)
	}
}

func TestWatchSizeFollowsCollection(t *testing.T) {
	reg := prometheus.NewRegistry()
	rec := NewRecorder(WithRegistry(reg), WithNamespace("test"))

	pts := collection.NewPoints(geom.NewVec2(0, 0))
	rec.WatchSize("outline", pts)

	gauge := rec.sizes.WithLabelValues("outline")
	if got := testutil.ToFloat64(gauge); got != 1 {
		t.Errorf("initial size = %v, want 1", got)
	}

	pts.AddPoint(1, 1)
	pts.AddPoint(2, 2)
	pts.Pop()
	if got := testutil.ToFloat64(gauge); got != 2 {
		t.Errorf("size = %v, want 2", got)
	}

	count, err := testutil.GatherAndCount(reg, "test_collection_size")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if count != 1 {
		t.Errorf("series count = %d, want 1", count)
	}
}
