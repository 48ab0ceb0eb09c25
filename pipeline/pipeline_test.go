package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestFromSlice_Collect(t *testing.T) {
	got, err := Collect(context.Background(), FromSlice([]int{3, 1, 4}))
	if err != nil {
		t.Fatal(err)
	}
	want := []int{3, 1, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("index %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestFromSlice_Empty(t *testing.T) {
	got, err := Collect(context.Background(), FromSlice([]string{}))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestFilter_KeepsMatching(t *testing.T) {
	evens := Filter(FromSlice([]int{1, 2, 3, 4, 5, 6}), func(n int) bool { return n%2 == 0 })
	got, err := Collect(context.Background(), evens)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 || got[0] != 2 || got[1] != 4 || got[2] != 6 {
		t.Errorf("got %v, want [2 4 6]", got)
	}
}

func TestFilter_NoneMatch(t *testing.T) {
	none := Filter(FromSlice([]int{1, 3, 5}), func(n int) bool { return n%2 == 0 })
	got, err := Collect(context.Background(), none)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestMap_ChangesType(t *testing.T) {
	labels := Map(FromSlice([]int{7, 9}), func(_ context.Context, n int) (string, error) {
		return fmt.Sprintf("metric-%d", n), nil
	})
	got, err := Collect(context.Background(), labels)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0] != "metric-7" || got[1] != "metric-9" {
		t.Errorf("got %v, want [metric-7 metric-9]", got)
	}
}

func TestMap_ErrorStopsStream(t *testing.T) {
	boom := errors.New("model unavailable")
	p := Map(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (int, error) {
		if n == 2 {
			return 0, boom
		}
		return n * 10, nil
	})
	got, err := Collect(context.Background(), p)
	if !errors.Is(err, boom) {
		t.Fatalf("expected model error, got %v", err)
	}
	if len(got) != 1 || got[0] != 10 {
		t.Errorf("expected [10] before the error, got %v", got)
	}
}

func TestPipeline_LazyUntilCollect(t *testing.T) {
	calls := 0
	p := Map(FromSlice([]int{1, 2, 3}), func(_ context.Context, n int) (int, error) {
		calls++
		return n, nil
	})
	if calls != 0 {
		t.Fatalf("map ran before Collect: %d calls", calls)
	}
	if _, err := Collect(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	if calls != 3 {
		t.Errorf("expected 3 map calls, got %d", calls)
	}
}

func TestCollect_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Collect(ctx, FromSlice([]int{1, 2, 3}))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestFilterMap_Compose(t *testing.T) {
	type window struct {
		metric string
		value  float64
		limit  float64
	}
	samples := []window{
		{metric: "conversion_rate", value: 3.8, limit: 5.0},
		{metric: "acquisition_cost", value: 181.2, limit: 150.0},
		{metric: "response_time", value: 240.0, limit: 120.0},
	}

	over := Filter(FromSlice(samples), func(w window) bool { return w.value > w.limit })
	names, err := Collect(context.Background(), Map(over, func(_ context.Context, w window) (string, error) {
		return w.metric, nil
	}))
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[0] != "acquisition_cost" || names[1] != "response_time" {
		t.Errorf("got %v, want the two metrics over their limits", names)
	}
}
