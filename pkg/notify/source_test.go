package notify_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/formkit/pkg/notify"
)

func TestConstructionSilence(t *testing.T) {
	t.Run("publishes before first subscription are dropped", func(t *testing.T) {
		src := notify.NewSource()
		src.Publish("value")

		var got []string
		src.Subscribe("value", func(e notify.Event) {
			got = append(got, e.Property)
		})

		assert.Empty(t, got, "pre-exposure publishes must not be replayed")
		assert.True(t, src.Exposed())
	})

	t.Run("exposed stays false until someone subscribes", func(t *testing.T) {
		src := notify.NewSource()
		assert.False(t, src.Exposed())
		src.Publish("value")
		assert.False(t, src.Exposed())
	})

	t.Run("exposure is one-way", func(t *testing.T) {
		src := notify.NewSource()
		off := src.Subscribe("value", func(notify.Event) {})
		off()
		assert.True(t, src.Exposed())
	})
}

func TestPublish(t *testing.T) {
	t.Run("delivers synchronously outside a batch", func(t *testing.T) {
		src := notify.NewSource()
		calls := 0
		src.Subscribe("value", func(e notify.Event) {
			calls++
			assert.Equal(t, "value", e.Property)
		})

		src.Publish("value")
		assert.Equal(t, 1, calls)
	})

	t.Run("invokes subscribers in subscription order", func(t *testing.T) {
		src := notify.NewSource()
		var order []int
		for i := 1; i <= 3; i++ {
			i := i
			src.Subscribe("value", func(notify.Event) {
				order = append(order, i)
			})
		}

		src.Publish("value")
		assert.Equal(t, []int{1, 2, 3}, order)
	})

	t.Run("does not deliver to other properties", func(t *testing.T) {
		src := notify.NewSource()
		calls := 0
		src.Subscribe("errors", func(notify.Event) { calls++ })

		src.Publish("value")
		assert.Zero(t, calls)
	})
}

func TestBatch(t *testing.T) {
	t.Run("coalesces repeated publishes of one property", func(t *testing.T) {
		src := notify.NewSource()
		calls := 0
		src.Subscribe("value", func(notify.Event) { calls++ })

		src.Batch(func() {
			src.Publish("value")
			src.Publish("value")
			src.Publish("value")
		})

		assert.Equal(t, 1, calls)
	})

	t.Run("delivers after the batch body, not during", func(t *testing.T) {
		src := notify.NewSource()
		inBody := true
		delivered := false
		src.Subscribe("value", func(notify.Event) {
			delivered = true
			assert.False(t, inBody, "delivery must wait for the unit of work to finish")
		})

		src.Batch(func() {
			src.Publish("value")
			inBody = false
		})
		assert.True(t, delivered)
	})

	t.Run("nested batches flush once at the outermost exit", func(t *testing.T) {
		src := notify.NewSource()
		calls := 0
		src.Subscribe("value", func(notify.Event) { calls++ })

		src.Batch(func() {
			src.Batch(func() {
				src.Publish("value")
			})
			assert.Zero(t, calls, "inner exit must not flush")
			src.Publish("value")
		})

		assert.Equal(t, 1, calls)
	})

	t.Run("flushes distinct properties in first-publish order", func(t *testing.T) {
		src := notify.NewSource()
		var order []string
		record := func(e notify.Event) { order = append(order, e.Property) }
		src.Subscribe("errors", record)
		src.Subscribe("isValid", record)
		src.Subscribe("value", record)

		src.Batch(func() {
			src.Publish("value")
			src.Publish("errors")
			src.Publish("isValid")
			src.Publish("value")
		})

		assert.Equal(t, []string{"value", "errors", "isValid"}, order)
	})

	t.Run("batches do not share coalescing windows", func(t *testing.T) {
		src := notify.NewSource()
		calls := 0
		src.Subscribe("value", func(notify.Event) { calls++ })

		src.Batch(func() { src.Publish("value") })
		src.Batch(func() { src.Publish("value") })

		assert.Equal(t, 2, calls)
	})
}

func TestSubscriberIsolation(t *testing.T) {
	t.Run("a panicking subscriber does not block the rest", func(t *testing.T) {
		var buf bytes.Buffer
		src := notify.NewSource(notify.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

		reached := false
		src.Subscribe("value", func(notify.Event) { panic("boom") })
		src.Subscribe("value", func(notify.Event) { reached = true })

		require.NotPanics(t, func() { src.Publish("value") })
		assert.True(t, reached)
		assert.Contains(t, buf.String(), "subscriber panicked")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("source stays usable after a panic", func(t *testing.T) {
		src := notify.NewSource()
		src.Subscribe("value", func(notify.Event) { panic("boom") })
		src.Publish("value")

		calls := 0
		src.Subscribe("value", func(notify.Event) { calls++ })
		src.Publish("value")
		assert.Equal(t, 1, calls)
	})
}

func TestUnsubscribe(t *testing.T) {
	t.Run("removed subscriber is not invoked", func(t *testing.T) {
		src := notify.NewSource()
		calls := 0
		off := src.Subscribe("value", func(notify.Event) { calls++ })

		src.Publish("value")
		off()
		src.Publish("value")

		assert.Equal(t, 1, calls)
	})

	t.Run("unsubscribing twice is harmless", func(t *testing.T) {
		src := notify.NewSource()
		keep := 0
		off := src.Subscribe("value", func(notify.Event) {})
		src.Subscribe("value", func(notify.Event) { keep++ })

		off()
		off()
		src.Publish("value")
		assert.Equal(t, 1, keep)
	})
}

func TestSubscribeNilCallback(t *testing.T) {
	src := notify.NewSource()
	assert.Panics(t, func() { src.Subscribe("value", nil) })
}

func TestBatchCoalescingProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		src := notify.NewSource()
		counts := map[string]int{}
		var order []string
		for _, p := range []string{"a", "b", "c"} {
			p := p
			src.Subscribe(p, func(e notify.Event) {
				counts[p]++
				order = append(order, e.Property)
			})
		}

		publishes := rapid.SliceOfN(rapid.SampledFrom([]string{"a", "b", "c"}), 1, 20).Draw(t, "publishes")

		var wantOrder []string
		seen := map[string]bool{}
		for _, p := range publishes {
			if !seen[p] {
				seen[p] = true
				wantOrder = append(wantOrder, p)
			}
		}

		src.Batch(func() {
			for _, p := range publishes {
				src.Publish(p)
			}
		})

		for p, wanted := range seen {
			require.True(t, wanted)
			require.Equal(t, 1, counts[p], "property %q must be announced exactly once", p)
		}
		require.Equal(t, wantOrder, order)
	})
}
