package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

var meter = otel.Meter("go.perf_stats")

// InstrumentPerfStats samples process health gauges every 30 seconds
// until ctx is cancelled.
func InstrumentPerfStats(ctx context.Context) {
	cpuGauge, _ := meter.Float64Gauge("cpu_usage")
	heapGauge, _ := meter.Int64Gauge("heap_mb")
	liveObjectsGauge, _ := meter.Int64Gauge("live_objects")
	goroutineGauge, _ := meter.Int64Gauge("goroutine_count")

	go func() {
		ticker := time.NewTicker(time.Second * 30)
		defer ticker.Stop()

		var memStats runtime.MemStats
		for {
			select {
			case <-ticker.C:
				runtime.ReadMemStats(&memStats)

				usage, err := cpu.PercentWithContext(ctx, time.Minute, false)
				if err != nil {
					slog.WarnContext(ctx, "failed to read cpu usage", "err", err)
				} else if len(usage) > 0 {
					cpuGauge.Record(ctx, usage[0])
				}

				heapGauge.Record(ctx, int64(memStats.HeapAlloc/1_000_000))
				liveObjectsGauge.Record(ctx, int64(memStats.Mallocs-memStats.Frees))
				goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))
			case <-ctx.Done():
				return
			}
		}
	}()
}
