package metrics

import (
	"context"

	coremetrics "github.com/kilianp07/chargesim/core/metrics"
	"github.com/kilianp07/chargesim/core/model"
	"github.com/kilianp07/chargesim/internal/eventbus"
)

// StartFrameCollector subscribes to the replay frame bus and records each
// frame on the sink. It stops when the context is canceled or the bus closes.
func StartFrameCollector(ctx context.Context, bus *eventbus.TypedBus[model.ReplayFrame], sink coremetrics.MetricsSink) {
	if bus == nil || sink == nil {
		return
	}
	rec, ok := sink.(coremetrics.ReplayRecorder)
	if !ok {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case f, open := <-sub:
				if !open {
					return
				}
				_ = rec.RecordReplayFrame(coremetrics.ReplayFrameEvent{
					RunID:      f.RunID,
					StepLimit:  f.StepLimit,
					SoCPercent: f.SoCPercent,
					Time:       f.Time,
				})
			}
		}
	}()
}
