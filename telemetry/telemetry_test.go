package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
)

func TestNoOpCollectorProducesNoOutput(t *testing.T) {
	collector := noOpCollector{}
	timer := collector.Start("test")
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf)
	assert.Equal(t, 0, buf.Len())
}

func TestFromContextReturnsNoOpWhenMissing(t *testing.T) {
	collector := FromContext(context.Background())
	_, ok := collector.(noOpCollector)
	assert.True(t, ok)
}

func TestWithCollectorRoundtrips(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	retrieved, ok := FromContext(ctx).(*TimingCollector)
	assert.True(t, ok)
	assert.True(t, retrieved == collector)
}

func TestTimingCollectorReportsEachPhaseInOrder(t *testing.T) {
	collector := NewTimingCollector()

	load := collector.Start("balance.load")
	time.Sleep(time.Millisecond)
	load.End()

	build := collector.Start("balance.build")
	time.Sleep(time.Millisecond)
	build.End()

	var buf bytes.Buffer
	collector.Report(&buf)
	output := buf.String()

	loadIdx := strings.Index(output, "balance.load")
	buildIdx := strings.Index(output, "balance.build")
	assert.True(t, loadIdx >= 0 && buildIdx >= 0)
	assert.True(t, loadIdx < buildIdx)
}

func TestTimingCollectorEmptyReport(t *testing.T) {
	collector := NewTimingCollector()
	var buf bytes.Buffer
	collector.Report(&buf)
	assert.Equal(t, 0, buf.Len())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{100 * time.Microsecond, "100µs"},
		{999 * time.Microsecond, "999µs"},
		{1 * time.Millisecond, "1ms"},
		{999 * time.Millisecond, "999ms"},
		{1 * time.Second, "1.00s"},
		{1500 * time.Millisecond, "1.50s"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.duration))
	}
}
