package minirt

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/minirt/progress"
	"github.com/viant/minirt/runtime/executor"
	"github.com/viant/minirt/workload"
	"go.uber.org/zap/zaptest"
)

func testRuntimeConfig() *Config {
	config := DefaultConfig()
	config.Metrics.Enabled = true
	config.Workloads = workload.Config{
		Background: []workload.Sleep{
			{Name: "task one", Duration: 2 * time.Millisecond},
			{Name: "task two", Duration: 4 * time.Millisecond},
		},
		Root: workload.Sleep{Name: "root", Duration: 6 * time.Millisecond},
	}
	return config
}

func TestNew(t *testing.T) {
	rt, err := New(nil, WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	assert.NotNil(t, rt.Executor())
	assert.Nil(t, rt.Registry())
	assert.Equal(t, DefaultConfig(), rt.Config())

	config := DefaultConfig()
	config.Executor.QueueCapacity = 0
	_, err = New(config)
	assert.Error(t, err)
}

func TestRuntime_RunWorkloads(t *testing.T) {
	var events []executor.Event
	rt, err := New(testRuntimeConfig(),
		WithLogger(zaptest.NewLogger(t)),
		WithListener(func(event executor.Event) { events = append(events, event) }))
	require.NoError(t, err)
	defer rt.Shutdown()

	ctx, tracker := progress.WithNewTracker(context.Background(), "workloads", nil)
	var out bytes.Buffer
	elapsed := rt.RunWorkloads(ctx, &out)

	assert.GreaterOrEqual(t, elapsed, 12*time.Millisecond)
	assert.Equal(t, 0, rt.Executor().Len())
	assert.True(t, strings.HasPrefix(out.String(), "Runtime started...\ntask one: start\n"))

	snapshot := tracker.Snapshot()
	assert.Equal(t, 2, snapshot.SubmittedTasks)
	assert.Equal(t, 2, snapshot.CompletedTasks)
	assert.Equal(t, 1, snapshot.Passes)

	var names []string
	for _, event := range events {
		if event.Kind == executor.TaskResumed {
			names = append(names, event.Name)
		}
	}
	assert.Equal(t, []string{"task one", "task two"}, names)

	count, err := testutil.GatherAndCount(rt.Registry(), "minirt_executor_completed_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
