package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orchbench/orchbench/internal/common/orcherrors"
	"github.com/orchbench/orchbench/internal/loadtest"
	"github.com/orchbench/orchbench/internal/workload"
)

func TestLocalEngine_RunsSubmittedWorkloads(t *testing.T) {
	localEngine := NewLocalEngine()

	err := localEngine.Submit(context.Background(), "run-0", workload.ChainWorkloadName)
	require.NoError(t, err)
	require.NoError(t, localEngine.Wait())

	greetings, ok := localEngine.Results("run-0")
	require.True(t, ok)
	assert.Len(t, greetings, 5)
	assert.Equal(t, "Hello, Tokyo!", greetings[0])
}

func TestLocalEngine_RejectsDuplicateInstanceIds(t *testing.T) {
	localEngine := NewLocalEngine()

	require.NoError(t, localEngine.Submit(context.Background(), "run-0", workload.ChainWorkloadName))
	err := localEngine.Submit(context.Background(), "run-0", workload.ChainWorkloadName)

	var alreadyExists *orcherrors.ErrAlreadyExists
	require.ErrorAs(t, err, &alreadyExists)
	assert.Equal(t, "run-0", alreadyExists.Value)
	assert.Equal(t, 1, localEngine.InstanceCount())
	require.NoError(t, localEngine.Wait())
}

func TestLocalEngine_RejectsUnknownWorkload(t *testing.T) {
	localEngine := NewLocalEngine()

	err := localEngine.Submit(context.Background(), "run-0", "NoSuchWorkload")

	var invalid *orcherrors.ErrInvalidArgument
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "workloadName", invalid.Name)
	assert.Equal(t, 0, localEngine.InstanceCount())
}

func TestLocalEngine_UnfinishedInstanceHasNoResults(t *testing.T) {
	localEngine := NewLocalEngine()
	_, ok := localEngine.Results("never-submitted")
	assert.False(t, ok)
}

func TestScheduleAgainstLocalEngine(t *testing.T) {
	localEngine := NewLocalEngine()

	outcome, err := loadtest.Schedule(context.Background(), 50, 8, "run", localEngine.Submit)
	require.NoError(t, err)
	require.NoError(t, localEngine.Wait())

	assert.Equal(t, 50, outcome.Submitted)
	assert.Equal(t, 0, outcome.Failed)
	assert.Equal(t, 50, localEngine.InstanceCount())

	for index := uint64(0); index < 50; index++ {
		instanceId := fmt.Sprintf("run-%016X", index)
		greetings, ok := localEngine.Results(instanceId)
		require.True(t, ok, "no results for %s", instanceId)
		assert.Len(t, greetings, 5)
	}
}
