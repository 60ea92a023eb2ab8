package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunParallel_ResultsAligned(t *testing.T) {
	tasks := []ParallelTask[int]{
		func() (int, error) { return 10, nil },
		func() (int, error) { return 20, nil },
		func() (int, error) { return 30, nil },
	}

	results, errs := RunParallel(tasks)
	require.Len(t, results, 3)
	assert.Equal(t, []int{10, 20, 30}, results)
	assert.NoError(t, FirstError(errs))
}

func TestRunParallel_ErrorsAligned(t *testing.T) {
	boom := errors.New("boom")
	tasks := []ParallelTask[string]{
		func() (string, error) { return "ok", nil },
		func() (string, error) { return "", boom },
	}

	results, errs := RunParallel(tasks)
	assert.Equal(t, "ok", results[0])
	assert.NoError(t, errs[0])
	assert.ErrorIs(t, errs[1], boom)
	assert.ErrorIs(t, FirstError(errs), boom)
}

func TestRunParallel_Empty(t *testing.T) {
	results, errs := RunParallel[int](nil)
	assert.Empty(t, results)
	assert.NoError(t, FirstError(errs))
}
