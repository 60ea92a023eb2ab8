// Package utils holds small shared helpers.
package utils

import "sync"

// ParallelTask is a unit of work executed by RunParallel.
type ParallelTask[T any] func() (T, error)

// RunParallel executes all tasks concurrently and returns results and errors
// index-aligned with the input. Callers decide whether one failure fails the
// aggregate; batch uploads do.
func RunParallel[T any](tasks []ParallelTask[T]) ([]T, []error) {
	results := make([]T, len(tasks))
	errors := make([]error, len(tasks))

	var wg sync.WaitGroup
	wg.Add(len(tasks))
	for i, task := range tasks {
		go func(index int, t ParallelTask[T]) {
			defer wg.Done()
			results[index], errors[index] = t()
		}(i, task)
	}
	wg.Wait()

	return results, errors
}

// FirstError returns the first non-nil error, or nil.
func FirstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
