// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/go-multierror"
)

// Job enques assignments for parallel processing and synchronous response
type Job struct {
	// MaxWorkers is the maximum number of workers processing a batch of tasks in parallel
	MaxWorkers int
	// MinWorkers is the minimum number of workers processing a batch of tasks in parallel
	MinWorkers int
	// Worker for processing tasks
	Worker Worker
	// FailFast controls the behavior of this Job upon errors. If set to true, it will quit
	// further processing upon the first error that occurs. For fault tolerant applications
	// use false.
	FailFast bool
}

// WorkerError wraps an underlying error struct and adds optional code
// to enrich the context of the error e.g. with HTTP status codes
type WorkerError struct {
	error
	code int
}

// NewWorkerError creates worker errors
func NewWorkerError(err error, code int) *WorkerError {
	return &WorkerError{
		err,
		code,
	}
}

// Code returns the error code, 0 if not set
func (we WorkerError) Code() int {
	return we.code
}

// Unwrap returns the underlying error
func (we WorkerError) Unwrap() error {
	return we.error
}

// Is implements the contract for errors.Is (https://golang.org/pkg/errors/#Is)
func (we WorkerError) Is(target error) bool {
	_target, ok := target.(WorkerError)
	if !ok {
		return false
	}
	return we.code == _target.code && errors.Is(we.error, _target.error)
}

// Worker declares workers functional interface
type Worker interface {
	// Work processes the task within the given context.
	Work(ctx context.Context, task interface{}) *WorkerError
}

// The WorkerFunc type is an adapter to allow the use of
// ordinary functions as Workers.
type WorkerFunc func(ctx context.Context, task interface{}) *WorkerError

// Work calls f(ctx, task).
func (f WorkerFunc) Work(ctx context.Context, task interface{}) *WorkerError {
	return f(ctx, task)
}

// Feeds tasks to the returned channel until all are sent or ctx is done. Context
// termination is reported on the error channel.
func (j *Job) allocate(ctx context.Context, tasks []interface{}) (<-chan interface{}, <-chan *WorkerError) {
	taskCh := make(chan interface{})
	errCh := make(chan *WorkerError, 1)
	go func() {
		defer close(taskCh)
		defer close(errCh)
		for _, task := range tasks {
			select {
			case taskCh <- task:
			case <-ctx.Done():
				errCh <- NewWorkerError(ctx.Err(), 0)
				return
			}
		}
	}()
	return taskCh, errCh
}

// Processes tasks until taskCh is closed or ctx is done. With FailFast the
// worker stops on its first error, otherwise it reports and carries on.
// wg is done when the worker returns.
func (j *Job) process(ctx context.Context, taskCh <-chan interface{}, wg *sync.WaitGroup) <-chan *WorkerError {
	errCh := make(chan *WorkerError, 1)
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(errCh)
		for {
			select {
			case task, ok := <-taskCh:
				if !ok {
					return
				}
				if err := j.Worker.Work(ctx, task); err != nil {
					errCh <- err
					if j.FailFast {
						return
					}
				}
			case <-ctx.Done():
				errCh <- NewWorkerError(ctx.Err(), 0)
				return
			}
		}
	}()
	return errCh
}

// Dispatch spawns a set of workers processing in parallel the supplied tasks.
// It returns when all tasks are processed, or on the first error when FailFast
// is set. Otherwise errors are aggregated in the returned WorkerError.
// On the first error with FailFast, the context passed to the workers is
// cancelled and Dispatch returns once every worker has returned.
func (j *Job) Dispatch(ctx context.Context, tasks []interface{}) *WorkerError {
	if j.MaxWorkers < j.MinWorkers {
		panic(fmt.Sprintf("Job maxWorkers < minWorkers: %d < %d", j.MaxWorkers, j.MinWorkers))
	}
	workersCount := len(tasks)
	if workersCount > j.MaxWorkers {
		workersCount = j.MaxWorkers
	}
	if workersCount < j.MinWorkers {
		workersCount = j.MinWorkers
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	taskCh, errc := j.allocate(ctx, tasks)
	errcList := []<-chan *WorkerError{errc}
	for i := 0; i < workersCount; i++ {
		errcList = append(errcList, j.process(ctx, taskCh, &wg))
	}
	err := waitForPipeline(j.FailFast, errcList...)
	cancel()
	wg.Wait()
	return err
}

// merges asynchronously produced errors from multiple error channels into a single channel
func mergeErrors(channels ...<-chan *WorkerError) <-chan *WorkerError {
	var wg sync.WaitGroup
	errCh := make(chan *WorkerError, len(channels))
	output := func(ch <-chan *WorkerError) {
		for err := range ch {
			errCh <- err
		}
		wg.Done()
	}
	wg.Add(len(channels))
	for _, ch := range channels {
		go output(ch)
	}
	go func() {
		wg.Wait()
		close(errCh)
	}()
	return errCh
}

// waitForPipeline waits for results from all error channels.
// It returns early on the first error if failFast is true or
// collects errors and returns an aggregated error at the end.
func waitForPipeline(failFast bool, errChs ...<-chan *WorkerError) *WorkerError {
	var errs *multierror.Error
	errCh := mergeErrors(errChs...)
	for err := range errCh {
		if err == nil {
			continue
		}
		if failFast {
			// release the remaining producers
			go func() {
				for range errCh {
				}
			}()
			return err
		}
		errs = multierror.Append(errs, err)
	}
	if err := errs.ErrorOrNil(); err != nil {
		return &WorkerError{error: err}
	}
	return nil
}
