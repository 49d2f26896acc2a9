package parallel

import (
	"fmt"
	"sync"
)

func CreateJobQueue(queueSize int, poolSize int) *JobQueue {

	group := &JobQueue{
		jobsChannel: make(chan func() error, queueSize),
		waitGroup:   &sync.WaitGroup{},
	}

	for i := 1; i <= poolSize; i++ {
		go group.worker()
	}
	return group
}

// JobQueue runs jobs on a fixed pool of workers and remembers the first
// job error.
type JobQueue struct {
	jobsChannel chan func() error
	waitGroup   *sync.WaitGroup
	errOnce     sync.Once
	err         error
}

func (queue *JobQueue) Add(function func() error) error {
	if function == nil {
		return fmt.Errorf("nil function")
	}

	queue.waitGroup.Add(1)
	queue.jobsChannel <- function
	return nil
}

// Wait blocks until every added job has finished and returns the first
// error any of them returned.
func (queue *JobQueue) Wait() error {
	queue.waitGroup.Wait()
	return queue.err
}

func (queue *JobQueue) Close() {
	close(queue.jobsChannel)
}

func (queue *JobQueue) worker() {
	for job := range queue.jobsChannel {
		err := job()
		if err != nil {
			queue.errOnce.Do(func() {
				queue.err = err
			})
		}
		queue.waitGroup.Done()
	}
}
