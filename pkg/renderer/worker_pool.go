package renderer

import (
	"context"
	"runtime"
	"sync"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ScanlineTask represents one image row to render
type ScanlineTask struct {
	Ctx         context.Context
	Row         int
	Framebuffer *core.Framebuffer // Owned by the Render call that submitted the task
}

// ScanlineResult contains the result from rendering a row
type ScanlineResult struct {
	Row     int
	Samples int64
	Skipped bool // The render was cancelled before this row started
}

// WorkerPool manages parallel scanline rendering
type WorkerPool struct {
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
	workers     []*Worker
	numWorkers  int
	wg          sync.WaitGroup
}

// Worker handles individual scanline tasks
type Worker struct {
	ID          int
	raytracer   *Raytracer
	taskQueue   chan ScanlineTask
	resultQueue chan ScanlineResult
}

// NewWorkerPool creates a worker pool for a raytracer.
// Queues are sized so that every row can be submitted without blocking.
func NewWorkerPool(rt *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	rows := rt.camera.Height()

	wp := &WorkerPool{
		taskQueue:   make(chan ScanlineTask, rows),
		resultQueue: make(chan ScanlineResult, rows),
		numWorkers:  numWorkers,
	}

	for i := 0; i < numWorkers; i++ {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			raytracer:   rt,
			taskQueue:   wp.taskQueue,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Stop closes the task queue, waits for workers to drain it and closes the result queue
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
	close(wp.resultQueue)
}

// SubmitTask submits a scanline task to the worker pool
func (wp *WorkerPool) SubmitTask(task ScanlineTask) {
	wp.taskQueue <- task
}

// Results returns the channel of completed rows; it is closed by Stop
func (wp *WorkerPool) Results() <-chan ScanlineResult {
	return wp.resultQueue
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for task := range w.taskQueue {
		// Cancellation is observed between scanlines only
		if task.Ctx.Err() != nil {
			w.resultQueue <- ScanlineResult{Row: task.Row, Skipped: true}
			continue
		}

		samples := w.raytracer.RenderScanline(task.Row, task.Framebuffer)
		w.resultQueue <- ScanlineResult{Row: task.Row, Samples: samples}
	}
}
