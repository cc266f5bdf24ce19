// Package workload builds the illustrative computations run by the minirt
// command: background jobs that block for a while and a root computation
// that yields once before doing its own blocking work.
package workload

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/viant/minirt/model/task"
)

// Sleep describes a job that blocks for Duration.
type Sleep struct {
	Name     string        `json:"name" yaml:"name"`
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// Config lists the demo jobs.
type Config struct {
	Background []Sleep `json:"background" yaml:"background"`
	Root       Sleep   `json:"root" yaml:"root"`
}

// DefaultConfig mirrors the classic demo: two background jobs of one and two
// seconds and a root that sleeps three seconds after yielding.
func DefaultConfig() Config {
	return Config{
		Background: []Sleep{
			{Name: "task one", Duration: time.Second},
			{Name: "task two", Duration: 2 * time.Second},
		},
		Root: Sleep{Name: "root", Duration: 3 * time.Second},
	}
}

// Validate returns an error describing the first invalid job.
func (c Config) Validate() error {
	for i, job := range c.Background {
		if job.Name == "" {
			return fmt.Errorf("workloads.background[%d].name is required", i)
		}
		if job.Duration < 0 {
			return fmt.Errorf("workloads.background[%d].duration must be >= 0", i)
		}
	}
	if c.Root.Duration < 0 {
		return fmt.Errorf("workloads.root.duration must be >= 0")
	}
	return nil
}

// Program builds computations that report their steps to a writer.
type Program struct {
	mu  sync.Mutex
	out io.Writer
}

// New creates a program writing to out.
func New(out io.Writer) *Program {
	return &Program{out: out}
}

func (p *Program) printf(format string, args ...interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.out, format+"\n", args...)
}

// Background returns a task that announces itself, blocks for job.Duration
// and announces completion, all within a single resume.
func (p *Program) Background(job Sleep) task.Task {
	return task.Then[task.Unit, task.Unit](p.announce("%s: start", job.Name), func(task.Unit) task.Future[task.Unit] {
		return task.Then[task.Unit, task.Unit](task.Sleep(job.Duration), func(task.Unit) task.Future[task.Unit] {
			return p.announce("%s: done", job.Name)
		})
	})
}

// Root returns the root computation: it announces the start of the run,
// yields once so queued jobs get a turn, then blocks for job.Duration.
func (p *Program) Root(job Sleep) task.Future[time.Duration] {
	var started time.Time
	begin := task.Blocking(func(context.Context) task.Unit {
		started = time.Now()
		p.printf("Runtime started...")
		return task.Unit{}
	})
	return task.Then[task.Unit, time.Duration](begin, func(task.Unit) task.Future[time.Duration] {
		return task.Then[task.Unit, time.Duration](task.YieldNow(), func(task.Unit) task.Future[time.Duration] {
			return task.Then[task.Unit, time.Duration](task.Sleep(job.Duration), func(task.Unit) task.Future[time.Duration] {
				elapsed := time.Since(started)
				p.printf("%s: done after %s", job.Name, elapsed.Round(time.Millisecond))
				return task.Completed(elapsed)
			})
		})
	})
}

func (p *Program) announce(format string, args ...interface{}) task.Future[task.Unit] {
	return task.Blocking(func(context.Context) task.Unit {
		p.printf(format, args...)
		return task.Unit{}
	})
}
