// Package minirt provides a minimal cooperative task executor together with
// the configuration, logging, metrics and tracing needed to embed it.
//
// The executor itself lives in runtime/executor and drives computations
// defined in model/task.  The root package wires an executor from a Config:
//
//	cfg, _ := minirt.LoadConfig(ctx, "config.yaml")
//	rt, _ := minirt.New(cfg)
//	rt.Submit(ctx, task.Sleep(time.Second))
//	elapsed := executor.Drive(ctx, rt.Executor(), root)
//
// Drive returns as soon as the root computation completes; background tasks
// still queued at that point are abandoned.
package minirt
