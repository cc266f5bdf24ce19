package executor_test

import (
	"context"
	"fmt"

	"github.com/viant/minirt/model/task"
	"github.com/viant/minirt/runtime/executor"
)

func say(msg string) task.Task {
	return task.Blocking(func(context.Context) task.Unit {
		fmt.Println(msg)
		return task.Unit{}
	})
}

func Example() {
	ctx := context.Background()
	e := executor.New()
	e.Submit(ctx, say("task one"))
	e.Submit(ctx, say("task two"))

	root := task.Then[task.Unit, string](task.YieldNow(), func(task.Unit) task.Future[string] {
		fmt.Println("root resumed")
		return task.Completed("done")
	})
	fmt.Println("started")
	fmt.Println(executor.Drive(ctx, e, root))
	// Output:
	// started
	// task one
	// task two
	// root resumed
	// done
}

func Example_abandoned() {
	ctx := context.Background()
	e := executor.New()
	e.Submit(ctx, say("never printed"))

	fmt.Println(executor.Drive(ctx, e, task.Completed(42)))
	fmt.Println(e.Len())
	// Output:
	// 42
	// 0
}
