package funcz

// ThreadStep is one stage of ThreadFirst or ThreadLast: a Callable plus any
// extra arguments supplied alongside the threaded value.
type ThreadStep struct {
	c     Callable
	extra []any
}

// Step pairs a Callable with extra trailing arguments for use in
// ThreadFirst or ThreadLast. A bare step is Step(c) with no extras.
func Step(c Callable, extra ...any) ThreadStep {
	return ThreadStep{c: c, extra: extra}
}

// ThreadFirst threads value through the steps as the first positional
// argument of each: the value (initially the input, then each step's
// result) is inserted before the step's extra arguments.
//
//	// Equivalent to div(add(5, 2), 10):
//	v, err := funcz.ThreadFirst(5,
//	    funcz.Step(add, 2),
//	    funcz.Step(div, 10),
//	)
//
// The first error stops the thread; caller errors propagate unchanged.
func ThreadFirst(value any, steps ...ThreadStep) (any, error) {
	v := value
	for _, step := range steps {
		args := make([]any, 0, len(step.extra)+1)
		args = append(args, v)
		args = append(args, step.extra...)
		var err error
		v, err = step.c.Call(args...)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// ThreadLast threads value through the steps as the last positional
// argument of each: the step's extra arguments come first, the threaded
// value last.
//
//	// Equivalent to div(10, add(2, 5)):
//	v, err := funcz.ThreadLast(5,
//	    funcz.Step(add, 2),
//	    funcz.Step(div, 10),
//	)
func ThreadLast(value any, steps ...ThreadStep) (any, error) {
	v := value
	for _, step := range steps {
		args := make([]any, 0, len(step.extra)+1)
		args = append(args, step.extra...)
		args = append(args, v)
		var err error
		v, err = step.c.Call(args...)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}
