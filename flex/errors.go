package flex

import "errors"

var (
	// ErrNilFunction indicates a nil f0, f1 or f2.
	ErrNilFunction = errors.New("flex: density functions must be non-nil")
	// ErrPointCount indicates fewer than two partition points.
	ErrPointCount = errors.New("flex: need at least two partition points")
	// ErrNonMonotonePoints indicates points that are NaN or not strictly increasing.
	ErrNonMonotonePoints = errors.New("flex: partition points must be strictly increasing")
	// ErrInteriorInfinite indicates an infinite point that is not the first or last.
	ErrInteriorInfinite = errors.New("flex: only the outermost partition points may be infinite")
	// ErrCsLength indicates a cs slice that is neither length 1 nor |points|-1.
	ErrCsLength = errors.New("flex: cs must have one entry per interval, or a single broadcast entry")
	// ErrBadC indicates a NaN or infinite transformation parameter.
	ErrBadC = errors.New("flex: transformation parameters must be finite")
	// ErrUnboundedC indicates c ≤ -1 on an interval with an infinite endpoint,
	// for which the hat integral diverges.
	ErrUnboundedC = errors.New("flex: c must be greater than -1 next to an unbounded endpoint")
	// ErrRho indicates a target efficiency that is NaN, infinite or ≤ 1.
	ErrRho = errors.New("flex: rho must be finite and greater than 1")
	// ErrOptions indicates non-positive MaxPoints or MaxIterations.
	ErrOptions = errors.New("flex: MaxPoints and MaxIterations must be positive")
	// ErrNonFiniteDensity indicates f0 returned NaN at a finite partition point.
	ErrNonFiniteDensity = errors.New("flex: log-density is NaN at a partition point")
	// ErrUnsupportedPartition indicates an interval whose transformed density
	// is neither concave, convex, nor split by a single inflection point —
	// the initial partition violates the algorithm's precondition.
	ErrUnsupportedPartition = errors.New("flex: interval shape unsupported; refine the initial partition")

	// ErrEfficiencyNotReached is a warning, not a failure: the iteration or
	// point budget ran out with Σhat/Σsqueeze still above rho. The returned
	// sampler is valid (the hat still majorizes the density), just less
	// efficient than requested. Callers that care should errors.Is for it.
	ErrEfficiencyNotReached = errors.New("flex: target efficiency not reached within budget")
)
