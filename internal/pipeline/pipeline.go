package pipeline

// Pipeline represents a sequence of processing stages.
type Pipeline struct {
	processors []Processor
}

func New(processors ...Processor) *Pipeline {
	return &Pipeline{processors: processors}
}

// Run executes each stage in order, short-circuiting the remaining
// stages once one reports a fatal error: a scan or parse failure leaves
// nothing for later stages to act on.
func (p *Pipeline) Run(initialCtx *PipelineContext) *PipelineContext {
	ctx := initialCtx
	for _, processor := range p.processors {
		if ctx.FatalErr != nil {
			break
		}
		ctx = processor.Process(ctx)
	}
	return ctx
}

// Standard returns the scan -> parse -> check pipeline used by the
// stackcheck driver.
func Standard() *Pipeline {
	return New(ScanProcessor{}, ParseProcessor{}, CheckProcessor{})
}
