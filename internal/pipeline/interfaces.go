package pipeline

// Processor is any stage that consumes and advances a PipelineContext.
type Processor interface {
	Process(ctx *PipelineContext) *PipelineContext
}
