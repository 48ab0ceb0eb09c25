// Package pipeline provides small lazy stream transformations used by
// the analytics models to sift sampled metrics: build a stream from a
// slice, filter and map it, then collect the survivors.
//
//	outliers, err := pipeline.Collect(ctx,
//		pipeline.Map(
//			pipeline.Filter(pipeline.FromSlice(windows), window.outOfRange),
//			annotate,
//		),
//	)
//
// Streams are single-use and pull-based. Nothing runs until Collect,
// and the first error (including context cancellation) ends the pull.
package pipeline
