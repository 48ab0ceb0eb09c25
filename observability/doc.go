// Package observability provides OpenTelemetry tracing and metrics integration
// for the automation platform.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, observability.DefaultTracerConfig("automation"))
//	defer tp.Shutdown(ctx)
//
//	ctx, span := observability.StartSpan(ctx, observability.SpanWorkflowExecute)
//	defer span.End()
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, observability.DefaultMeterConfig("automation"))
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("automation"))
//	metrics.RecordOperation(ctx, "sales", "process_lead", "completed", duration)
//
// For lifecycle management, wrap both providers in a Telemetry component:
//
//	app.RegisterComponent(observability.NewTelemetry(cfg))
package observability
