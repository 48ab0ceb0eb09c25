// Package resilience bounds calls that can fail or flood.
//
// Retry wraps direct branch agent calls in capped exponential backoff:
//
//	report, err := resilience.Retry(ctx, resilience.DefaultRetryConfig(),
//		func() (marketing.LaunchReport, error) {
//			return mkt.LaunchCampaign(ctx, req)
//		})
//
// RateLimiter is the token bucket behind the HTTP server's per-client
// request limit.
package resilience
