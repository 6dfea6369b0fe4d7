// Copyright 2024 The dtparse Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package observability

import (
	"context"

	"github.com/opentracing/opentracing-go"
)

// StartParseSpan opens a child span named "dtparse.Parse" under the
// context's current span (if any) using the process-wide global tracer
// registered via opentracing.SetGlobalTracer. Callers finish the span
// themselves so they can attach an error tag on failure.
func StartParseSpan(ctx context.Context, pattern string) (opentracing.Span, context.Context) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "dtparse.Parse")
	span.SetTag("dtparse.pattern", pattern)
	return span, ctx
}

// TagOutcome marks span with the parse outcome, setting the standard
// opentracing error tag on failure.
func TagOutcome(span opentracing.Span, consumed int) {
	span.SetTag("dtparse.consumed", consumed)
	if consumed == 0 {
		span.SetTag("error", true)
	}
}
