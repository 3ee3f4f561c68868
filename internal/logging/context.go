package logging

import (
	"context"
	"maps"
)

type fieldsKey struct{}

// ContextWithFields stores request-scoped fields (request id, route) on ctx.
// Loggers bound with WithContext further down the fetch path pick them up.
// Later values win on key collisions; nil values are dropped.
func ContextWithFields(ctx context.Context, fields map[string]any) context.Context {
	if ctx == nil || len(fields) == 0 {
		return ctx
	}
	merged := ContextFields(ctx)
	if merged == nil {
		merged = make(map[string]any, len(fields))
	}
	for key, value := range fields {
		if value != nil {
			merged[key] = value
		}
	}
	return context.WithValue(ctx, fieldsKey{}, merged)
}

// ContextFields returns a copy of the fields stored on ctx, or nil.
func ContextFields(ctx context.Context) map[string]any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(fieldsKey{}).(map[string]any)
	if len(fields) == 0 {
		return nil
	}
	return maps.Clone(fields)
}
