package utils

import (
	"context"

	"github.com/google/uuid"
	"github.com/mmdatafocus/inventory_reports/appctx"
)

var ContextKeyRunId = appctx.ContextKeyRunId

func GetRunIdFromContext(ctx context.Context) (string, bool) {
	return appctx.GetString(ctx, ContextKeyRunId)
}

func SetRunIdInContext(ctx context.Context, runId string) context.Context {
	return appctx.Set(ctx, ContextKeyRunId, runId)
}

// NewRunContext tags ctx with a fresh run id unless one is already present.
func NewRunContext(ctx context.Context) context.Context {
	if _, ok := GetRunIdFromContext(ctx); ok {
		return ctx
	}
	return SetRunIdInContext(ctx, uuid.NewString())
}
