package observers

import (
	"context"
	"time"

	einocb "github.com/cloudwego/eino/callbacks"

	logx "github.com/wanderlust-ai/server/pkg/logger"
)

type startKey struct{}

// NewAllCallbacks logs every node run of the turn graph with its duration.
func NewAllCallbacks() einocb.Handler {
	return einocb.NewHandlerBuilder().
		OnStartFn(onStart).
		OnEndFn(onEnd).
		OnErrorFn(onError).
		Build()
}

func onStart(ctx context.Context, info *einocb.RunInfo, _ einocb.CallbackInput) context.Context {
	return context.WithValue(ctx, startKey{}, time.Now())
}

func onEnd(ctx context.Context, info *einocb.RunInfo, _ einocb.CallbackOutput) context.Context {
	logx.Debug().
		Str("node", nodeName(info)).
		Str("component", componentName(info)).
		Dur("took", elapsed(ctx)).
		Msg("node finished")
	return ctx
}

func onError(ctx context.Context, info *einocb.RunInfo, err error) context.Context {
	logx.Error().
		Err(err).
		Str("node", nodeName(info)).
		Str("component", componentName(info)).
		Dur("took", elapsed(ctx)).
		Msg("node failed")
	return ctx
}

func elapsed(ctx context.Context) time.Duration {
	if start, ok := ctx.Value(startKey{}).(time.Time); ok {
		return time.Since(start)
	}
	return 0
}

func nodeName(info *einocb.RunInfo) string {
	if info == nil {
		return ""
	}
	return info.Name
}

func componentName(info *einocb.RunInfo) string {
	if info == nil {
		return ""
	}
	return string(info.Component)
}
