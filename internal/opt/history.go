package opt

import "context"

// AppendRepeat добавляет n копий cost в историю.
func AppendRepeat(history []float64, cost float64, n int) []float64 {
	for i := 0; i < n; i++ {
		history = append(history, cost)
	}
	return history
}

// ProgressFunc вызывается алгоритмом при каждом улучшении.
type ProgressFunc func(iter int, cost float64)

type progressKey struct{}

// WithProgress возвращает контекст с обработчиком прогресса.
func WithProgress(ctx context.Context, fn ProgressFunc) context.Context {
	return context.WithValue(ctx, progressKey{}, fn)
}

// ReportProgress передаёт улучшение обработчику из контекста, если он задан.
func ReportProgress(ctx context.Context, iter int, cost float64) {
	if fn, ok := ctx.Value(progressKey{}).(ProgressFunc); ok && fn != nil {
		fn(iter, cost)
	}
}
