package ports

import "context"

type Optimizer interface {
	Optimize(ctx context.Context, prompt string) (string, error)
}
