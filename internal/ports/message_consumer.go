package ports

import "context"

// MessageConsumer — фоновый потребитель снимков корзин.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
