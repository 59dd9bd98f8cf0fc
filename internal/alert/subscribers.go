package alert

import (
	"sync"

	"go.uber.org/zap"
)

// LogHandler writes every alert to logger at warn level.
func LogHandler(logger *zap.Logger) Handler {
	logger = logger.Named("alert")
	return func(message string) {
		logger.Warn("alert published", zap.String("message", message))
	}
}

// Collector keeps published messages in memory.
type Collector struct {
	mu       sync.Mutex
	messages []string
}

func (c *Collector) Handle(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message)
}

// Messages returns a copy of the collected messages.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.messages...)
}

// Drain returns the collected messages and forgets them.
func (c *Collector) Drain() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	messages := c.messages
	c.messages = nil
	return messages
}
