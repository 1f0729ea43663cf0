package benchmark

import (
	"github.com/apathetic-tools/alog/core"
	"github.com/apathetic-tools/alog/handler"
)

// noopHandler measures the tree's dispatch overhead with formatting
// and stream writes taken out of the picture.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(e *core.Entry) error {
	_ = len(e.Message)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
