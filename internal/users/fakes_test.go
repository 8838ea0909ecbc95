package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/userholder/internal/cryptox"
)

type delivery struct {
	phone string
	code  string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []delivery
	err  error
}

func (n *recordingNotifier) Deliver(_ context.Context, phone, code string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, delivery{phone: phone, code: code})
	return n.err
}

func (n *recordingNotifier) last() delivery {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.sent[len(n.sent)-1]
}

// sequentialCodes returns "code01", "code02", ...
func sequentialCodes() CodeSource {
	var mu sync.Mutex
	n := 0
	return func() (string, error) {
		mu.Lock()
		defer mu.Unlock()
		n++
		return fmt.Sprintf("code%02d", n), nil
	}
}

func newTestFactory(n Notifier, opts ...Option) *Factory {
	return NewFactory(cryptox.MD5Hasher{}, n, opts...)
}
