package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/thiagothgb/gostack-mobile-2020/internal/pkg/constvars"
	"go.uber.org/zap"
)

// Screen is one interactive page. Render blocks until the screen is
// done with the user; navigation happens through the Navigator it was
// built with.
type Screen interface {
	Name() string
	Render(ctx context.Context, params map[string]interface{}) error
}

type stackEntry struct {
	name   string
	params map[string]interface{}
}

// StackNavigator drives the screen stack: Navigate pushes, GoBack
// pops, and Run re-renders whatever is on top until the stack drains.
type StackNavigator struct {
	Log *zap.Logger

	mu      sync.Mutex
	screens map[string]Screen
	stack   []stackEntry
	moved   bool
}

func NewStackNavigator(log *zap.Logger) *StackNavigator {
	return &StackNavigator{
		Log:     log,
		screens: make(map[string]Screen),
	}
}

func (n *StackNavigator) Register(screen Screen) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.screens[screen.Name()] = screen
}

func (n *StackNavigator) Navigate(screen string, params map[string]interface{}) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stack = append(n.stack, stackEntry{name: screen, params: params})
	n.moved = true
}

func (n *StackNavigator) GoBack() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.stack) > 0 {
		n.stack = n.stack[:len(n.stack)-1]
	}
	n.moved = true
}

// Run renders from initial until every screen has been popped. A
// render that finishes without navigating counts as going back.
func (n *StackNavigator) Run(ctx context.Context, initial string, params map[string]interface{}) error {
	n.mu.Lock()
	n.stack = []stackEntry{{name: initial, params: params}}
	n.mu.Unlock()

	for {
		n.mu.Lock()
		if len(n.stack) == 0 {
			n.mu.Unlock()
			return nil
		}
		top := n.stack[len(n.stack)-1]
		screen, ok := n.screens[top.name]
		n.moved = false
		n.mu.Unlock()

		if !ok {
			return fmt.Errorf("unknown screen: %s", top.name)
		}

		n.Log.Debug("StackNavigator rendering",
			zap.String(constvars.LoggingScreenKey, top.name))
		if err := screen.Render(ctx, top.params); err != nil {
			return err
		}

		n.mu.Lock()
		if !n.moved && len(n.stack) > 0 {
			n.stack = n.stack[:len(n.stack)-1]
		}
		n.mu.Unlock()
	}
}
