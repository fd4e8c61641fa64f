package closer

import (
	"context"
	"errors"
	"sync"

	"github.com/stroyteam/supplydesk/platform/logger"
)

type closeFn func(ctx context.Context) error

type named struct {
	name string
	fn   closeFn
}

type registry struct {
	mu  sync.Mutex
	fns []named
	log *logger.Logger
}

var global = &registry{}

func SetLogger(l *logger.Logger) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.log = l
}

func Add(fn closeFn) { AddNamed("", fn) }

func AddNamed(name string, fn closeFn) {
	global.mu.Lock()
	defer global.mu.Unlock()
	global.fns = append(global.fns, named{name: name, fn: fn})
}

// CloseAll runs the registered closers in LIFO order and joins their errors.
func CloseAll(ctx context.Context) error {
	global.mu.Lock()
	fns := global.fns
	global.fns = nil
	log := global.log
	global.mu.Unlock()

	var errs []error
	for i := len(fns) - 1; i >= 0; i-- {
		c := fns[i]
		if log != nil && c.name != "" {
			log.Info(ctx, "closing "+c.name)
		}
		if err := c.fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
