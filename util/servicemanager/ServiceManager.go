// Package servicemanager coordinates the lifecycle of the walletwatch services.
package servicemanager

import (
	"context"
	"os"
	"os/signal"
	"sort"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/walletwatch/walletwatch/ulogger"
)

// Service is the lifecycle contract every managed service implements.
type Service interface {
	Health(ctx context.Context, checkLiveness bool) (int, string, error)
	Init(ctx context.Context) error
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

type serviceWrapper struct {
	name     string
	instance Service
}

var (
	mu        sync.RWMutex
	listeners []string
)

// AddListenerInfo adds a listener description to the global listeners list.
func AddListenerInfo(name string) {
	mu.Lock()
	defer mu.Unlock()

	listeners = append(listeners, name)
}

// GetListenerInfos returns a sorted copy of all registered listener descriptions.
func GetListenerInfos() []string {
	mu.RLock()
	defer mu.RUnlock()

	sortedListeners := make([]string, len(listeners))
	copy(sortedListeners, listeners)
	sort.Strings(sortedListeners)

	return sortedListeners
}

type ServiceManager struct {
	services   []serviceWrapper
	logger     ulogger.Logger
	Ctx        context.Context
	cancelFunc context.CancelFunc
}

func NewServiceManager(ctx context.Context, logger ulogger.Logger) *ServiceManager {
	ctx, cancelFunc := context.WithCancel(ctx)

	sm := &ServiceManager{
		services:   make([]serviceWrapper, 0),
		logger:     logger,
		Ctx:        ctx,
		cancelFunc: cancelFunc,
	}

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

		<-sigs
		sm.logger.Infof("🟠 Received shutdown signal. Stopping services...")
		sm.cancelFunc()
	}()

	return sm
}

func (sm *ServiceManager) AddService(name string, service Service) {
	sm.services = append(sm.services, serviceWrapper{
		name:     name,
		instance: service,
	})
}

// StartAllAndWait starts all services and waits for them to complete or error.
// If any service errors, all other services are stopped gracefully in reverse
// registration order and the original error is returned.
func (sm *ServiceManager) StartAllAndWait() error {
	for _, service := range sm.services {
		select {
		case <-sm.Ctx.Done():
			return sm.Ctx.Err()

		default:
			sm.logger.Infof("♻️ Initializing service %s...", service.name)

			if err := service.instance.Init(sm.Ctx); err != nil {
				return err
			}
		}
	}

	g, ctx := errgroup.WithContext(sm.Ctx)

	for _, service := range sm.services {
		s := service

		select {
		case <-ctx.Done():
			return ctx.Err()

		default:
			sm.logger.Infof("🟢 Starting service %s...", s.name)

			g.Go(func() error {
				return s.instance.Start(ctx)
			})
		}
	}

	err := g.Wait()
	if err != nil {
		sm.logger.Errorf("Received error: %v", err)
	}

	for i := len(sm.services) - 1; i >= 0; i-- {
		service := sm.services[i]

		stopCtx, stopCancel := context.WithTimeout(context.Background(), 5*time.Second)

		sm.logger.Infof("🟠 Stopping service %s...", service.name)

		if stopErr := service.instance.Stop(stopCtx); stopErr != nil {
			sm.logger.Warnf("[%s] Failed to stop service: %v", service.name, stopErr)
		} else {
			sm.logger.Infof("[%s] Service stopped gracefully", service.name)
		}

		stopCancel()
	}

	sm.logger.Infof("🛑 All services stopped.")

	return err
}
