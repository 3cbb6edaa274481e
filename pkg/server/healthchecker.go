package server

import "context"

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// HealthCheckers is healthy only when every member is.
type HealthCheckers []HealthChecker

func (hcs HealthCheckers) Healthy(ctx context.Context) bool {
	for _, hc := range hcs {
		if hc != nil && !hc.Healthy(ctx) {
			return false
		}
	}
	return true
}
