package http

import (
	"github.com/samirrijal/isonwater/internal/core/domain"
	"github.com/samirrijal/isonwater/internal/core/usecases"
)

// Dependencies holds everything the HTTP handlers need.
type Dependencies struct {
	Classifier *usecases.ClassifierService
	Rule       domain.CoordinateRule
	Options    Options
}

// Options tunes router behaviour.
type Options struct {
	HealthCheckPath string
	RateLimit       int // requests per minute per IP, 0 disables
	CacheMaxAge     int // seconds
}

func (o Options) healthPath() string {
	if o.HealthCheckPath == "" {
		return "/health"
	}
	return o.HealthCheckPath
}
