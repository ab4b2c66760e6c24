// Package metrics registers Prometheus collectors that may be built more than
// once against the same registry.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// CounterVec returns a counter vector registered on reg. If reg already holds
// a collector with the same descriptor, that collector is returned instead, so
// repeated construction against one registry shares the series. A nil reg
// returns an unregistered vector.
func CounterVec(reg prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	vec := prometheus.NewCounterVec(opts, labels)
	if reg == nil {
		return vec
	}

	if err := reg.Register(vec); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(err)
	}
	return vec
}
