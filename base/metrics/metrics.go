/*Package metrics wraps datadog-go to record service metrics.
Naming convention:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/farbarter/goapi/base/env"
)

// Ender is returned by BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// Option is functional parameter for metrics option
type Option func(*opt)

type opt struct {
	// withPodName means send metrics with pod name or not
	// default: true
	withPodName bool
}

// WithoutPodName drops the pod tag, use it for metrics that don't need to be
// grouped by pod.
func WithoutPodName() Option {
	return func(o *opt) {
		o.withPodName = false
	}
}

// New creates a metric client which prefixes every key with pkgName
func New(pkgName string, options ...Option) Service {
	o := opt{
		withPodName: true,
	}
	for _, option := range options {
		option(&o)
	}

	envName := viper.GetString("env_name")
	if envName == "" {
		envName = env.EnvName()
	}
	appName := viper.GetString("app_name")
	if appName == "" {
		appName = env.AppName()
	}

	// "host:" removes the host tag datadog attaches by default
	ddTags := []string{"host:", "env:" + envName, "app:" + appName}
	if o.withPodName {
		ddTags = append(ddTags, "pod:"+env.PodName())
	}

	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: ddTags,
		},
	}
}

// Metrics prefixes keys with the package name and shields callers from
// panics raised by the statsd client.
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

// bumpSumPanic records a panic raised while bumping a metric.
func (mt *Metrics) bumpSumPanic(key string, tags []string) {
	mt.datadog.BumpSum("bump.panic", 1, "tag", mt.key(key)+"#"+strings.Join(tags, "#"))
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer func() {
		if err := recover(); err != nil {
			mt.bumpSumPanic(key, tags)
		}
	}()
	mt.datadog.BumpAvg(mt.key(key), val, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer func() {
		if err := recover(); err != nil {
			mt.bumpSumPanic(key, tags)
		}
	}()
	mt.datadog.BumpSum(mt.key(key), val, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer func() {
		if err := recover(); err != nil {
			mt.bumpSumPanic(key, tags)
		}
	}()
	mt.datadog.BumpHistogram(mt.key(key), val, tags...)
}

// BumpTime starts a timer, End() records it:
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	ddEnd := mt.datadog.BumpTime(mt.key(key), tags...)
	return &timeTracker{
		ddEnd: ddEnd,
		panicHandler: func() {
			mt.bumpSumPanic(key, tags)
		},
	}
}

type timeTracker struct {
	ddEnd        Ender
	panicHandler func()
}

func (t *timeTracker) End() {
	defer func() {
		if err := recover(); err != nil {
			t.panicHandler()
		}
	}()
	t.ddEnd.End()
}
