package store

import (
	metrics "github.com/docker/go-metrics"
)

var (
	ns = metrics.NewNamespace("ibmap", "store", nil)

	viewLatency    = ns.NewTimer("view_latency", "Time spent in read transactions")
	updateLatency  = ns.NewTimer("update_latency", "Time spent in update transactions")
	persistLatency = ns.NewTimer("persist_latency", "Time spent writing changes to disk")
)

func init() {
	metrics.Register(ns)
}
