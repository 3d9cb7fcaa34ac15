// Package metrics defines the custom Prometheus metrics for the SyncHome
// API. It is the single source of truth for metric names, labels, and help
// strings; metrics register themselves with the default registry via
// promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "synchome"

// SessionsIssuedTotal counts session tokens minted at login.
var SessionsIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_issued_total",
		Help:      "Total number of session cookies issued.",
	},
)

// AuthRejectionsTotal counts requests rejected by the authorization pipeline.
// Label:
//   - stage: "verify" (missing/invalid token), "identity" (query/token email
//     mismatch) or "role" (insufficient persisted role)
var AuthRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_rejections_total",
		Help:      "Total requests rejected by the auth pipeline, by stage.",
	},
	[]string{"stage"},
)

// ReportsSubmittedTotal counts maintenance reports accepted for storage.
var ReportsSubmittedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_submitted_total",
		Help:      "Total number of maintenance reports submitted.",
	},
)

// ReportsDedupTotal counts duplicate-report checks.
// Label:
//   - result: "hit" (duplicate, rejected) or "miss" (new report, stored)
var ReportsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reports_dedup_total",
		Help:      "Total duplicate-report checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// DeviceSwitchesTotal counts device on/off toggles across all apartments.
// Label:
//   - state: "on" or "off"
var DeviceSwitchesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "device_switches_total",
		Help:      "Total apartment device toggles, by resulting state.",
	},
	[]string{"state"},
)
