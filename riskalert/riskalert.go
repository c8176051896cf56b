// Package riskalert turns a simtypes.MetricsSummary into a bounded,
// thread-safe feed of threshold-breach alerts, adapted from the
// teacher's notification.NotificationManager: same ring-buffer-by-
// trim, reverse-chronological, RWMutex-guarded shape, repointed at
// risk metrics instead of trading signals (spec.md's supplemented
// "outer surface" features — this package has no opinion on how a
// caller delivers an alert, only on what qualifies as one).
package riskalert

import (
	"fmt"
	"sync"
	"time"

	"github.com/quantrisk/portfolio-stress/simtypes"
)

// Severity defines how urgently an alert should be surfaced.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Kind identifies which metric breached its threshold.
type Kind string

const (
	KindProbabilityOfRuin Kind = "probability_of_ruin"
	KindCVaR              Kind = "cvar_95"
	KindMaxDrawdown       Kind = "max_drawdown"
)

// Alert is one threshold breach surfaced from a SimulationResult.
type Alert struct {
	ID        string
	Kind      Kind
	Severity  Severity
	Title     string
	Message   string
	Value     float64
	Threshold float64
	Timestamp time.Time
}

// Thresholds configures when Evaluate should raise an Alert.
type Thresholds struct {
	// ProbabilityOfRuinWarning/Critical are the fraction of paths
	// breaching the request's ruin threshold at which a warning or
	// critical alert fires.
	ProbabilityOfRuinWarning  float64
	ProbabilityOfRuinCritical float64
	// CVaR95Floor is the terminal-wealth level below which a CVaR95
	// breach is raised (expressed in the same units as the portfolio).
	CVaR95Floor float64
	// MaxDrawdownWarning/Critical are mean max-drawdown fractions.
	MaxDrawdownWarning  float64
	MaxDrawdownCritical float64
}

// DefaultThresholds returns reasonable defaults for a retail-scale
// stress test: 5%/15% probability of ruin, 30%/50% mean drawdown.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ProbabilityOfRuinWarning:  0.05,
		ProbabilityOfRuinCritical: 0.15,
		MaxDrawdownWarning:        0.30,
		MaxDrawdownCritical:       0.50,
	}
}

// Manager holds a bounded, reverse-chronological feed of alerts.
type Manager struct {
	alerts    []Alert
	maxAlerts int
	mutex     sync.RWMutex
}

// NewManager constructs a Manager retaining at most maxAlerts entries.
func NewManager(maxAlerts int) *Manager {
	return &Manager{maxAlerts: maxAlerts}
}

// Evaluate inspects a MetricsSummary against thresholds and records
// any breaches, returning the alerts it raised (if any).
func (m *Manager) Evaluate(metrics simtypes.MetricsSummary, thresholds Thresholds, evaluatedAt time.Time) []Alert {
	var raised []Alert

	if metrics.RuinThreshold != nil {
		if sev, ok := severityFor(metrics.ProbabilityOfRuin, thresholds.ProbabilityOfRuinWarning, thresholds.ProbabilityOfRuinCritical); ok {
			raised = append(raised, Alert{
				ID:        generateID(evaluatedAt, len(raised)),
				Kind:      KindProbabilityOfRuin,
				Severity:  sev,
				Title:     "Elevated probability of ruin",
				Message:   fmt.Sprintf("probability of ruin is %.1f%%, exceeding the %.1f%% threshold", metrics.ProbabilityOfRuin*100, thresholds.ProbabilityOfRuinWarning*100),
				Value:     metrics.ProbabilityOfRuin,
				Threshold: thresholds.ProbabilityOfRuinWarning,
				Timestamp: evaluatedAt,
			})
		}
	}

	if thresholds.CVaR95Floor > 0 && metrics.CVaR95 < thresholds.CVaR95Floor {
		raised = append(raised, Alert{
			ID:        generateID(evaluatedAt, len(raised)),
			Kind:      KindCVaR,
			Severity:  SeverityWarning,
			Title:     "CVaR95 below floor",
			Message:   fmt.Sprintf("worst-5%% mean terminal wealth %.2f is below the floor of %.2f", metrics.CVaR95, thresholds.CVaR95Floor),
			Value:     metrics.CVaR95,
			Threshold: thresholds.CVaR95Floor,
			Timestamp: evaluatedAt,
		})
	}

	if sev, ok := severityFor(metrics.MaxDrawdownMean, thresholds.MaxDrawdownWarning, thresholds.MaxDrawdownCritical); ok {
		raised = append(raised, Alert{
			ID:        generateID(evaluatedAt, len(raised)),
			Kind:      KindMaxDrawdown,
			Severity:  sev,
			Title:     "Elevated mean max drawdown",
			Message:   fmt.Sprintf("mean max drawdown is %.1f%%, exceeding the %.1f%% threshold", metrics.MaxDrawdownMean*100, thresholds.MaxDrawdownWarning*100),
			Value:     metrics.MaxDrawdownMean,
			Threshold: thresholds.MaxDrawdownWarning,
			Timestamp: evaluatedAt,
		})
	}

	if len(raised) > 0 {
		m.add(raised)
	}
	return raised
}

func severityFor(value, warning, critical float64) (Severity, bool) {
	switch {
	case critical > 0 && value >= critical:
		return SeverityCritical, true
	case warning > 0 && value >= warning:
		return SeverityWarning, true
	default:
		return "", false
	}
}

func (m *Manager) add(alerts []Alert) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.alerts = append(alerts, m.alerts...)
	if len(m.alerts) > m.maxAlerts {
		m.alerts = m.alerts[:m.maxAlerts]
	}
}

// All returns a copy of every retained alert, most recent first.
func (m *Manager) All() []Alert {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	out := make([]Alert, len(m.alerts))
	copy(out, m.alerts)
	return out
}

// BySeverity returns the retained alerts matching severity.
func (m *Manager) BySeverity(severity Severity) []Alert {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var filtered []Alert
	for _, a := range m.alerts {
		if a.Severity == severity {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// Clear discards all retained alerts.
func (m *Manager) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.alerts = nil
}

func generateID(t time.Time, offset int) string {
	return fmt.Sprintf("%d-%d", t.UnixNano(), offset)
}
