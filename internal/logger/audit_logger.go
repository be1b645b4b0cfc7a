// Package logger provides audit logging.
package logger

import (
	"github.com/sirupsen/logrus"
)

// AuditLogger provides a dedicated audit trail for parlay evaluations.
type AuditLogger struct {
	*logrus.Entry
}

// NewAuditLogger creates a new audit logger.
func NewAuditLogger(baseLogger *logrus.Logger) *AuditLogger {
	return &AuditLogger{
		Entry: baseLogger.WithField("component", "audit"),
	}
}

// LogEvaluationStart records the start of an evaluation run.
func (al *AuditLogger) LogEvaluationStart(runID string, legCount int, stake float64, liveData bool) {
	al.WithFields(logrus.Fields{
		"run_id":    runID,
		"leg_count": legCount,
		"stake":     stake,
		"live_data": liveData,
	}).Info("Parlay evaluation started")
}

// LogAdjustment records an adjuster changing a leg's probability.
func (al *AuditLogger) LogAdjustment(runID, legID, adjusterName string, before, after float64) {
	al.WithFields(logrus.Fields{
		"run_id":   runID,
		"leg_id":   legID,
		"adjuster": adjusterName,
		"before":   before,
		"after":    after,
	}).Info("Leg probability adjusted")
}

// LogDataSourceFailure records a degraded external feed; evaluation proceeds
// without the signal.
func (al *AuditLogger) LogDataSourceFailure(runID, source string, err error) {
	al.WithFields(logrus.Fields{
		"run_id": runID,
		"source": source,
	}).WithError(err).Warn("Data source unavailable, continuing with fewer adjustments")
}

// LogVerdict records the final verdict for an evaluation run.
func (al *AuditLogger) LogVerdict(runID, verdict string, overallScore float64, expectedValue *float64) {
	fields := logrus.Fields{
		"run_id":        runID,
		"verdict":       verdict,
		"overall_score": overallScore,
	}
	if expectedValue != nil {
		fields["expected_value"] = *expectedValue
	}
	al.WithFields(fields).Info("Parlay verdict recorded")
}
