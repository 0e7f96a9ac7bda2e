package logger

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogComponent represents different system components for filtering
type LogComponent string

const (
	ComponentAPI          LogComponent = "api"
	ComponentDB           LogComponent = "database"
	ComponentAuth         LogComponent = "auth"
	ComponentEmail        LogComponent = "email"
	ComponentNotification LogComponent = "notification"
	ComponentQueue        LogComponent = "queue"
	ComponentMiddleware   LogComponent = "middleware"
	ComponentServer       LogComponent = "server"
	ComponentWorker       LogComponent = "worker"
)

// LogContext holds structured context information for logs
type LogContext struct {
	InvestorID    string
	AccountID     string
	CorrelationID string
	RequestID     string
	Component     LogComponent
	Operation     string
	Duration      time.Duration
	Fields        map[string]interface{}
}

// StructuredLogger provides enhanced logging with structured context
type StructuredLogger struct {
	logger    *zap.Logger
	component LogComponent
	context   LogContext
}

// NewStructuredLogger creates a new structured logger for a specific component
func NewStructuredLogger(component LogComponent) *StructuredLogger {
	return &StructuredLogger{
		logger:    Log,
		component: component,
		context:   LogContext{Component: component, Fields: make(map[string]interface{})},
	}
}

// WithField adds a field to the log context
func (sl *StructuredLogger) WithField(key string, value interface{}) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Fields[key] = value
	return newLogger
}

// WithFields adds multiple fields to the log context
func (sl *StructuredLogger) WithFields(fields map[string]interface{}) *StructuredLogger {
	newLogger := sl.clone()
	for k, v := range fields {
		newLogger.context.Fields[k] = v
	}
	return newLogger
}

// WithInvestorID adds investor ID to the log context
func (sl *StructuredLogger) WithInvestorID(investorID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.InvestorID = investorID
	return newLogger
}

// WithAccountID adds account ID to the log context
func (sl *StructuredLogger) WithAccountID(accountID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.AccountID = accountID
	return newLogger
}

// WithCorrelationID adds correlation ID to the log context
func (sl *StructuredLogger) WithCorrelationID(correlationID string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.CorrelationID = correlationID
	return newLogger
}

// WithOperation adds operation name to the log context
func (sl *StructuredLogger) WithOperation(operation string) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Operation = operation
	return newLogger
}

// WithDuration adds duration to the log context
func (sl *StructuredLogger) WithDuration(duration time.Duration) *StructuredLogger {
	newLogger := sl.clone()
	newLogger.context.Duration = duration
	return newLogger
}

// clone creates a copy of the structured logger
func (sl *StructuredLogger) clone() *StructuredLogger {
	newFields := make(map[string]interface{})
	for k, v := range sl.context.Fields {
		newFields[k] = v
	}

	return &StructuredLogger{
		logger:    sl.logger,
		component: sl.component,
		context: LogContext{
			InvestorID:    sl.context.InvestorID,
			AccountID:     sl.context.AccountID,
			CorrelationID: sl.context.CorrelationID,
			RequestID:     sl.context.RequestID,
			Component:     sl.context.Component,
			Operation:     sl.context.Operation,
			Duration:      sl.context.Duration,
			Fields:        newFields,
		},
	}
}

// buildFields creates zap fields from the log context
func (sl *StructuredLogger) buildFields() []zapcore.Field {
	fields := make([]zapcore.Field, 0)

	if sl.context.Component != "" {
		fields = append(fields, zap.String("component", string(sl.context.Component)))
	}
	if sl.context.InvestorID != "" {
		fields = append(fields, zap.String("investor_id", sl.context.InvestorID))
	}
	if sl.context.AccountID != "" {
		fields = append(fields, zap.String("account_id", sl.context.AccountID))
	}
	if sl.context.CorrelationID != "" {
		fields = append(fields, zap.String("correlation_id", sl.context.CorrelationID))
	}
	if sl.context.RequestID != "" {
		fields = append(fields, zap.String("request_id", sl.context.RequestID))
	}
	if sl.context.Operation != "" {
		fields = append(fields, zap.String("operation", sl.context.Operation))
	}
	if sl.context.Duration > 0 {
		fields = append(fields, zap.Duration("duration", sl.context.Duration))
	}

	for key, value := range sl.context.Fields {
		fields = append(fields, zap.Any(key, value))
	}

	return fields
}

// Debug logs a debug message with structured context
func (sl *StructuredLogger) Debug(msg string) {
	sl.logger.Debug(msg, sl.buildFields()...)
}

// Info logs an info message with structured context
func (sl *StructuredLogger) Info(msg string) {
	sl.logger.Info(msg, sl.buildFields()...)
}

// Warn logs a warning message with structured context
func (sl *StructuredLogger) Warn(msg string) {
	sl.logger.Warn(msg, sl.buildFields()...)
}

// Error logs an error message with structured context
func (sl *StructuredLogger) Error(msg string, err error) {
	fields := sl.buildFields()
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	sl.logger.Error(msg, fields...)
}

// LogOperation logs the start and end of an operation with timing
func (sl *StructuredLogger) LogOperation(operation string, fn func() error) error {
	start := time.Now()
	opLogger := sl.WithOperation(operation)

	opLogger.Info("Operation started")

	err := fn()
	duration := time.Since(start)

	finalLogger := opLogger.WithDuration(duration)

	if err != nil {
		finalLogger.Error("Operation failed", err)
	} else {
		finalLogger.Info("Operation completed")
	}

	return err
}

// LogNotificationEvent logs notification delivery events
func (sl *StructuredLogger) LogNotificationEvent(kind, recipient, status string) {
	sl.WithFields(map[string]interface{}{
		"notification_kind": kind,
		"recipient":         recipient,
		"status":            status,
	}).Info("Notification event occurred")
}

// LogQueueEvent logs queue message handling events
func (sl *StructuredLogger) LogQueueEvent(eventType string, processed bool, processingTime time.Duration) {
	sl.WithFields(map[string]interface{}{
		"event_type":          eventType,
		"processed":           processed,
		"processing_duration": processingTime,
	}).WithDuration(processingTime).Info("Queue event processed")
}

// LogAuthEvent logs authentication-related events
func (sl *StructuredLogger) LogAuthEvent(action, subject string, success bool, reason string) {
	sl.WithFields(map[string]interface{}{
		"auth_action": action,
		"subject":     subject,
		"success":     success,
		"reason":      reason,
	}).Info("Authentication event occurred")
}

// Timer helps measure operation duration
type Timer struct {
	start  time.Time
	logger *StructuredLogger
	name   string
}

// NewTimer creates a new timer for measuring operation duration
func (sl *StructuredLogger) NewTimer(operationName string) *Timer {
	return &Timer{
		start:  time.Now(),
		logger: sl,
		name:   operationName,
	}
}

// Stop stops the timer and logs the duration
func (t *Timer) Stop() {
	duration := time.Since(t.start)
	t.logger.WithOperation(t.name).WithDuration(duration).Debug("Operation timing")
}

// StopWithResult stops the timer and logs the result
func (t *Timer) StopWithResult(success bool, err error) {
	duration := time.Since(t.start)
	logger := t.logger.WithOperation(t.name).WithDuration(duration).WithField("success", success)

	if success {
		logger.Info(fmt.Sprintf("%s completed successfully", t.name))
	} else {
		logger.Error(fmt.Sprintf("%s failed", t.name), err)
	}
}
