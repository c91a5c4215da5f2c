package logging

import (
	"context"

	"go.uber.org/zap"
)

// LogAuditEvent logs a structured audit event for every state-changing
// operation: who acted, on what, and whether it succeeded.
func LogAuditEvent(
	ctx context.Context,
	action, userID, resourceType, resourceID, result string,
	details map[string]any,
) {
	fields := []zap.Field{
		zap.String("audit.action", action),
		zap.String("audit.user_id", userID),
		zap.String("audit.resource_type", resourceType),
		zap.String("audit.resource_id", resourceID),
		zap.String("audit.result", result),
	}
	if len(details) > 0 {
		fields = append(fields, zap.Any("audit.details", details))
	}
	LoggerFromContext(ctx).Info("Audit event", fields...)
}
