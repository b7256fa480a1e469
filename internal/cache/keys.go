package cache

import "strings"

const (
	GlobalKeyPrefix = "qpaper"
)

// GenerateCacheKey builds "qpaper:{service}:{objectType}:{identifier}".
// Extra params are joined by "_" and appended as a final segment.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	baseKey := strings.Join([]string{GlobalKeyPrefix, serviceName, objectType, identifier}, ":")
	if len(paramsKey) > 0 {
		return strings.Join([]string{baseKey, strings.Join(paramsKey, "_")}, ":")
	}
	return baseKey
}

// WorkspaceKey is the key of the workspace snapshot of a session.
func WorkspaceKey(sessionID string) string {
	return GenerateCacheKey("session", "workspace", sessionID)
}
