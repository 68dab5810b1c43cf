// Package observability turns session lifecycle events into logs, Prometheus
// metrics and OpenTelemetry spans. Every producer returns domain.LifecycleHooks;
// Combine fans one event out to several of them.
package observability
