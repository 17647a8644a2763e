/*
Package observability provides tools for monitoring sprig stores.

It turns store lifecycle hooks into structured log lines (LoggingHooks) and
Prometheus series (Metrics), and lets several hook sets share one store (CombineHooks).
*/
package observability
