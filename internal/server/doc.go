// Package server is the HTTP front end: the home page, the
// /emotionDetector endpoint and the health and metrics routes, served by echo.
//
// Each request is handled on its own with no shared mutable state; the
// only value shared across requests is the readiness flag written by the
// scorer health monitor.
package server
