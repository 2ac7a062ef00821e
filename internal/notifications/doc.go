// Package notifications pushes import lifecycle events to ntfy.
//
// The Service interface keeps command code independent of the transport;
// when no topic is configured a no-op implementation is returned so callers
// never branch on "notifications enabled".
package notifications
