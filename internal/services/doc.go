// Package services holds the task manager's business operations. Both front
// ends (the web/gRPC server and the terminal client in local mode) drive the
// stores exclusively through these services.
//
// Every operation reloads the stores it needs and mutations rewrite the
// whole task list, so the services keep no state between calls beyond the
// repository manager and the clock.
package services
