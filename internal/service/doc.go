// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// Services receive their dependencies through constructor injection and apply
// transactional boundaries when operations span multiple repositories. They
// depend on domain entities and repository interfaces (from store), but never
// on specific infrastructure implementations.
//
// The generation subpackage holds the task generation orchestration: loading
// a household's profile and feature set, selecting a catalog source, running
// the scheduling pipeline, and atomically replacing the household's upcoming
// tasks.
package service
