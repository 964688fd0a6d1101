// Package domain contains the core business entities, value objects, and
// domain logic of the application: task templates, household feature sets,
// requirement predicates, and the resolved tasks the engine produces.
// It represents the heart of the system, independent of any specific
// infrastructure or delivery mechanism.
package domain
