// Package types defines the entity model, Store interface, and standard
// errors for the genetable labeling system: axes, label sequences,
// annotation tables, and the dataset/matrix entity variants.
package types
