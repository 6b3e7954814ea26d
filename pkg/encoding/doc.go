// Package encoding provides helpers for loading and saving encoded values on
// disk.
package encoding
