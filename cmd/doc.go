// Package cmd provides shared facilities for the osutil command line entry
// points.
package cmd
