// Package configuration provides loading facilities for the YAML configuration
// file that supplies defaults to the osutil command line interface.
package configuration
