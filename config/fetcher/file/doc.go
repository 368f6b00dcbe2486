// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read when the Fetcher is constructed and cached, so every
// Fetch returns the same data for the lifetime of the application. Files
// larger than DefaultMaxSize are rejected; use NewLimitedFetcher for another
// limit.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/hotel/behaviors.yaml")()
//	if err != nil {
//	    // file not found, permission denied, directory, too large
//	}
//	data, err := fetcher.Fetch()
//
// Use errors.Is with ErrPathIsDirectory or ErrFileTooLarge to tell the
// failures apart.
package file
