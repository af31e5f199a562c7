package indexurl

import "errors"

var (
	// errFileNotFound is returned when a candidate file does not exist.
	errFileNotFound = errors.New("config file does not exist")
	// errKeyNotFound is returned when the file has no global.index-url.
	errKeyNotFound = errors.New("global.index-url is not set")

	errMissingSectionHeader = errors.New("file contains no section headers")
	errDuplicateSection     = errors.New("section already exists")
	errDuplicateOption      = errors.New("option already exists")
)
