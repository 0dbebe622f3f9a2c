package storage

import (
	"github.com/ja-he/tileplan/internal/model"
)

// DocumentProvider is the abstracted project storage, which can be
// implemented over various storage systems.
//
// The provider's responsibilities are as follows:
//   - collect the records piped to it by the live models (as a model.Sink)
//   - read a document of records from its backend
//   - write the collected document to its backend
type DocumentProvider interface {
	model.Sink

	Read() (*Document, error)
	Write() error

	// Reset drops all collected records.
	Reset()
}
