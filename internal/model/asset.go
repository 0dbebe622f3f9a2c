package model

import (
	"fmt"

	"github.com/ja-he/tileplan/internal/factory"
)

// ImageAsset is a data asset referring to an image file.
// The editor never decodes the image; it only keeps track of it.
type ImageAsset struct {
	Base

	path          string
	width, height int
}

// NewImageAsset returns an image asset for the given path and dimensions.
func NewImageAsset(path string, width, height int) *ImageAsset {
	a := &ImageAsset{path: path, width: width, height: height}
	a.setup(a)
	a.pipeTo(a.Record)
	return a
}

// Kind returns KindImageAsset.
func (a *ImageAsset) Kind() factory.Kind { return KindImageAsset }

// Extends returns whether a stands in for the given kind, which is the case
// for KindAsset.
func (a *ImageAsset) Extends(k factory.Kind) bool { return k == KindAsset }

// Path returns the image's path.
func (a *ImageAsset) Path() string { return a.path }

// Dimensions returns the image's width and height in pixels.
func (a *ImageAsset) Dimensions() (width, height int) { return a.width, a.height }

// CopyData copies identity, path and dimensions from another image asset.
func (a *ImageAsset) CopyData(from Model) error {
	f, ok := from.(*ImageAsset)
	if !ok {
		return fmt.Errorf("%w: cannot copy %s into %s", ErrKindMismatch, from.Kind(), a.Kind())
	}
	a.id = f.id
	a.path = f.path
	a.width, a.height = f.width, f.height
	return nil
}

// ClearData resets path and dimensions.
func (a *ImageAsset) ClearData() {
	a.path = ""
	a.width, a.height = 0, 0
	a.DoneUpdating(OpDataCleared)
}

// Record returns the asset's ImageAssetRecord.
func (a *ImageAsset) Record() Record {
	return ImageAssetRecord{
		ID:     a.id.String(),
		Path:   a.path,
		Width:  a.width,
		Height: a.height,
	}
}

// ImageAssetFromRecord returns an image asset holding the record's data.
func ImageAssetFromRecord(r ImageAssetRecord) (*ImageAsset, error) {
	id, err := parseID(r.ID)
	if err != nil {
		return nil, fmt.Errorf("image asset '%s': %w", r.Path, err)
	}
	a := NewImageAsset(r.Path, r.Width, r.Height)
	a.id = id
	return a, nil
}
