// Package overlay manages the segmentation overlays shown on top of a photo.
//
// A Session owns the list of masks returned by a segmentation model, which
// of them are currently covering the photo, and a cache of their remapped
// (background-transparent) versions. Sessions are explicit values with a
// Start/Stop lifecycle; nothing is kept at package level.
//
//	s := overlay.New(overlay.WithCacheSize(64))
//	if err := s.Start(); err != nil {
//	    return err
//	}
//	defer s.Stop()
//
//	s.Load(segments)
//	s.Toggle(0)
//	layers := s.Covers()
package overlay
