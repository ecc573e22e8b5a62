// Package iiif models IIIF Presentation API 2.x documents.
//
// Every resource keeps its fields in a [track.Store] and is built from
// capability sets shared by composition: [Item] carries identity, type and
// services, [Descriptive] the labels, metadata, rights and links common to
// all presentation nodes, and [Dimensions] height and width. Fields a
// resource does not declare are kept verbatim and written back after the
// declared ones, so documents using newer or private vocabulary survive a
// decode/encode cycle.
//
//	m, err := iiif.ParseManifest(data)
//	if err != nil {
//		return err
//	}
//	for _, c := range m.Canvases() {
//		fmt.Println(c.ID(), c.Label())
//	}
package iiif
