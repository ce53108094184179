// Package kml serializes turbine sightings as a KML document for map
// viewers. Built on github.com/beevik/etree.
package kml

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/mlodde/viascan"
)

const (
	kmlNamespace = "http://www.opengis.net/kml/2.2"
	turbineStyle = "turbinaEolica"
)

// Writer serializes turbine sightings as a KML document: one Placemark
// per sighting, named by source file and page, all sharing a single
// pushpin style.
type Writer struct{}

// NewWriter creates a new Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Write emits a complete KML document for the given sightings. An empty
// sighting set still produces a valid document with no placemarks.
func (wr *Writer) Write(w io.Writer, name string, sightings []viascan.TurbineSighting) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	kml := doc.CreateElement("kml")
	kml.CreateAttr("xmlns", kmlNamespace)

	document := kml.CreateElement("Document")
	document.CreateElement("name").SetText(name)

	style := document.CreateElement("Style")
	style.CreateAttr("id", turbineStyle)
	icon := style.CreateElement("IconStyle").CreateElement("Icon")
	icon.CreateElement("href").SetText("http://maps.google.com/mapfiles/kml/shapes/placemark_circle.png")

	for i, s := range sightings {
		placemark := document.CreateElement("Placemark")
		placemark.CreateElement("name").SetText(fmt.Sprintf("Turbina %d", i+1))
		placemark.CreateElement("description").SetText(
			fmt.Sprintf("%s, pagina %d: %s", s.SourceFile, s.PageNumber, s.Text))
		placemark.CreateElement("styleUrl").SetText("#" + turbineStyle)

		// KML coordinate order is longitude,latitude,altitude.
		point := placemark.CreateElement("Point")
		point.CreateElement("coordinates").SetText(
			fmt.Sprintf("%f,%f,0", s.Position.Lon, s.Position.Lat))
	}

	doc.Indent(2)
	if _, err := doc.WriteTo(w); err != nil {
		return viascan.Errorf(viascan.EINTERNAL, "write kml: %v", err)
	}
	return nil
}
