package viascan

import (
	"regexp"
	"strconv"
	"strings"
)

// Coordinate is a WGS84 position in decimal degrees. South latitudes
// and west longitudes are negative.
type Coordinate struct {
	Lat float64
	Lon float64
}

// TurbineSighting is a coordinate pair found in the context of a wind
// turbine reference, with its source location in the scanned corpus.
type TurbineSighting struct {
	SourceFile string
	PageNumber int
	Text       string
	Position   Coordinate
}

// Decimal degrees, optional degree mark and hemisphere letters.
// Example: "39.21 N, 9.12 E" or "-39.21, 9.12".
var ddRe = regexp.MustCompile(`(?i)\b(?P<lat>[-+]?\d*\.?\d+)°?\s*(?P<latDir>[NS])?\s*,?\s*(?P<lon>[-+]?\d*\.?\d+)°?\s*(?P<lonDir>[EW])?\b`)

// Degrees, minutes, seconds with mandatory hemisphere letters.
// Example: 41°24'12.2"N 2°10'26.5"E.
var dmsRe = regexp.MustCompile(`(?i)\b(?P<latDeg>\d{1,3})°\s*(?P<latMin>\d{1,2})'\s*(?P<latSec>\d{1,2}(?:\.\d+)?)"?\s*(?P<latDir>[NS])\s*(?P<lonDeg>\d{1,3})°\s*(?P<lonMin>\d{1,2})'\s*(?P<lonSec>\d{1,2}(?:\.\d+)?)"?\s*(?P<lonDir>[EW])\b`)

// ParseCoordinate extracts a coordinate pair from free text. The DMS
// form is tried first: the decimal pattern is loose enough to match the
// degree/minute prefix of a DMS pair, so specificity decides the order.
// Pairs with out-of-range components (minutes or seconds of 60 or more,
// latitudes beyond 90, longitudes beyond 180) are rejected. The second
// return value is false when the text contains no valid pair.
func ParseCoordinate(text string) (Coordinate, bool) {
	text = strings.ToUpper(strings.TrimSpace(text))

	if m := dmsRe.FindStringSubmatch(text); m != nil {
		lat, latOK := dmsToDecimal(
			group(dmsRe, m, "latDeg"),
			group(dmsRe, m, "latMin"),
			group(dmsRe, m, "latSec"),
		)
		lon, lonOK := dmsToDecimal(
			group(dmsRe, m, "lonDeg"),
			group(dmsRe, m, "lonMin"),
			group(dmsRe, m, "lonSec"),
		)
		if latOK && lonOK && inRange(lat, lon) {
			if group(dmsRe, m, "latDir") == "S" {
				lat = -lat
			}
			if group(dmsRe, m, "lonDir") == "W" {
				lon = -lon
			}
			return Coordinate{Lat: lat, Lon: lon}, true
		}
	}

	if m := ddRe.FindStringSubmatch(text); m != nil {
		lat, latErr := strconv.ParseFloat(group(ddRe, m, "lat"), 64)
		lon, lonErr := strconv.ParseFloat(group(ddRe, m, "lon"), 64)
		if latErr == nil && lonErr == nil && inRange(lat, lon) {
			if group(ddRe, m, "latDir") == "S" {
				lat = -lat
			}
			if group(ddRe, m, "lonDir") == "W" {
				lon = -lon
			}
			return Coordinate{Lat: lat, Lon: lon}, true
		}
	}

	return Coordinate{}, false
}

func group(re *regexp.Regexp, match []string, name string) string {
	for i, n := range re.SubexpNames() {
		if n == name {
			return match[i]
		}
	}
	return ""
}

func dmsToDecimal(deg, min, sec string) (float64, bool) {
	d, _ := strconv.ParseFloat(deg, 64)
	m, _ := strconv.ParseFloat(min, 64)
	s, _ := strconv.ParseFloat(sec, 64)
	if m >= 60 || s >= 60 {
		return 0, false
	}
	return d + m/60 + s/3600, true
}

func inRange(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
