package scan

import (
	"context"
	"log/slog"

	"github.com/mlodde/viascan"
)

// dmsPair is a full DMS coordinate pair, latitude then longitude.
const dmsPair = `\d{1,3}°\s*\d{1,2}'\s*\d{1,2}(?:\.\d+)?"?\s*[NS]\s*\d{1,3}°\s*\d{1,2}'\s*\d{1,2}(?:\.\d+)?"?\s*[EW]`

// TurbinePatterns returns the patterns that locate coordinates in the
// context of a wind-turbine reference. Capture group 1 holds the
// coordinate text handed to viascan.ParseCoordinate.
func TurbinePatterns() []viascan.Pattern {
	return []viascan.Pattern{
		viascan.MustPattern("turbine-labeled-coordinates",
			`(?i)(?:WTG|Turbina|Pala|Aerogeneratore)\s*(?:n\.)?\s*\d+\s*[-:]+\s*(.*?(?:\d+°\s*\d+'\s*\d+(?:\.\d+)?"?\s*[NS])\s*(?:\d+°\s*\d+'\s*\d+(?:\.\d+)?"?\s*[EW]))`),
		viascan.MustPattern("turbine-nearby-coordinates",
			`(?i)(?:WTG|Turbina|Pala|Aerogeneratore)\s*(?:n\.)?\s*\d+.*?(\b`+dmsPair+`)`),
		viascan.MustPattern("coordinate-context",
			`(?i)coordinate.*?(\b`+dmsPair+`)`),
	}
}

// TurbineScanner extracts turbine placemarks from a folder of PDFs.
// Unlike the match-report engine it parses the matched text into a
// coordinate; lines whose coordinate text does not parse are dropped.
type TurbineScanner struct {
	Extractor viascan.TextExtractor
	Patterns  []viascan.Pattern
	Logger    *slog.Logger
}

// Scan walks every PDF under root and returns one sighting per line
// and pattern match that parses into a coordinate. Per-file failures
// are logged and isolated like the match-report scan.
func (s *TurbineScanner) Scan(ctx context.Context, root string) ([]viascan.TurbineSighting, error) {
	files, err := ListPDFs(root)
	if err != nil {
		return nil, err
	}

	patterns := s.Patterns
	if patterns == nil {
		patterns = TurbinePatterns()
	}

	var sightings []viascan.TurbineSighting
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pages, err := s.Extractor.PageLines(path)
		if err != nil {
			s.logger().Error("turbine scan failed, skipping file",
				"path", path,
				"error", err,
			)
			continue
		}

		for pageIdx, lines := range pages {
			for _, line := range lines {
				for _, p := range patterns {
					m := p.Re.FindStringSubmatch(line)
					if m == nil || len(m) < 2 {
						continue
					}
					pos, ok := viascan.ParseCoordinate(m[1])
					if !ok {
						continue
					}
					sightings = append(sightings, viascan.TurbineSighting{
						SourceFile: path,
						PageNumber: pageIdx + 1,
						Text:       line,
						Position:   pos,
					})
				}
			}
		}
	}

	return sightings, nil
}

func (s *TurbineScanner) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
