// Package xmlanalysis reads the XML result files an elemental analyzer exports,
// one file per analysis.
package xmlanalysis

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/RoanBrand/CelluloseDS/sample"
)

const timeLayout = "2006-01-02T15:04:05"

// GetResults returns the samples of the newest numResults xml files in xmlFolder,
// newest first. Export file names contain the date, so name order is time order.
func GetResults(xmlFolder string, numResults int) ([]sample.Record, error) {
	files, err := filepath.Glob(filepath.Join(xmlFolder, "*"))
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i] > files[j]
	})

	xmlFiles := files[:0]
	for _, file := range files {
		if strings.EqualFold(filepath.Ext(file), ".xml") {
			xmlFiles = append(xmlFiles, file)
		}
	}

	if numResults < 0 {
		numResults = 0
	}
	if len(xmlFiles) < numResults {
		numResults = len(xmlFiles)
	}

	recs := make([]sample.Record, 0, numResults)
	for _, file := range xmlFiles[:numResults] {
		fileRecs, err := ReadFile(file)
		if err != nil {
			return nil, err
		}
		recs = append(recs, fileRecs...)
	}

	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].TimeStamp.After(recs[j].TimeStamp)
	})

	return recs, nil
}

// ReadFile decodes all sample results of one export file. Results without a
// valid timestamp are skipped.
func ReadFile(path string) ([]sample.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var srXML sampleResultsXMLFile
	if err = xml.NewDecoder(f).Decode(&srXML); err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}

	recs := make([]sample.Record, 0, len(srXML.SampleResults))
	for i := range srXML.SampleResults {
		sr := &srXML.SampleResults[i]

		ts, err := time.ParseInLocation(timeLayout, sr.Timestamp, time.Local)
		if err != nil {
			continue
		}

		rec := sample.Record{
			SampleName: sr.sampleName(),
			Operator:   sr.operator(),
			TimeStamp:  ts,
		}
		if len(sr.MeasurementStatistics) > 0 {
			for j := range sr.MeasurementStatistics[0].Elements {
				el := &sr.MeasurementStatistics[0].Elements[j]
				res := el.reportedResult()
				if res == nil {
					continue
				}
				rec.Results = append(rec.Results, sample.ElementResult{Element: el.Name, Value: res.ResultValue})
			}
		}

		recs = append(recs, rec)
	}

	return recs, nil
}
