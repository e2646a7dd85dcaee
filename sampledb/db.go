// Package sampledb reads measured elemental analyses from an analyzer or LIMS
// database. Access files are opened through ADODB, SQL Server through
// go-mssqldb. Sources are only ever read.
//
// The table is expected in long format, one row per element:
//
//	SampleName, AnalysisTime, Element, Value (mass %)
package sampledb

import (
	"database/sql"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/RoanBrand/CelluloseDS/config"
	"github.com/RoanBrand/CelluloseDS/sample"
	_ "github.com/denisenkom/go-mssqldb"
	_ "github.com/mattn/go-adodb"
)

const defaultTable = "ElementalAnalysis"

// ADODB driver has problems with multiple connections.
// DB is a file on disk anyway.
var querySerializer sync.Mutex

type Source struct {
	driver     string
	dsn        string
	table      string
	instrument int
}

// New returns a Source for an "mdb" or "mssql" data source.
func New(c config.DataSource) (*Source, error) {
	s := &Source{table: c.Table, instrument: c.Instrument}
	switch c.Type {
	case "mdb":
		s.driver, s.dsn = "adodb", c.Source
	case "mssql":
		s.driver, s.dsn = "mssql", c.ConnString()
	default:
		return nil, fmt.Errorf("data source type %q is not a database", c.Type)
	}

	if s.table == "" {
		s.table = defaultTable
	}
	if !validIdentifier(s.table) {
		return nil, fmt.Errorf("invalid table name %q", s.table)
	}

	return s, nil
}

func (s *Source) String() string {
	return s.driver + ":" + s.table
}

// GetResults returns the latest numResults samples, newest first.
func (s *Source) GetResults(numResults int) ([]sample.Record, error) {
	if s.driver == "adodb" {
		querySerializer.Lock()
		defer querySerializer.Unlock()
	}

	db, err := sql.Open(s.driver, s.dsn)
	if err != nil {
		return nil, fmt.Errorf("error opening db: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(s.query(numResults))
	if err != nil {
		return nil, fmt.Errorf("error querying '%s': %w", s.table, err)
	}
	defer rows.Close()

	var res []row
	for rows.Next() {
		var r row
		if err := rows.Scan(&r.sampleName, &r.timeStamp, &r.element, &r.value); err != nil {
			return nil, fmt.Errorf("error scanning row from '%s': %w", s.table, err)
		}
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error reading rows from '%s': %w", s.table, err)
	}

	recs := groupRows(res)
	for i := range recs {
		recs[i].Instrument = s.instrument
	}
	return recs, nil
}

func (s *Source) query(numResults int) string {
	return `
		SELECT r.SampleName, r.AnalysisTime, r.Element, r.Value
		FROM ` + s.table + ` r
		WHERE r.SampleName IN (
			SELECT TOP ` + strconv.Itoa(numResults) + ` SampleName
			FROM ` + s.table + `
			GROUP BY SampleName
			ORDER BY MAX(AnalysisTime) DESC)
		ORDER BY r.AnalysisTime DESC, r.SampleName;`
}

type row struct {
	sampleName sql.NullString
	timeStamp  time.Time
	element    sql.NullString
	value      sql.NullFloat64
}

// groupRows folds element rows into one record per sample, in first seen order.
// Rows without element or value, and repeated elements, are dropped.
func groupRows(rows []row) []sample.Record {
	var recs []sample.Record
	index := make(map[string]int)

	for _, r := range rows {
		name := ""
		if r.sampleName.Valid {
			name = r.sampleName.String
		}

		i, ok := index[name]
		if !ok {
			i = len(recs)
			index[name] = i
			recs = append(recs, sample.Record{SampleName: name, TimeStamp: r.timeStamp})
		}

		if !r.element.Valid || !r.value.Valid {
			continue
		}
		if _, dup := recs[i].Percent(r.element.String); dup {
			continue
		}
		recs[i].Results = append(recs[i].Results, sample.ElementResult{Element: r.element.String, Value: r.value.Float64})
	}

	return recs
}

func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if !(c == '_' || c >= '0' && c <= '9' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z') {
			return false
		}
	}
	return true
}
