package feeds

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
)

// Source materialises the raw tables for one feed. The engine itself never
// performs I/O; everything it consumes arrives through this interface.
type Source interface {
	Fetch(definition Definition) (*RawTables, error)
}

func init() {
	// Allow us to ignore those naughty records that have missing columns
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})
}

// DirectorySource reads each feed from <root>/<definition path>/ as a set of
// CSV tables.
type DirectorySource struct {
	Root string
}

func (s DirectorySource) Fetch(definition Definition) (*RawTables, error) {
	tables := &RawTables{}

	fileMap := []struct {
		Name        string
		Required    bool
		Destination interface{}
	}{
		{"stops.txt", true, &tables.Stops},
		{"routes.txt", true, &tables.Routes},
		{"trips.txt", true, &tables.Trips},
		{"stop_times.txt", true, &tables.StopTimes},
		{"calendar.txt", true, &tables.Calendars},
		{"shapes.txt", false, &tables.Shapes},
	}

	feedDirectory := filepath.Join(s.Root, definition.Path)

	for _, tableFile := range fileMap {
		path := filepath.Join(feedDirectory, tableFile.Name)

		contents, err := os.ReadFile(path)
		if err != nil {
			if !tableFile.Required && os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("feed %s: failed to read table %s: %w", definition.Identifier, tableFile.Name, err)
		}

		log.Debug().
			Str("feed", definition.Identifier).
			Str("file", tableFile.Name).
			Msg("Loading file")

		reader := renameHeader(contents, definition.FieldAliases)

		if err := gocsv.Unmarshal(reader, tableFile.Destination); err != nil {
			return nil, fmt.Errorf("feed %s: failed to parse table %s: %w", definition.Identifier, tableFile.Name, err)
		}
	}

	return tables, nil
}

// renameHeader rewrites the header row so that agency-specific column names
// land on the canonical struct fields. Columns without an alias pass through.
func renameHeader(contents []byte, aliases map[string]string) io.Reader {
	contents = bytes.TrimPrefix(contents, []byte("\xef\xbb\xbf"))

	if len(aliases) == 0 {
		return bytes.NewReader(contents)
	}

	newline := bytes.IndexByte(contents, '\n')
	if newline == -1 {
		return bytes.NewReader(contents)
	}

	header := strings.TrimRight(string(contents[:newline]), "\r")
	columns := strings.Split(header, ",")
	for index, column := range columns {
		column = strings.TrimSpace(strings.Trim(column, `"`))
		if canonical, exists := aliases[column]; exists {
			columns[index] = canonical
		} else {
			columns[index] = column
		}
	}

	var rewritten bytes.Buffer
	rewritten.WriteString(strings.Join(columns, ","))
	rewritten.WriteByte('\n')
	rewritten.Write(contents[newline+1:])

	return bytes.NewReader(rewritten.Bytes())
}

// MemorySource serves pre-built tables, keyed by feed identifier. Used in
// tests and by callers that already hold the raw tables.
type MemorySource struct {
	Tables map[string]*RawTables
}

func (s MemorySource) Fetch(definition Definition) (*RawTables, error) {
	tables, exists := s.Tables[definition.Identifier]
	if !exists {
		return nil, fmt.Errorf("feed %s: no tables registered", definition.Identifier)
	}

	return tables, nil
}
