package feeds

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFeedDirectory(t *testing.T, tables map[string]string) string {
	t.Helper()

	directory := t.TempDir()
	for name, contents := range tables {
		require.NoError(t, os.WriteFile(filepath.Join(directory, name), []byte(contents), 0644))
	}

	return directory
}

func minimalTables() map[string]string {
	return map[string]string{
		"stops.txt":      "stop_id,stop_name,stop_lat,stop_lon,location_type,parent_station\n1st-main,1st & Main,37.77,-122.41,0,\n",
		"routes.txt":     "route_id,agency_id,route_short_name,route_type\n10,muni,10,3\n",
		"trips.txt":      "route_id,service_id,trip_id\n10,wkd,10-0700\n",
		"stop_times.txt": "trip_id,arrival_time,departure_time,stop_id,stop_sequence\n10-0700,07:00:00,07:00:00,1st-main,1\n",
		"calendar.txt":   "service_id,monday,tuesday,wednesday,thursday,friday,saturday,sunday,start_date,end_date\nwkd,1,1,1,1,1,0,0,20240101,20241231\n",
	}
}

func TestDirectorySourceFetch(t *testing.T) {
	root := writeFeedDirectory(t, minimalTables())

	source := DirectorySource{Root: root}
	tables, err := source.Fetch(Definition{Identifier: "muni", Path: "."})

	require.NoError(t, err)
	require.Len(t, tables.Stops, 1)
	assert.Equal(t, "1st-main", tables.Stops[0].ID)
	assert.Equal(t, 37.77, tables.Stops[0].Latitude)
	require.Len(t, tables.StopTimes, 1)
	assert.Equal(t, "07:00:00", tables.StopTimes[0].ArrivalTime)
	assert.Empty(t, tables.Shapes)
}

func TestDirectorySourceAppliesFieldAliases(t *testing.T) {
	tables := minimalTables()
	tables["stops.txt"] = "stop_identifier,stop_name,latitude,longitude\n1st-main,1st & Main,37.77,-122.41\n"

	root := writeFeedDirectory(t, tables)

	source := DirectorySource{Root: root}
	fetched, err := source.Fetch(Definition{
		Identifier: "muni",
		Path:       ".",
		FieldAliases: map[string]string{
			"stop_identifier": "stop_id",
			"latitude":        "stop_lat",
			"longitude":       "stop_lon",
		},
	})

	require.NoError(t, err)
	require.Len(t, fetched.Stops, 1)
	assert.Equal(t, "1st-main", fetched.Stops[0].ID)
	assert.Equal(t, 37.77, fetched.Stops[0].Latitude)
	assert.Equal(t, -122.41, fetched.Stops[0].Longitude)
}

func TestDirectorySourceMissingRequiredTable(t *testing.T) {
	tables := minimalTables()
	delete(tables, "stop_times.txt")

	root := writeFeedDirectory(t, tables)

	source := DirectorySource{Root: root}
	_, err := source.Fetch(Definition{Identifier: "muni", Path: "."})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stop_times.txt")
	assert.Contains(t, err.Error(), "muni")
}

func TestMemorySource(t *testing.T) {
	source := MemorySource{Tables: map[string]*RawTables{
		"muni": {},
	}}

	_, err := source.Fetch(Definition{Identifier: "muni"})
	assert.NoError(t, err)

	_, err = source.Fetch(Definition{Identifier: "bart"})
	assert.Error(t, err)
}
