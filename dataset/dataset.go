package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jarretjeter/Spotify-Data-Loader/consts"
	"github.com/jarretjeter/Spotify-Data-Loader/log"
	"github.com/jarretjeter/Spotify-Data-Loader/util"
)

// Row holds one record's raw fields, positionally aligned with the
// dataset's Columns.
type Row []string

// Dataset is an in-memory table loaded from a single CSV file. Rows share
// the header's column schema; Index names the derived unique-key column,
// empty until AddIndex designates one.
type Dataset struct {
	Name    string
	Columns []string
	Rows    []Row
	Index   string

	colIndex map[string]int
	logger   *log.Logger
}

// Load reads a headered CSV file into memory whole.
func Load(path string, logger *log.Logger) (*Dataset, error) {
	if logger == nil {
		logger = log.New("dataset")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFile, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrParse, path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: %s: missing header row", ErrParse, path)
	}

	d := &Dataset{
		Name:    util.ParseName(path),
		Columns: records[0],
		Rows:    make([]Row, 0, len(records)-1),
		logger:  logger,
	}
	for _, rec := range records[1:] {
		d.Rows = append(d.Rows, Row(rec))
	}
	d.reindexColumns()
	logger.Infof("loaded %s: %d rows, %d columns", d.Name, len(d.Rows), len(d.Columns))
	return d, nil
}

func (d *Dataset) reindexColumns() {
	d.colIndex = make(map[string]int, len(d.Columns))
	for i, c := range d.Columns {
		d.colIndex[c] = i
	}
}

// Preview returns up to the first five rows for diagnostic display.
func (d *Dataset) Preview() []Row {
	n := consts.PreviewRows
	if len(d.Rows) < n {
		n = len(d.Rows)
	}
	return d.Rows[:n]
}

// AddIndex derives a new column named indexName by dash-joining the named
// source columns' values in order, then designates it the dataset's unique
// row index. When indexName collides with an existing column, that
// column's values are overwritten in place, so a single-column index over
// itself is a no-op on the data.
func (d *Dataset) AddIndex(indexName string, sourceColumns []string) error {
	src := make([]int, len(sourceColumns))
	for i, name := range sourceColumns {
		pos, ok := d.colIndex[name]
		if !ok {
			return fmt.Errorf("%w: %s has no column %q", ErrColumn, d.Name, name)
		}
		src[i] = pos
	}
	d.logger.Infof("adding index %q to %s", indexName, d.Name)

	dst, exists := d.colIndex[indexName]
	parts := make([]string, len(src))
	for r, row := range d.Rows {
		for i, pos := range src {
			parts[i] = row[pos]
		}
		value := strings.Join(parts, consts.IndexSeparator)
		if exists {
			row[dst] = value
		} else {
			d.Rows[r] = append(row, value)
		}
	}
	if !exists {
		d.Columns = append(d.Columns, indexName)
		d.reindexColumns()
	}
	d.Index = indexName
	return nil
}

// SortBy reorders the rows in place, ascending by the named column.
// Ordering is numeric when every value in the column parses as an
// integer, lexicographic otherwise; equal keys keep their source order.
func (d *Dataset) SortBy(column string) error {
	pos, ok := d.colIndex[column]
	if !ok {
		return fmt.Errorf("%w: %s has no column %q", ErrColumn, d.Name, column)
	}
	if d.intColumn(pos) {
		sort.SliceStable(d.Rows, func(i, j int) bool {
			a, _ := strconv.ParseInt(d.Rows[i][pos], 10, 64)
			b, _ := strconv.ParseInt(d.Rows[j][pos], 10, 64)
			return a < b
		})
		return nil
	}
	sort.SliceStable(d.Rows, func(i, j int) bool {
		return d.Rows[i][pos] < d.Rows[j][pos]
	})
	return nil
}

func (d *Dataset) intColumn(pos int) bool {
	for _, row := range d.Rows {
		if _, err := strconv.ParseInt(row[pos], 10, 64); err != nil {
			return false
		}
	}
	return len(d.Rows) > 0
}
