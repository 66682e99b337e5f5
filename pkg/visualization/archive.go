package visualization

import (
	"fmt"
	"io"
	"strconv"

	"github.com/rootplot/rootplot/pkg/archive"
)

var archiveHeaders = []string{"Key", "Class", "Title", "Cycle"}

// NewArchiveTable models contents of an archive, one row per key.
func NewArchiveTable(file *archive.File) *Table {
	var data [][]string
	for _, entry := range file.Entries() {
		data = append(data, []string{
			entry.Name,
			entry.Class,
			entry.Title,
			strconv.Itoa(entry.Cycle),
		})
	}
	return NewTable(archiveHeaders, data)
}

// DrawArchive prints the name of the archive followed by the table of its contents.
func DrawArchive(w io.Writer, file *archive.File) {
	fmt.Fprintf(w, "File: %s\n", file.Path())
	DrawTable(w, NewArchiveTable(file))
}
