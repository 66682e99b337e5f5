package fs

import (
	"os"
	"path"

	uuid "github.com/nu7hatch/gouuid"
	"github.com/pkg/errors"
)

// LogFileName is the name of the run log kept in the save directory.
const LogFileName = "rootplot.log"

// CreateSaveDirectory creates the directory documents are exported to.
// When dir is empty, unique directory <tmp>/<appName>/<uuid> is created.
func CreateSaveDirectory(dir string, appName string) (string, error) {
	if dir == "" {
		id, err := uuid.NewV4()
		if err != nil {
			return "", errors.Wrap(err, "could not create uuid")
		}
		dir = path.Join(os.TempDir(), appName, id.String())
	}

	err := os.MkdirAll(dir, 0777)
	if err != nil {
		return "", errors.Wrapf(err, "cannot create save directory %q", dir)
	}
	return dir, nil
}

// OpenLogFile opens log file in given directory for appending.
func OpenLogFile(dir string) (*os.File, error) {
	logFilename := path.Join(dir, LogFileName)
	logFile, err := os.OpenFile(logFilename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open log file %q", logFilename)
	}
	return logFile, nil
}
