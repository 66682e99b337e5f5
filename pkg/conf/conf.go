// conf is a helper for rootplot configuration for both command line interface
// and environment variables.
// It gives ability to register arguments which will be fetched from
// CLI input OR environment variable.
// By default it registers following options:
// <RPU_LOGGING_PRIORITY> -g --logging-priority <fatal, critical, error, warning, notice, information, debug, trace> Default: notice
//
// When `ParseEnv` is executed, only the environment arguments are parsed and
// ready to be used in `promises` variables.
// `ParseEnv` can be run multiple times.
//
// When `ParseFlags` is executed, the arguments from both CLI and Env are parsed.
// In case of --help option - it prints help.

package conf

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const envPrefix = "RPU"

var (
	app = kingpin.New("rootplot", "No help available")
	// Default flags and values.
	logLevelFlag = NewStringFlag(
		"logging-priority",
		"Logging priority threshold: fatal, critical, error, warning, notice, information, debug, trace",
		"notice",
	)
	isEnvParsed = false
)

func init() {
	app.HelpFlag.Short('h')
	logLevelFlag.Short('g')
}

// SetHelpPath sets the help message for CLI rendering the file from given file.
// We need to expose this function so other packages can set the app help.
func SetHelpPath(readmePath string) error {
	readmeData, err := ioutil.ReadFile(readmePath)
	if err != nil {
		return errors.Wrapf(err, "reading %s failed", readmePath)
	}
	app.Help = string(readmeData)
	return nil
}

// SetHelp sets the help message for the CLI.
// We need to expose this function so other packages can set the app help.
func SetHelp(help string) {
	app.Help = help
}

// SetAppName sets application name for CLI output.
// We need to expose this function so other packages can set the app name.
func SetAppName(name string) {
	app.Name = name
}

// AppName returns specified app name.
func AppName() string {
	return app.Name
}

// LogLevel returns configured logging priority from input option or env variable
// converted to logrus level.
func LogLevel() (logrus.Level, error) {
	return ParsePriority(logLevelFlag.Value())
}

// ParseFlags parse both the command line flags of the process and
// environment variables.
func ParseFlags() error {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parse given arguments and environment variables.
// Values of previous parse are dropped, so it can be executed many times.
func ParseArgs(args []string) error {
	for _, flag := range definedFlags {
		flag.reset()
	}
	for _, arg := range definedArgs {
		arg.reset()
	}

	_, err := app.Parse(args)
	if err == nil {
		isEnvParsed = true
		return nil
	}

	return errors.Wrapf(err, "could not parse command line flags")
}

// ParseEnv parse the environment for arguments.
func ParseEnv() error {
	err := ParseArgs([]string{})
	if err != nil {
		return errors.Wrapf(err, "could not parse environment flags")
	}
	return nil
}

// isBuiltin reports flags defined by kingpin itself (help, completion) which
// have no environment counterpart.
func isBuiltin(flag *kingpin.FlagModel) bool {
	return flag.Hidden || flag.Name == "help"
}

// getFlagsDefinition returns current, default, keys and description for every flag.
// Notes: order is important because it logically groups flags.
func getFlagsDefinition() (flags []struct{ Name, Value, Default, Help string }) {
	for _, flag := range app.Model().Flags {
		if isBuiltin(flag) {
			continue
		}

		value := flag.Value.String()
		if !isEnvParsed {
			value = strings.Join(flag.Default, ",")
		}

		flags = append(flags, struct{ Name, Value, Default, Help string }{
			Name:    flag.Name,
			Help:    flag.Help,
			Default: strings.Join(flag.Default, ","),
			Value:   value,
		})
	}

	return flags
}

// DumpConfig dumps environment based configuration with current values of flags.
func DumpConfig() string {
	return DumpConfigMap(nil)
}

// DumpConfigMap dumps environment based configuration with current values overwritten by given flagMap.
// Includes "allexport" directives for bash.
func DumpConfigMap(flagMap map[string]string) string {
	buffer := &bytes.Buffer{}

	buffer.WriteString("# Export are values.\n")
	buffer.WriteString("set -o allexport\n")

	for _, fd := range getFlagsDefinition() {

		fmt.Fprintf(buffer, "\n# %s\n", fd.Help)
		if fd.Default != "" {
			fmt.Fprintf(buffer, "# Default: %s\n", fd.Default)
		}

		// Override current values with provided from flagMap.
		value := fd.Value
		if mapValue, ok := flagMap[fd.Name]; ok {
			value = mapValue
		}

		fmt.Fprintf(buffer, "%s=%v\n", envName(fd.Name), value)
	}

	buffer.WriteString("set +o allexport")
	return buffer.String()
}

// GetFlags returns flags as map with current values.
func GetFlags() map[string]string {
	flagsMap := map[string]string{}
	for _, flag := range getFlagsDefinition() {
		flagsMap[flag.Name] = flag.Value
	}
	return flagsMap
}
