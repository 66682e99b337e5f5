package conf

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is an internal interface for all flags.
// Every flag should have method for creating `envName` from its name, `clear` method
// for clearing corresponding environment variable from env and `reset` dropping
// the value of previous parse.
type flagType interface {
	envName() string
	clear()
	reset()
}

// definedFlags is a package variable which stores all the defined flags. It helps to find
// duplicates when defining flag with the same name.
var definedFlags = map[string]flagType{}

// envName converts flag name to rootplot environment variable name.
// In order to create environment variable name from flag we need to make it uppercase,
// replace dashes and add RPU prefix. For instance: "histogram-name" will be "RPU_HISTOGRAM_NAME".
func envName(flagName string) string {
	return fmt.Sprintf("%s_%s", envPrefix, strings.ToUpper(strings.Replace(flagName, "-", "_", -1)))
}

// cliAndEnvFlag represents option's definition from CLI and Environment variable.
// It stores generic data for each defined flag.
type cliAndEnvFlag struct {
	*kingpin.FlagClause
}

func newCliAndEnvFlag(flagName string, description string, defaultValues ...string) *cliAndEnvFlag {
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag != nil {
		panic("This flag was already defined. Flag definition is lack of duplicate check.")
	}

	c := &cliAndEnvFlag{FlagClause: app.Flag(flagName, description)}
	c.OverrideDefaultFromEnvar(c.envName())

	for _, defaultValue := range defaultValues {
		if defaultValue == "" {
			continue
		}
		c.Default(defaultValue)
	}

	return c
}

func (f *cliAndEnvFlag) envName() string {
	return envName(f.Model().Name)
}

// clear unset the corresponded environment variable.
func (f *cliAndEnvFlag) clear() {
	os.Unsetenv(f.envName())
}

// StringFlag represents flag with string value.
type StringFlag struct {
	*cliAndEnvFlag
	defaultValue string
	value        *string
}

// NewStringFlag is a constructor of StringFlag struct.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag != nil {
		// Check if the type is the same.
		flagDef, ok := duplicatedFlag.(*StringFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}

		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}

		return flagDef
	}

	// Flag is not yet defined, so create one.
	flagDef := &StringFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, defaultValue),
		defaultValue:  defaultValue,
	}

	// Define type of the flag and register in internal map.
	flagDef.value = flagDef.String()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (s StringFlag) Value() string {
	if !isEnvParsed {
		return s.defaultValue
	}

	return *s.value
}

func (s *StringFlag) reset() {
	*s.value = s.defaultValue
}

// SliceFlag represents flag with slice value.
type SliceFlag struct {
	*cliAndEnvFlag
	defaultValue []string
	value        *[]string
}

// NewSliceFlag is a constructor of SliceFlag struct.
func NewSliceFlag(flagName string, description string, elemsInDefaultSlice ...string) *SliceFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag != nil {
		// Check if the type is the same.
		flagDef, ok := duplicatedFlag.(*SliceFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}

		if len(flagDef.defaultValue) != len(elemsInDefaultSlice) {
			panic("Flag was redefined but with different default value. Unify the default.")
		}
		for i, elem := range elemsInDefaultSlice {
			if flagDef.defaultValue[i] != elem {
				panic("Flag was redefined but with different default value. Unify the default.")
			}
		}

		return flagDef
	}

	// Flag is not yet defined, so create one.
	flagDef := &SliceFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, strings.Join(elemsInDefaultSlice, stringListDelimiter)),
		defaultValue:  elemsInDefaultSlice,
	}

	// Define type of the flag and register in internal map.
	flagDef.value = StringList(flagDef)
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
func (s SliceFlag) Value() []string {
	if !isEnvParsed {
		return append([]string{}, s.defaultValue...)
	}

	return append([]string{}, *s.value...)
}

func (s *SliceFlag) reset() {
	*s.value = []string{}
}

// BoolFlag represents flag with bool value.
type BoolFlag struct {
	*cliAndEnvFlag
	defaultValue bool
	value        *bool
}

// NewBoolFlag is a constructor of BoolFlag struct.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	// Check for duplicates and use it if it defines the same type of flag.
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag != nil {
		// Check if the type is the same.
		flagDef, ok := duplicatedFlag.(*BoolFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}

		if flagDef.defaultValue != defaultValue {
			panic("Flag was redefined but with different default value. Unify the default.")
		}

		return flagDef
	}

	// Flag is not yet defined, so create one.
	flagDef := &BoolFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description, fmt.Sprintf("%v", defaultValue)),
		defaultValue:  defaultValue,
	}

	// Define type of the flag and register in internal map.
	flagDef.value = flagDef.Bool()
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns value of defined flag after parse.
// NOTE: If conf is not parsed it returns default value (!)
func (b BoolFlag) Value() bool {
	if !isEnvParsed {
		return b.defaultValue
	}

	return *b.value
}

func (b *BoolFlag) reset() {
	*b.value = b.defaultValue
}

// OptionalFloatFlag represents flag with float value which may stay unset.
// Unset is distinct from every real number, so no sentinel value is used.
type OptionalFloatFlag struct {
	*cliAndEnvFlag
	value *OptionalFloatValue
}

// NewOptionalFloatFlag is a constructor of OptionalFloatFlag struct.
func NewOptionalFloatFlag(flagName string, description string) *OptionalFloatFlag {
	duplicatedFlag := definedFlags[flagName]
	if duplicatedFlag != nil {
		flagDef, ok := duplicatedFlag.(*OptionalFloatFlag)
		if !ok {
			panic("Flag was redefined but with different type. Unify the type.")
		}
		return flagDef
	}

	flagDef := &OptionalFloatFlag{
		cliAndEnvFlag: newCliAndEnvFlag(flagName, description),
		value:         &OptionalFloatValue{},
	}
	flagDef.SetValue(flagDef.value)
	definedFlags[flagName] = flagDef
	isEnvParsed = false
	return flagDef
}

// Value returns pointer to the parsed value or nil when flag was not given.
func (f OptionalFloatFlag) Value() *float64 {
	if !isEnvParsed {
		return nil
	}
	return f.value.Pointer()
}

func (f *OptionalFloatFlag) reset() {
	*f.value = OptionalFloatValue{}
}

// definedArgs stores positional arguments. Order of definition is the order on command line.
var definedArgs = []*SliceArg{}

// SliceArg represents positional arguments collected into a slice.
type SliceArg struct {
	*kingpin.ArgClause
	value *[]string
}

// NewSliceArg is a constructor of SliceArg struct. Positional arguments are not
// taken from environment.
func NewSliceArg(argName string, description string) *SliceArg {
	for _, arg := range definedArgs {
		if arg.Model().Name == argName {
			return arg
		}
	}

	arg := &SliceArg{ArgClause: app.Arg(argName, description)}
	arg.value = StringList(arg)
	definedArgs = append(definedArgs, arg)
	isEnvParsed = false
	return arg
}

// Value returns positional values after parse.
func (a SliceArg) Value() []string {
	if !isEnvParsed {
		return []string{}
	}
	return append([]string{}, *a.value...)
}

func (a *SliceArg) reset() {
	*a.value = []string{}
}
