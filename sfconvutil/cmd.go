/*
Copyright © 2026 the sfconv authors.
This file is part of sfconv.

sfconv is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

sfconv is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with sfconv.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package sfconvutil holds command-line utilities for converting
// geometries between the sf and native encodings.
package sfconvutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/sfconv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var logger *logrus.Logger

func init() {
	logger = logrus.StandardLogger()
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339Nano,
		DisableSorting:  true,
	})
}

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	// Options are the configuration options available to sfconv.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "verbose",
			usage: `
              verbose specifies whether to print debug-level progress
              information.`,
			shorthand:  "v",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "strict",
			usage: `
              strict specifies whether geometries with unrecognized class
              attributes are treated as errors. If false, they decode to
              the origin point for compatibility with older columns.`,
			shorthand:  "s",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{wktCmd.Flags(), geojsonCmd.Flags(), roundtripCmd.Flags()},
		},
		{
			name: "precision",
			usage: `
              precision specifies the maximum number of decimal digits in
              printed coordinates. The default of -1 prints coordinates at
              full precision.`,
			defaultVal: -1,
			flagsets:   []*pflag.FlagSet{wktCmd.Flags()},
		},
		{
			name: "output",
			usage: `
              output specifies the path of the file to write results to.
              The default writes to standard output.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{wktCmd.Flags(), geojsonCmd.Flags(), roundtripCmd.Flags()},
		},
	}

	Cfg = viper.New()

	// Set the prefix for configuration environment variables.
	Cfg.SetEnvPrefix("SFCONV")

	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case bool:
				if option.shorthand == "" {
					set.Bool(option.name, option.defaultVal.(bool), option.usage)
				} else {
					set.BoolP(option.name, option.shorthand, option.defaultVal.(bool), option.usage)
				}
			case int:
				if option.shorthand == "" {
					set.Int(option.name, option.defaultVal.(int), option.usage)
				} else {
					set.IntP(option.name, option.shorthand, option.defaultVal.(int), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(wktCmd)
	Root.AddCommand(geojsonCmd)
	Root.AddCommand(roundtripCmd)
}

// setConfig finds and reads in the configuration file, if there is one.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("sfconv: problem reading configuration file: %v", err)
		}
	}
	if Cfg.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "sfconv",
	Short: "A converter between sf and native geometry encodings.",
	Long: `sfconv converts geometries between the encoding used by R's sf package
and native geometry types. Input is a JSON rendering of the foreign
value: either a single sfg or a whole geometry column (sfc).

Refer to the subcommand documentation for configuration options and default
settings. Configuration can be changed by using a configuration file (and
providing the path to the file using the --config flag), by using
command-line arguments, or by setting environment variables in the format
'SFCONV_var' where 'var' is the name of the variable to be set. Refer to
https://github.com/spf13/viper for additional configuration information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of sfconv.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("sfconv v%s\n", sfconv.Version)
	},
	DisableAutoGenTag: true,
}

var wktCmd = &cobra.Command{
	Use:   "wkt [input file]",
	Short: "Print geometries as well-known text.",
	Long: `wkt decodes an sf geometry or geometry column from a JSON-encoded
foreign value and prints it as well-known text, one line per geometry.
Missing geometries print as empty lines. If no input file is given,
input is read from standard in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := readValue(inputFile(args))
		if err != nil {
			return err
		}
		gs, column, err := decodeGeometries(v, Cfg.GetBool("strict"))
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"geometries": len(gs),
			"column":     column,
		}).Debug("decoded input")
		digits := Cfg.GetInt("precision")
		var b bytes.Buffer
		for _, g := range gs {
			if g != nil {
				b.WriteString(sfconv.WKT(g, digits))
			}
			b.WriteByte('\n')
		}
		return writeOutput(cmd, Cfg.GetString("output"), b.Bytes())
	},
	DisableAutoGenTag: true,
}

var geojsonCmd = &cobra.Command{
	Use:   "geojson [input file]",
	Short: "Print geometries as GeoJSON.",
	Long: `geojson decodes an sf geometry or geometry column from a JSON-encoded
foreign value and prints it as GeoJSON. A geometry column becomes a JSON
array with null members for missing geometries. If no input file is
given, input is read from standard in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := readValue(inputFile(args))
		if err != nil {
			return err
		}
		gs, column, err := decodeGeometries(v, Cfg.GetBool("strict"))
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"geometries": len(gs),
			"column":     column,
		}).Debug("decoded input")
		var b []byte
		if column {
			members := make([]json.RawMessage, len(gs))
			for i, g := range gs {
				if g == nil {
					members[i] = json.RawMessage("null")
					continue
				}
				m, err := g.GeoJSON()
				if err != nil {
					return fmt.Errorf("sfconv: geometry %d: %w", i, err)
				}
				members[i] = m
			}
			if b, err = json.Marshal(members); err != nil {
				return err
			}
		} else if b, err = gs[0].GeoJSON(); err != nil {
			return err
		}
		return writeOutput(cmd, Cfg.GetString("output"), append(b, '\n'))
	},
	DisableAutoGenTag: true,
}

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip [input file]",
	Short: "Decode and re-encode a foreign value.",
	Long: `roundtrip decodes an sf geometry or geometry column from a JSON-encoded
foreign value, re-encodes it, and prints the result as JSON. On
well-formed input the output reproduces the input payload, so roundtrip
serves as a self-check of the conversion pipeline. If no input file is
given, input is read from standard in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := readValue(inputFile(args))
		if err != nil {
			return err
		}
		gs, column, err := decodeGeometries(v, Cfg.GetBool("strict"))
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"geometries": len(gs),
			"column":     column,
		}).Debug("decoded input")
		var out interface{}
		if column {
			if out, err = sfconv.ToSfc(gs); err != nil {
				return err
			}
		} else if out, err = gs[0].Sfg(); err != nil {
			return err
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		return writeOutput(cmd, Cfg.GetString("output"), append(b, '\n'))
	},
	DisableAutoGenTag: true,
}
