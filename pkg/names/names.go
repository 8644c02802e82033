// Package names loads pre-named systems: (hex, name) pairs that the grid
// walk places regardless of the density roll.
package names

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/forthekill/GenSec4/pkg/errors"
	"github.com/forthekill/GenSec4/pkg/logging"
	"github.com/forthekill/GenSec4/pkg/types"
)

// Override names the system at one hex.
type Override struct {
	Name string `yaml:"name"`
	Hex  int    `yaml:"hex"`
}

// Coordinate unpacks the column*100+row hex code.
func (o Override) Coordinate() types.Hex {
	return types.HexFromCode(o.Hex)
}

// FileName is the conventional names file for a sector.
func FileName(sector string) string {
	return sector + "_names.txt"
}

// Resolve picks the names file for a sector. A path naming a regular file is
// used as is; otherwise it is treated as a directory holding
// <sector>_names.txt or <sector>_names.yaml. The text name is returned when
// neither exists.
func Resolve(path, sector string) string {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return path
	}

	txt := filepath.Join(path, FileName(sector))
	if _, err := os.Stat(txt); err == nil {
		return txt
	}
	for _, ext := range []string{".yaml", ".yml"} {
		candidate := filepath.Join(path, sector+"_names"+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return txt
}

// Load reads overrides from path. A missing file yields no overrides and no
// error. Files ending in .yaml or .yml are read as a YAML list.
func Load(path string) ([]Override, error) {
	logger := logging.GetLogger("names")

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug().Str("path", path).Msg("No names file, generating unnamed systems only")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrNamesRead, "failed to open names file %s", path)
	}
	defer f.Close()

	var overrides []Override
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		overrides, err = ParseYAML(f)
	default:
		overrides, err = ParseText(f)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().Str("path", path).Int("entries", len(overrides)).Msg("Loaded names file")
	return overrides, nil
}

// ParseText reads one "<name> <hex>" entry per line. The last field is the
// hex and the fields before it form the name. Blank lines and lines starting
// with '#' are skipped, as are lines that cannot be read as an entry.
func ParseText(r io.Reader) ([]Override, error) {
	logger := logging.GetLogger("names")

	var overrides []Override
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			logger.Warn().Int("line", lineNum).Str("text", line).Msg("Skipping names entry without a hex")
			continue
		}

		hex, err := strconv.Atoi(fields[len(fields)-1])
		if err != nil || hex < 0 {
			logger.Warn().Int("line", lineNum).Str("text", line).Msg("Skipping names entry with a bad hex")
			continue
		}

		overrides = append(overrides, Override{
			Name: strings.Join(fields[:len(fields)-1], " "),
			Hex:  hex,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrNamesRead, "failed to read names file")
	}

	return overrides, nil
}

// ParseYAML reads a YAML list of {name, hex} entries.
func ParseYAML(r io.Reader) ([]Override, error) {
	var overrides []Override
	if err := yaml.NewDecoder(r).Decode(&overrides); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, errors.ErrNamesParse, "failed to parse YAML names file")
	}
	return overrides, nil
}
