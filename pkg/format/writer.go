package format

import (
	"bufio"
	"io"

	"github.com/beevik/etree"

	"github.com/forthekill/GenSec4/pkg/errors"
	"github.com/forthekill/GenSec4/pkg/logging"
	"github.com/forthekill/GenSec4/pkg/sector"
	"github.com/forthekill/GenSec4/pkg/types"
)

// Write serializes sec to w in format f. Text layouts start with the version
// header line and join records with "\n", leaving no newline after the last
// record.
func Write(w io.Writer, sec *sector.Sector, f Format) error {
	f = FromInt(int(f))
	logger := logging.GetLogger("format")
	logger.Debug().
		Str("format", f.String()).
		Str("version", f.Version()).
		Int("systems", sec.Len()).
		Msg("Writing sector")

	var err error
	if f == XML3 {
		err = writeXML(w, sec)
	} else {
		err = writeText(w, sec.Systems(), f)
	}
	if err != nil {
		return errors.Wrapf(err, errors.ErrFormatWrite, "failed to write format %s", f)
	}
	return nil
}

func writeText(w io.Writer, systems []types.System, f Format) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(f.Header() + "\n"); err != nil {
		return err
	}
	for i, sys := range systems {
		if i > 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString(Line(sys, f)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeXML(w io.Writer, sec *sector.Sector) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateComment(XML3.Header())

	root := doc.CreateElement("Sector")
	root.CreateAttr("version", XML3.Version())
	root.CreateAttr("name", sec.Name)
	root.CreateAttr("allegiance", sec.Allegiance)
	root.CreateAttr("run", sec.RunID.String())

	for _, sys := range sec.Systems() {
		world := root.CreateElement("World")
		world.CreateAttr("hex", sys.Hex.String())
		world.CreateAttr("name", sys.Name)
		world.CreateAttr("uwp", sys.UWP())
		if sys.Base != 0 && sys.Base != types.BaseNone {
			world.CreateAttr("bases", sys.Base.String())
		}
		if sys.Zone != 0 && sys.Zone != types.ZoneNone {
			world.CreateAttr("zone", sys.Zone.String())
		}
		world.CreateAttr("pbg", zero(sys.PBG(), 3))
		world.CreateAttr("allegiance", sys.Allegiance)
		for _, code := range sys.TradeCodes {
			world.CreateElement("TradeCode").SetText(string(code))
		}
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

