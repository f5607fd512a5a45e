package board

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/kr/pretty"
	"github.com/liip/sheriff"
	"github.com/travigo/ferrybus/pkg/ctdf"
)

const (
	FormatJSON   = "json"
	FormatCSV    = "csv"
	FormatPretty = "pretty"
)

type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown output format %q, expected json, csv or pretty", e.Format)
}

// Write renders the ferries to w. CSV has one row per bus assignment, ferries without buses
// produce no rows.
func Write(w io.Writer, format string, ferries []*ctdf.FerryBoard, detailed bool) error {
	switch format {
	case FormatJSON:
		groups := []string{"basic"}
		if detailed {
			groups = []string{"detailed"}
		}

		ferriesReduced, err := sheriff.Marshal(&sheriff.Options{
			Groups: groups,
		}, ferries)
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(ferriesReduced)
	case FormatCSV:
		rows := ctdf.FlattenFerryBoards(ferries)
		if len(rows) == 0 {
			rows = []*ctdf.FerryBoardRow{}
		}

		csv, err := gocsv.MarshalString(rows)
		if err != nil {
			return err
		}

		_, err = io.WriteString(w, csv)
		return err
	case FormatPretty:
		_, err := pretty.Fprintf(w, "%# v\n", ferries)
		return err
	default:
		return &UnknownFormatError{Format: format}
	}
}

func WriteSchedule(w io.Writer, schedule []ctdf.FerryDeparture) error {
	for _, departure := range schedule {
		if _, err := fmt.Fprintln(w, departure.String()); err != nil {
			return err
		}
	}

	return nil
}
