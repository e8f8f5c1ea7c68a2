package report

import (
	"io"

	"github.com/xuri/excelize/v2"

	"Kelvin/internal/calc/plant"
)

// WriteXLSX emits the same header/data pair as the CSV into a single sheet.
func WriteXLSX(w io.Writer, s plant.Summary) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	header := make([]interface{}, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	values := row(s)
	data := make([]interface{}, len(values))
	for i, v := range values {
		data[i] = v
	}
	if err := f.SetSheetRow(sheet, "A2", &data); err != nil {
		return err
	}

	return f.Write(w)
}
