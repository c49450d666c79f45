package scenario

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
)

var csvHeader = []string{
	"index",
	"param",
	"value",
	"inflation",
	"interest",
	"commodity",
	"stability",
	"fdi",
	"gdp_growth",
	"trade_balance",
	"climate_score",
	"gdp_delta",
	"trade_delta",
	"climate_delta",
	"gdp_class",
}

func WriteRowsCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, r := range rows {
		row := []string{
			strconv.Itoa(r.Index),
			string(r.Param),
			fmtFloat(r.Value),
			fmtFloat(r.Inputs.Inflation),
			fmtFloat(r.Inputs.Interest),
			fmtFloat(r.Inputs.Commodity),
			fmtFloat(r.Inputs.Stability),
			fmtFloat(r.Inputs.FDI),
			fmtFloat(r.GDPGrowth),
			fmtFloat(r.TradeBalance),
			fmtFloat(r.ClimateScore),
			fmtFloat(r.GDPDelta),
			fmtFloat(r.TradeDelta),
			fmtFloat(r.ClimateDelta),
			string(r.GDPClass),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteRowsCSVFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteRowsCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
