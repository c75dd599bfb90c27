package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pivolan/stats_preprocess/domain/models"
	"github.com/pivolan/stats_preprocess/frame"
	"github.com/pivolan/stats_preprocess/input"
	"github.com/pivolan/stats_preprocess/operation"
	"github.com/pivolan/stats_preprocess/summary"
)

// loadRequest builds the request from the argument, the --input file or both the
// argument and the --csv file, in which case the CSV rows replace the request data.
func loadRequest(args []string, opts options, limit int64) (*models.Request, error) {
	var req *models.Request
	var err error
	switch {
	case opts.input != "":
		req, err = input.ReadRequestFile(opts.input, limit)
	case len(args) == 1:
		req, err = input.ParseRequest([]byte(args[0]))
	case opts.csv != "":
		req = &models.Request{}
	default:
		return nil, ErrNoRequest
	}
	if err != nil {
		return nil, err
	}

	if opts.csv != "" {
		records, err := input.ReadCSVFile(opts.csv)
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		req.Data = records
	}
	return req, nil
}

func handleRequest(req *models.Request) (*frame.Table, *models.Result, error) {
	table := frame.New(req.Data)
	name := req.OperationName()
	logger.Debug().Int("rows", table.Len()).Int("columns", len(table.Columns)).
		Str("operation", operation.Parse(name).String()).Msg("table loaded")

	table, err := operation.Apply(table, name, req.Params)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug().Int("rows", table.Len()).Msg("operation applied")

	return table, summary.Build(table), nil
}

func writeJSON(w io.Writer, res *models.Result) error {
	out, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}
