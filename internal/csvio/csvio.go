// Package csvio reads and writes the ledger as CSV for import and export.
//
// The format is one row per expense with its tag embedded:
//
//	id,name,amount,currency,date,tag_id,tag_name,tag_color
//
// Dates are RFC 3339 text. Tags referenced by no expense do not appear in
// an export.
package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"tally/internal/apperrors"
	"tally/internal/model"
)

var header = []string{"id", "name", "amount", "currency", "date", "tag_id", "tag_name", "tag_color"}

// Write emits the snapshot's expenses as CSV.
func Write(w io.Writer, snap model.Snapshot) error {
	tagsByID := make(map[string]model.Tag, len(snap.Tags))
	for _, t := range snap.Tags {
		tagsByID[t.ID] = t
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, e := range snap.Expenses {
		row := []string{
			e.ID,
			e.Name,
			strconv.FormatFloat(e.Amount, 'f', -1, 64),
			string(e.Currency),
			e.Date.Format(time.RFC3339Nano),
			e.TagID,
			"",
			"",
		}
		if t, ok := tagsByID[e.TagID]; ok {
			row[6] = t.Name
			row[7] = string(t.Color)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// Read parses a CSV export back into a snapshot, validating each row. Tags
// are rebuilt from the embedded columns, deduplicated by id with the first
// occurrence winning. The returned snapshot carries no default currency.
func Read(r io.Reader) (model.Snapshot, error) {
	var snap model.Snapshot

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(header)

	first, err := cr.Read()
	if err == io.EOF {
		return snap, fmt.Errorf("%w: empty file", apperrors.ErrValidation)
	}
	if err != nil {
		return snap, err
	}
	if first[0] != header[0] {
		return snap, fmt.Errorf("%w: missing header row", apperrors.ErrValidation)
	}

	seenTags := make(map[string]bool)
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return snap, fmt.Errorf("line %d: %w", line, err)
		}

		e, tag, err := parseRow(row)
		if err != nil {
			return snap, fmt.Errorf("line %d: %w", line, err)
		}
		snap.Expenses = append(snap.Expenses, e)

		if tag.ID != "" && !seenTags[tag.ID] {
			seenTags[tag.ID] = true
			snap.Tags = append(snap.Tags, tag)
		}
	}

	return snap, nil
}

func parseRow(row []string) (model.Expense, model.Tag, error) {
	var e model.Expense
	var tag model.Tag

	e.ID = row[0]
	e.Name = row[1]
	if e.ID == "" || e.Name == "" {
		return e, tag, fmt.Errorf("%w: id and name are required", apperrors.ErrValidation)
	}

	amount, err := strconv.ParseFloat(row[2], 64)
	if err != nil || amount <= 0 {
		return e, tag, fmt.Errorf("%w: bad amount %q", apperrors.ErrValidation, row[2])
	}
	e.Amount = amount

	e.Currency = model.Currency(row[3])
	if !e.Currency.Valid() {
		return e, tag, fmt.Errorf("%w: unknown currency %q", apperrors.ErrValidation, row[3])
	}

	e.Date, err = time.Parse(time.RFC3339Nano, row[4])
	if err != nil {
		return e, tag, fmt.Errorf("%w: bad date %q", apperrors.ErrValidation, row[4])
	}

	e.TagID = row[5]
	if e.TagID == "" {
		return e, tag, fmt.Errorf("%w: tag id is required", apperrors.ErrValidation)
	}

	// Tag columns may be blank for an orphaned tag id; the expense still
	// imports and groups as Uncategorized.
	if row[6] != "" {
		tag = model.Tag{ID: e.TagID, Name: row[6], Color: model.Color(row[7])}
		if tag.Color == "" {
			tag.Color = model.DefaultColor
		}
		if !tag.Color.Valid() {
			return e, tag, fmt.Errorf("%w: unknown color %q", apperrors.ErrValidation, row[7])
		}
	}

	return e, tag, nil
}
