// Public domain.

package necam

import (
	"github.com/pkg/errors"

	"github.com/necam-obs/ingest/fitshdr"
	"github.com/necam-obs/ingest/translate"
)

// Hook computes one registry field value from a header.
type Hook func(fitshdr.Header) (interface{}, error)

// ParseTask extracts registry rows from NeCam headers per an IngestConfig.
type ParseTask struct {
	cfg   IngestConfig
	hooks map[string]Hook
}

// Hooks returns the named translator hooks this parse task implements.
func Hooks() map[string]Hook {
	return map[string]Hook{
		"translate_Date": translateDate,
	}
}

// NewParseTask validates the configuration against the task's hooks and
// returns a task ready to build rows.
func NewParseTask(cfg IngestConfig) (*ParseTask, error) {
	hooks := Hooks()
	if err := cfg.Validate(hooks); err != nil {
		return nil, err
	}
	return &ParseTask{cfg: cfg, hooks: hooks}, nil
}

// Config returns the task's configuration.
func (p *ParseTask) Config() IngestConfig { return p.cfg }

// Row extracts one registry row from the header.  Text columns coerce to
// string, double columns to float64.  A missing keyword fails the row.
func (p *ParseTask) Row(h fitshdr.Header) (map[string]interface{}, error) {
	row := make(map[string]interface{},
		len(p.cfg.Parse.Translation)+len(p.cfg.Parse.Translators))

	for field, keyword := range p.cfg.Parse.Translation {
		var v interface{}
		var err error
		switch p.cfg.Register.Columns[field] {
		case ColumnDouble:
			v, err = h.Float(keyword)
		default:
			v, err = h.String(keyword)
		}
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse field %s", field)
		}
		row[field] = v
	}

	for field, name := range p.cfg.Parse.Translators {
		v, err := p.hooks[name](h)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to parse field %s", field)
		}
		row[field] = v
	}
	return row, nil
}

// translateDate reformats the compact DATE-OBS date as an ISO calendar
// date, "20200101" -> "2020-01-01".
func translateDate(h fitshdr.Header) (interface{}, error) {
	s, err := h.String("DATE-OBS")
	if err != nil {
		return nil, err
	}
	t, err := translate.ParseCompactDate(s)
	if err != nil {
		return nil, err
	}
	return t.ISODate(), nil
}
