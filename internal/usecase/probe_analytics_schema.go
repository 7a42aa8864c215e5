package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lib/pq"

	"github.com/xavierca1/postcard-ads/internal/entity"
)

const (
	analyticsTable   = "analytics"
	eventTypeColumn  = "event_type"
	sqlStateUndefCol = "42703"
	defaultEventType = entity.EventTypeScan
)

type SchemaStatus int

const (
	ColumnUnknown SchemaStatus = iota
	ColumnPresent
	ColumnMissing
)

// ProbeAnalyticsSchemaUseCase checks whether analytics.event_type exists.
// When it does not, it prints the statements an operator has to run; it
// never alters the schema itself.
type ProbeAnalyticsSchemaUseCase struct {
	Analytics entity.AnalyticsRepository
	Out       io.Writer
}

func NewProbeAnalyticsSchemaUseCase(analytics entity.AnalyticsRepository, out io.Writer) *ProbeAnalyticsSchemaUseCase {
	return &ProbeAnalyticsSchemaUseCase{Analytics: analytics, Out: out}
}

func (uc *ProbeAnalyticsSchemaUseCase) Execute(ctx context.Context) (SchemaStatus, error) {
	fmt.Fprintf(uc.Out, "Checking %s.%s...\n", analyticsTable, eventTypeColumn)

	err := uc.Analytics.ProbeColumn(ctx, eventTypeColumn)
	if err == nil {
		fmt.Fprintf(uc.Out, "✅ Column %s already exists on %s, nothing to do\n", eventTypeColumn, analyticsTable)
		return ColumnPresent, nil
	}

	if !isMissingColumn(err, eventTypeColumn) {
		fmt.Fprintf(uc.Out, "❌ Could not check schema: %v\n", err)
		return ColumnUnknown, &PersistenceError{Op: "probe analytics schema", Err: err}
	}

	fmt.Fprintf(uc.Out, "⚠️  Column %s is missing. Run the following SQL in the database console:\n\n", eventTypeColumn)
	for _, stmt := range MigrationSQL(analyticsTable, eventTypeColumn) {
		fmt.Fprintln(uc.Out, stmt)
	}
	return ColumnMissing, nil
}

// MigrationSQL returns the statements adding the event type column, its
// check constraint and a supporting index.
func MigrationSQL(table, column string) []string {
	t := pq.QuoteIdentifier(table)
	c := pq.QuoteIdentifier(column)
	allowed := pq.QuoteLiteral(entity.EventTypeScan) + ", " + pq.QuoteLiteral(entity.EventTypeConversion)

	return []string{
		fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s TEXT NOT NULL DEFAULT %s;", t, c, pq.QuoteLiteral(defaultEventType)),
		fmt.Sprintf("ALTER TABLE %s ADD CONSTRAINT %s CHECK (%s IN (%s));",
			t, pq.QuoteIdentifier(table+"_"+column+"_check"), c, allowed),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS %s ON %s (%s);",
			pq.QuoteIdentifier("idx_"+table+"_"+column), t, c),
	}
}

func isMissingColumn(err error, column string) bool {
	var state interface{ SQLState() string }
	if errors.As(err, &state) && state.SQLState() == sqlStateUndefCol {
		return true
	}
	return strings.Contains(err.Error(), column)
}
