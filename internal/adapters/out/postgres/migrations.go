package postgres

import (
	"fmt"

	"freightops/internal/adapters/out/postgres/invoicerepo"
	"freightops/internal/adapters/out/postgres/offerrepo"
	"freightops/internal/adapters/out/postgres/positionrepo"
	"freightops/internal/adapters/out/postgres/ratingrepo"
	"freightops/internal/adapters/out/postgres/requestrepo"
	"freightops/internal/adapters/out/postgres/triprepo"

	"gorm.io/gorm"
)

// watchedTables lists every table the change feed broadcasts, in migration
// order. position_samples is deliberately absent: trips already carry the
// current coordinates, and the cache has no reader for unbounded telemetry
// history.
var watchedTables = []string{"requests", "offers", "trips", "invoices", "ratings"}

// broadcastFunctionSQL installs the trigger function behind the change feed.
// It publishes the full row as JSON on the table's notification channel;
// deletes carry only the primary key. The payload shape matches ports.Change.
const broadcastFunctionSQL = `
CREATE OR REPLACE FUNCTION broadcast_row_change() RETURNS trigger AS $$
DECLARE
	row_id text;
	row_payload json;
BEGIN
	IF (TG_OP = 'DELETE') THEN
		row_id := OLD.id::text;
		row_payload := json_build_object('id', OLD.id);
	ELSE
		row_id := NEW.id::text;
		row_payload := row_to_json(NEW);
	END IF;

	PERFORM pg_notify(
		TG_TABLE_NAME || '_changes',
		json_build_object(
			'collection', TG_TABLE_NAME,
			'kind', lower(TG_OP),
			'id', row_id,
			'payload', row_payload
		)::text
	);

	RETURN NULL;
END;
$$ LANGUAGE plpgsql;
`

// Migrate creates the schema and installs the change feed triggers.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&requestrepo.RequestDTO{},
		&offerrepo.OfferDTO{},
		&triprepo.TripDTO{},
		&invoicerepo.InvoiceDTO{},
		&ratingrepo.RatingDTO{},
		&positionrepo.PositionSampleDTO{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := db.Exec(broadcastFunctionSQL).Error; err != nil {
		return fmt.Errorf("failed to install broadcast function: %w", err)
	}

	for _, table := range watchedTables {
		trigger := table + "_broadcast_change"
		err := db.Exec(fmt.Sprintf(
			`DROP TRIGGER IF EXISTS %s ON %s;
			CREATE TRIGGER %s
			AFTER INSERT OR UPDATE OR DELETE ON %s
			FOR EACH ROW EXECUTE FUNCTION broadcast_row_change();`,
			trigger, table, trigger, table,
		)).Error
		if err != nil {
			return fmt.Errorf("failed to install trigger on %s: %w", table, err)
		}
	}

	return nil
}
