package integration

import (
	"testing"

	"github.com/zoobzio/exprql/mssql"
)

func TestMSSQL(t *testing.T) {
	skipShort(t)

	c := getMSSQLContainer(t)
	db, err := mssql.Open(c.connStr)
	if err != nil {
		t.Fatalf("Failed to open mssql: %v", err)
	}
	defer db.Close()
	waitReady(t, db, 60)

	runSuite(t, db)
}
